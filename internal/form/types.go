package form

import "github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"

// Phase is the controller's state over the single draft.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseExtracting Phase = "extracting"
	PhaseSubmitting Phase = "submitting"
)

// ExtractOutput is the result of a controller-driven extraction:
// the partial result plus the draft it was merged into.
type ExtractOutput struct {
	Result model.ExtractionResult
	Draft  model.EventRecord
}

// SubmitOutput is the result of a successful submission.
type SubmitOutput struct {
	EventID  string
	HtmlLink string
}
