package form

import (
	"context"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
)

// Controller owns the draft event record and drives the
// extraction-to-event pipeline around it. Implementations are safe
// for concurrent use; at most one Extract or Submit runs at a time.
type Controller interface {
	// Extract runs the extraction pipeline for the selected text and
	// merges the result into the draft.
	Extract(ctx context.Context, text string) (ExtractOutput, error)

	// Submit sends the completed draft to the calendar API. On
	// success the draft resets to defaults and the store is cleared.
	Submit(ctx context.Context) (SubmitOutput, error)

	// SetField applies a single user edit to the draft and persists it.
	SetField(ctx context.Context, name, value string) error

	// Clear resets the draft to defaults and removes both store keys.
	Clear(ctx context.Context) error

	// Draft returns a snapshot of the current draft.
	Draft() model.EventRecord

	// Phase returns the controller's current phase.
	Phase() Phase
}
