package form

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors for the form package.
var (
	// ErrBusy means an extract or submit call is already in flight;
	// the new call is rejected rather than queued.
	ErrBusy = errors.New("another operation is in progress")

	// ErrUnknownField means an edit named a field that does not exist
	// on the event record.
	ErrUnknownField = errors.New("unknown event field")

	// ErrInvalidValue means an edit carried a value that fails the
	// field's validation (unparsable date/time, unknown priority).
	ErrInvalidValue = errors.New("invalid field value")
)

// IncompleteDraftError blocks submission while required fields are
// empty; Missing names them so the UI can highlight each one.
type IncompleteDraftError struct {
	Missing []string
}

func (e *IncompleteDraftError) Error() string {
	return fmt.Sprintf("draft is missing required fields: %s", strings.Join(e.Missing, ", "))
}
