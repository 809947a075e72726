package gcalendar

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// ErrNetwork indicates a transport-level failure before any HTTP
// status was received.
var ErrNetwork = errors.New("calendar API unreachable")

// HTTPError is a non-success response from the calendar endpoint,
// carrying the upstream status and message for user display.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("calendar API error %d: %s", e.Status, e.Message)
}

// wrapAPIError classifies an insert failure: googleapi errors become
// HTTPError, everything else is a transport failure.
func wrapAPIError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = gerr.Body
		}
		return &HTTPError{Status: gerr.Code, Message: msg}
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
