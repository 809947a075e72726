package calendar

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
)

// Submitter turns a completed event record into a calendar event.
type Submitter interface {
	// Submit acquires a credential, maps the record to the calendar
	// API payload and performs the create call. Returns the created
	// event's id. Single attempt, no retries.
	Submit(ctx context.Context, record model.EventRecord) (SubmitOutput, error)
}

// TokenProvider yields an access credential for the calendar API.
type TokenProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}
