package gcalendar

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client authenticated by the given
// token source.
func NewClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured
// HTTP client. Used by tests to point at a local fake endpoint.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, endpoint string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient), option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new calendar event from the request. A single
// attempt; the caller decides whether to retry.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := BuildEvent(req)

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	call := c.service.Events.Insert(calendarID, event).Context(ctx)
	if req.VirtualLink != "" {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		return nil, wrapAPIError(err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
	}, nil
}

// BuildEvent maps the request to the calendar API payload. Exported so
// the payload shape can be tested without a live service.
func BuildEvent(req CreateEventRequest) *calendar.Event {
	summary := req.Summary
	if summary == "" {
		summary = "Untitled Event"
	}

	event := &calendar.Event{
		Summary:     summary,
		Description: req.Description,
		Location:    req.Location,
		ColorId:     ColorID(req.Color),
		Start: &calendar.EventDateTime{
			DateTime: combineDateTime(req.Date, req.StartTime),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: combineDateTime(req.Date, req.EndTime),
			TimeZone: req.Timezone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: int64(req.ReminderMinutes)},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if req.VirtualLink != "" {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.NewString(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		}
	}

	return event
}

// combineDateTime joins canonical date and time into the endpoint's
// zone-less dateTime form; the zone travels in the TimeZone field.
func combineDateTime(date, hhmm string) string {
	return fmt.Sprintf("%sT%s:00", date, hhmm)
}
