package calendar

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gcalendar"
	pkgLog "github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

// defaultReminderMinutes is the fallback when notification is absent
// or unparsable.
const defaultReminderMinutes = 30

// APIClient is the subset of the calendar transport the submitter uses.
type APIClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type submitter struct {
	l          pkgLog.Logger
	tokens     TokenProvider
	client     APIClient
	timezone   string
	calendarID string
}

// NewSubmitter creates a calendar Submitter. timezone may be empty, in
// which case the local environment's zone is attached to payloads.
// calendarID may be empty; the transport defaults it to "primary".
func NewSubmitter(l pkgLog.Logger, tokens TokenProvider, client APIClient, timezone, calendarID string) Submitter {
	if timezone == "" {
		timezone = localTimezone()
	}
	return &submitter{
		l:          l,
		tokens:     tokens,
		client:     client,
		timezone:   timezone,
		calendarID: calendarID,
	}
}

func (s *submitter) Submit(ctx context.Context, record model.EventRecord) (SubmitOutput, error) {
	if !record.IsSubmittable() {
		return SubmitOutput{}, ErrNotSubmittable
	}

	// Credential first: an auth failure must be distinguishable from
	// a rejected request.
	if _, err := s.tokens.Token(ctx); err != nil {
		return SubmitOutput{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:      s.calendarID,
		Summary:         record.EventName,
		Description:     record.Description,
		Date:            record.Date,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		Location:        record.Location,
		Timezone:        s.timezone,
		Color:           record.Color,
		VirtualLink:     record.VirtualLink,
		ReminderMinutes: reminderMinutes(record.Notification),
	}

	created, err := s.client.CreateEvent(ctx, req)
	if err != nil {
		return SubmitOutput{}, err
	}

	s.l.Infof(ctx, "Submit: created calendar event %s", created.ID)
	return SubmitOutput{EventID: created.ID, HtmlLink: created.HtmlLink}, nil
}

// reminderMinutes parses the notification lead time, falling back to
// the default instead of failing the submission.
func reminderMinutes(notification string) int {
	n, err := strconv.Atoi(notification)
	if err != nil || n < 0 {
		return defaultReminderMinutes
	}
	return n
}

func localTimezone() string {
	name, _ := time.Now().Zone()
	if loc := time.Local.String(); loc != "" && loc != "Local" {
		return loc
	}
	return name
}
