package http

import (
	"errors"
	"strings"

	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text must not be blank")
	}
	return nil
}

// ---

type updateDraftReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r updateDraftReq) validate() error { return nil }

// ---

type putCredentialReq struct {
	APIKey string `json:"apiKey" binding:"required,min=10"`
}

func (r putCredentialReq) validate() error {
	if strings.TrimSpace(r.APIKey) != r.APIKey {
		return errors.New("apiKey must not contain leading or trailing whitespace")
	}
	return nil
}

// --- Response DTOs ---

type eventResp struct {
	EventName    string   `json:"eventName"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location"`
	VirtualLink  string   `json:"virtualLink"`
	Tags         []string `json:"tags"`
	Priority     string   `json:"priority"`
	Notification string   `json:"notification"`
	Color        string   `json:"color"`
}

func newEventResp(record model.EventRecord) eventResp {
	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}
	return eventResp{
		EventName:    record.EventName,
		Description:  record.Description,
		Date:         record.Date,
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
		Location:     record.Location,
		VirtualLink:  record.VirtualLink,
		Tags:         tags,
		Priority:     string(record.Priority),
		Notification: record.Notification,
		Color:        record.Color,
	}
}

type extractResp struct {
	Draft eventResp `json:"draft"`
}

func (h *handler) newExtractResp(out form.ExtractOutput) extractResp {
	return extractResp{Draft: newEventResp(out.Draft)}
}

type draftResp struct {
	Draft eventResp `json:"draft"`
	Phase string    `json:"phase"`
}

func (h *handler) newDraftResp() draftResp {
	return draftResp{
		Draft: newEventResp(h.fc.Draft()),
		Phase: string(h.fc.Phase()),
	}
}

type submitResp struct {
	EventID  string `json:"eventId"`
	HtmlLink string `json:"htmlLink"`
}

func (h *handler) newSubmitResp(out form.SubmitOutput) submitResp {
	return submitResp{
		EventID:  out.EventID,
		HtmlLink: out.HtmlLink,
	}
}
