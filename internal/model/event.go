package model

// Priority is the user-assigned importance of an event.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// DefaultColor is the palette blue used for new drafts.
const DefaultColor = "#4285F4"

// DefaultNotification is the reminder lead time (minutes) for new drafts.
const DefaultNotification = "30"

// NotificationChoices are the allowed reminder lead times in minutes.
var NotificationChoices = []string{"0", "15", "30", "60", "1440"}

// EventRecord is the canonical in-memory shape of an event.
// Every field is optional on its own; submission requires the four
// fields checked by IsSubmittable. Date is always canonical YYYY-MM-DD
// and times canonical 24-hour HH:MM once a record passes through
// Merge or a normalize call.
type EventRecord struct {
	EventName    string   `json:"eventName"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location"`
	VirtualLink  string   `json:"virtualLink"`
	Tags         []string `json:"tags"`
	Priority     Priority `json:"priority"`
	Notification string   `json:"notification"`
	Color        string   `json:"color"`
}

// ExtractionResult is the transient partial record produced by the
// extraction client. Fields are pointers so "unknown" (null) is
// distinguishable from an empty string.
type ExtractionResult struct {
	EventName   *string `json:"eventName"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	Location    *string `json:"location"`
	VirtualLink *string `json:"virtualLink"`
}

// DefaultRecord returns a fresh draft with default priority,
// notification and color.
func DefaultRecord() EventRecord {
	return EventRecord{
		Tags:         []string{},
		Priority:     PriorityMedium,
		Notification: DefaultNotification,
		Color:        DefaultColor,
	}
}

// IsSubmittable reports whether the record carries everything the
// calendar API requires: name, date, start and end time.
func (r EventRecord) IsSubmittable() bool {
	return len(r.MissingFields()) == 0
}

// MissingFields lists the required fields that are still empty.
func (r EventRecord) MissingFields() []string {
	var missing []string
	if r.EventName == "" {
		missing = append(missing, "eventName")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if r.EndTime == "" {
		missing = append(missing, "endTime")
	}
	return missing
}

// IsEmpty reports whether every field of the extraction result is null,
// i.e. the input text carried no recognizable event information.
func (e ExtractionResult) IsEmpty() bool {
	return e.EventName == nil &&
		e.Description == nil &&
		e.Date == nil &&
		e.StartTime == nil &&
		e.EndTime == nil &&
		e.Location == nil &&
		e.VirtualLink == nil
}

// Merge applies a partial extraction result onto a draft with
// field-wise override: non-null extraction fields win, null fields
// leave the draft untouched. Date and time fields are re-normalized
// so the returned draft never holds a raw upstream value.
func Merge(draft EventRecord, partial ExtractionResult) EventRecord {
	out := draft

	if partial.EventName != nil {
		out.EventName = *partial.EventName
	}
	if partial.Description != nil {
		out.Description = *partial.Description
	}
	if partial.Date != nil {
		if d, ok := NormalizeDate(*partial.Date); ok {
			out.Date = d
		}
	}
	if partial.StartTime != nil {
		if t, ok := NormalizeTime(*partial.StartTime); ok {
			out.StartTime = t
		}
	}
	if partial.EndTime != nil {
		if t, ok := NormalizeTime(*partial.EndTime); ok {
			out.EndTime = t
		}
	}
	if partial.Location != nil {
		out.Location = *partial.Location
	}
	if partial.VirtualLink != nil {
		out.VirtualLink = *partial.VirtualLink
	}

	return out
}
