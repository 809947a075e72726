package gcalendar

// CreateEventRequest is the input for creating a Google Calendar event.
// Date is canonical YYYY-MM-DD, times canonical 24-hour HH:MM; the
// client combines them into the endpoint's dateTime form.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Location    string
	Timezone    string // IANA name, e.g. "Europe/Berlin"

	// Color is a palette hex value; unmapped values fall back to the
	// default palette entry.
	Color string

	// VirtualLink, when non-empty, requests a Meet conference
	// resource on the created event.
	VirtualLink string

	// ReminderMinutes is the single popup reminder lead time.
	ReminderMinutes int
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
