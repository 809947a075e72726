package calendar

// SubmitOutput is the result of a successful event submission.
type SubmitOutput struct {
	EventID  string
	HtmlLink string
}
