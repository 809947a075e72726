package response

const (
	// MessageSuccess is the message on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal failure details from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope code for 500s.
	InternalServerErrorCode = 500

	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
