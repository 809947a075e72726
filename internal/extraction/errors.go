package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	// ErrEmptySelection means no text was selected; the model is
	// never called.
	ErrEmptySelection = errors.New("no text selected")

	// ErrNoAPIKey means no Gemini API key is configured; the user
	// must supply one before extraction can run.
	ErrNoAPIKey = errors.New("gemini API key is not configured")

	// ErrMalformedResponse means the model output contained no
	// parsable JSON object.
	ErrMalformedResponse = errors.New("model response did not contain a valid JSON object")

	// ErrNoMatch means the model parsed the text but found no event
	// information: every field came back null. Not a hard failure.
	ErrNoMatch = errors.New("no event details found in the selected text")
)
