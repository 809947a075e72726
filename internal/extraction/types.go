package extraction

import "github.com/Dhanarooban1/websiteEventsToCalendar/internal/model"

// ExtractInput is the input for event extraction.
type ExtractInput struct {
	Text string // Selected page text, free-form
}

// ExtractOutput is the result of event extraction.
type ExtractOutput struct {
	Result model.ExtractionResult
	Cached bool // true when served from the memoization cache
}

// CredentialConfig is the persisted shape of the credential-config
// store key.
type CredentialConfig struct {
	APIKey string `json:"apiKey"`
}
