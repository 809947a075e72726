package extraction

import "context"

// UseCase defines the business logic interface for the extraction
// domain: selected text in, partial event record out, with the result
// persisted to the reconciliation store on success.
type UseCase interface {
	// Extract sends the selected text to the language model, parses
	// the constrained JSON response into a partial event record and
	// writes it to the store's extraction key.
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
