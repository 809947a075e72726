package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	// ErrAuth means the access credential could not be acquired.
	ErrAuth = errors.New("failed to acquire calendar access token")

	// ErrNotSubmittable means the record is missing required fields.
	ErrNotSubmittable = errors.New("event record is missing required fields")
)
