package oreum

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrUnconfigured indicates no credential is bound to the gateway.
	ErrUnconfigured = errors.New("API key is not set: configure it in settings")

	// ErrMalformedResponse indicates the model returned text that could not
	// be decoded into the shape the request asked for.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrEmptyResponse indicates the model call succeeded but produced no text.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrValidation indicates caller input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")
)
