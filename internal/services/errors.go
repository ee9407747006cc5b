package services

import "errors"

var (
	// ErrInvalidInput marks caller-supplied input that cannot be processed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnavailable marks transport, auth, rate-limit and timeout
	// failures talking to the model provider.
	ErrUpstreamUnavailable = errors.New("upstream model provider unavailable")
	// ErrMalformedResponse marks a provider reply that does not match the
	// requested shape.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrOutOfRangeScore marks a well-formed reply carrying a score outside 1-5.
	ErrOutOfRangeScore = errors.New("score out of range")
)
