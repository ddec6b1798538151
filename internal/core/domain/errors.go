package domain

import "errors"

// Domain errors represent resolution pipeline failures.
// Adapters wrap these sentinels so callers can classify failures
// with errors.Is without inspecting messages.
var (
	// ErrNotFound indicates a well-formed response with zero qualifying matches.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNetwork indicates the remote service could not be reached
	// (connection refused, timeout).
	ErrNetwork = errors.New("network failure")

	// ErrUpstream indicates the remote service answered with a
	// non-success HTTP status.
	ErrUpstream = errors.New("upstream service error")

	// ErrMalformedResponse indicates the response body was not valid JSON
	// or lacked the expected fields.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNoPositionalIdentifier indicates a variant record carries no
	// pipe-delimited positional identifier. Callers skip such variants.
	ErrNoPositionalIdentifier = errors.New("no positional identifier")
)
