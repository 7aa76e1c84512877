package http

import "errors"

// Sentinel errors raised by the HTTP layer itself, before a request reaches
// the service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrAccessDenied is returned by route guards when the authenticated
	// identity does not satisfy the route's policy.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidJSONBody is returned when the request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when a numeric path segment does not parse
	// to a positive integer.
	ErrInvalidPathID = errors.New("invalid numeric id in path")
)
