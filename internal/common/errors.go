package common

import "errors"

// Sentinel errors shared by the API client and transport layers.
// Callers should use errors.Is to match these values.
var (
	// ErrNotFound: the server answered 404 for the requested resource.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized: the credential was missing, expired beyond
	// recovery, or rejected by the server.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable: the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrSessionExpired: recovery failed and the local session was
	// terminated (credential store cleared, user sent to login).
	ErrSessionExpired = errors.New("session expired")
)
