// Package common contains shared constants and sentinel errors used across
// eduforum client components.
package common

const (
	// AuthHeaderName is the HTTP header that carries the bearer credential
	// on outbound requests.
	AuthHeaderName = "Authorization"

	// BearerPrefix is the textual prefix of an authorization header value.
	// Stored tokens may or may not carry a single copy of it.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-Id"
)
