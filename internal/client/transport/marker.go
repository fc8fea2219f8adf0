package transport

import (
	"context"
	"net/http"
)

type retryMarkerKey struct{}

// withRetryMarker flags a request as the one-time replay of a failed call.
// Only the Recoverer sets it. Because the marker lives in the request
// context of the replay clone, it cannot leak into a new logical request
// built by a caller.
func withRetryMarker(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), retryMarkerKey{}, true))
}

// HasRetryMarker reports whether req is a replay that must not be
// recovered again.
func HasRetryMarker(req *http.Request) bool {
	v, _ := req.Context().Value(retryMarkerKey{}).(bool)
	return v
}
