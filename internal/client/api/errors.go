package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"eduforum/internal/common"
)

// APIError is a structured server failure: the HTTP status, the user-facing
// message and the raw response body.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// use errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return nil
	}
}

// ErrorFromResponse drains resp and converts it into an *APIError. The
// message comes from the body's "message" field when present; a 404 without
// one gets the fixed "Resource not found" text, anything else falls back to
// the standard status text. The body is preserved on the error verbatim.
func ErrorFromResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()

	msg := ""
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
	}
	if msg == "" {
		if resp.StatusCode == http.StatusNotFound {
			msg = "Resource not found"
		} else {
			msg = http.StatusText(resp.StatusCode)
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg, Body: body}
}
