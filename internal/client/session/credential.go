package session

import (
	"strings"

	"eduforum/internal/common"
)

// UserSnapshot is the user identity cached alongside the bearer token.
// It is written and cleared together with the token.
type UserSnapshot struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// StripBearerOnce removes at most one leading "Bearer " prefix from a
// stored token. A double-prefixed value keeps its remaining prefix:
// "Bearer Bearer X" becomes "Bearer X".
func StripBearerOnce(token string) string {
	return strings.TrimPrefix(token, common.BearerPrefix)
}

// HeaderValue derives the authorization header value for a stored token:
// exactly one "Bearer " prefix regardless of whether the stored value
// already carried one.
func HeaderValue(token string) string {
	return common.BearerPrefix + StripBearerOnce(token)
}
