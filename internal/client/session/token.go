package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiration time from a stored bearer token.
// The token is parsed without signature verification: the client has no
// signing key and only uses the claim for display and proactive refresh
// hints, never for authorization decisions.
//
// The second return value is false when the token is not a JWT or carries
// no exp claim.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(StripBearerOnce(token), claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
