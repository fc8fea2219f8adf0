package transport

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"eduforum/internal/client/session"
	"eduforum/internal/common"
)

// Authenticator attaches the stored credential to outgoing requests. A
// missing credential is a legitimate unauthenticated request, not an error:
// the request passes through without an authorization header.
type Authenticator struct {
	next  http.RoundTripper
	store session.Store
}

func NewAuthenticator(next http.RoundTripper, store session.Store) *Authenticator {
	return &Authenticator{next: next, store: store}
}

// Authenticate returns a copy of req carrying the authorization header
// derived from the stored token, plus a request id when none is set. The
// original request is left untouched, per the RoundTripper contract.
func (a *Authenticator) Authenticate(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())

	if out.Header.Get(common.RequestIDHeaderName) == "" {
		out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	token, _, err := a.store.Get(req.Context())
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}
	if token != "" {
		out.Header.Set(common.AuthHeaderName, session.HeaderValue(token))
	}
	return out, nil
}

func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	out, err := a.Authenticate(req)
	if err != nil {
		return nil, err
	}
	return a.next.RoundTrip(out)
}
