package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"eduforum/internal/client/api"
	"eduforum/internal/client/session"
	"eduforum/internal/common"
	"eduforum/internal/logging"
)

// RefreshTokenPath is the token-refresh endpoint, relative to the API base.
const RefreshTokenPath = "/auth/refresh-token"

// authEndpointSuffixes are the authentication endpoints credential recovery
// must never recurse into.
var authEndpointSuffixes = []string{"/auth/login", "/auth/register", RefreshTokenPath}

// Navigator is where the coordinator sends the user when the session is
// beyond recovery. For the CLI this drops back to the login prompt; a UI
// shell would route to its login screen.
type Navigator interface {
	NavigateToLogin()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) NavigateToLogin() { f() }

// Recoverer evaluates every response failure and decides, in fixed order:
// pass transport errors through unchanged; normalize 404s into APIErrors;
// treat a 401 on an auth endpoint or an already-replayed request as
// terminal; otherwise refresh the credential once (single-flight across
// concurrent failures) and replay the full original request exactly once.
type Recoverer struct {
	next           http.RoundTripper
	store          session.Store
	state          *session.State
	nav            Navigator
	refreshURL     string
	refreshTimeout time.Duration
	log            logging.Logger

	sf singleflight.Group
}

func NewRecoverer(next http.RoundTripper, store session.Store, state *session.State, nav Navigator, baseURL string, refreshTimeout time.Duration, log logging.Logger) *Recoverer {
	return &Recoverer{
		next:           next,
		store:          store,
		state:          state,
		nav:            nav,
		refreshURL:     strings.TrimSuffix(baseURL, "/") + RefreshTokenPath,
		refreshTimeout: refreshTimeout,
		log:            log,
	}
}

func (r *Recoverer) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err != nil {
		// Network-level failure, no structured status: surface unchanged.
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Presentation normalization, not a recovery path.
		return nil, api.ErrorFromResponse(resp)
	case resp.StatusCode != http.StatusUnauthorized:
		return resp, nil
	}

	// authErr preserves the original 401 status and body; every terminal
	// branch below surfaces it as-is.
	authErr := api.ErrorFromResponse(resp)

	if isAuthEndpoint(req.URL) {
		// Recovery must not recurse into the authentication subsystem.
		return nil, authErr
	}
	if HasRetryMarker(req) {
		// At most one recovery attempt per logical request.
		return nil, authErr
	}

	retry, ok := replayableCopy(req)
	if !ok {
		r.log.Warn(req.Context(), "401 on request with non-replayable body, not retrying",
			"method", req.Method, "url", req.URL.String())
		return nil, authErr
	}

	token, err := r.refreshOnce(req.Context())
	if err != nil {
		r.terminate(req.Context(), err)
		return nil, authErr
	}

	retry.Header.Set(common.AuthHeaderName, session.HeaderValue(token))

	// Re-entering RoundTrip keeps the failure rules in one place; the
	// retry marker guarantees a second 401 is terminal.
	return r.RoundTrip(retry)
}

// refreshOnce collapses concurrent refresh attempts into a single in-flight
// call whose outcome every waiter shares.
func (r *Recoverer) refreshOnce(ctx context.Context) (string, error) {
	v, err, _ := r.sf.Do("refresh", func() (any, error) {
		// Detached from the triggering request so one caller's cancellation
		// cannot fail every waiter; bounded so REFRESHING cannot hang.
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.refreshTimeout)
		defer cancel()
		return r.refresh(rctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// refresh issues one bodyless POST to the refresh endpoint, authenticated
// by the Authenticator stage with whatever credential is currently stored,
// and persists the bare (prefix-stripped) replacement token.
func (r *Recoverer) refresh(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.refreshURL, nil)
	if err != nil {
		return "", fmt.Errorf("build refresh request: %w", err)
	}

	resp, err := r.next.RoundTrip(req)
	if err != nil {
		return "", fmt.Errorf("refresh call: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", api.ErrorFromResponse(resp)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		_ = resp.Body.Close()
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	_ = resp.Body.Close()
	if out.Token == "" {
		return "", fmt.Errorf("refresh response carried no token")
	}

	bare := session.StripBearerOnce(out.Token)

	_, user, err := r.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read stored user: %w", err)
	}
	if err := r.store.Set(ctx, bare, user); err != nil {
		return "", fmt.Errorf("persist refreshed token: %w", err)
	}

	r.log.Debug(ctx, "credential refreshed")
	return bare, nil
}

// terminate ends the session after a failed refresh: clear the store, flip
// the auth state and send the navigator to login. All three are idempotent,
// so concurrent waiters of the same failed refresh converge on one state.
func (r *Recoverer) terminate(ctx context.Context, cause error) {
	r.log.Warn(ctx, "credential refresh failed, terminating session", "error", cause)
	if err := r.store.Clear(context.WithoutCancel(ctx)); err != nil {
		r.log.Error(ctx, "clearing credential store", "error", err)
	}
	if r.state != nil {
		r.state.SetAnonymous()
	}
	if r.nav != nil {
		r.nav.NavigateToLogin()
	}
}

// replayableCopy clones the full original request — method, URL, headers
// and body — for the one-time retry. Requests whose body cannot be rebuilt
// (GetBody is nil) are not replayable.
func replayableCopy(req *http.Request) (*http.Request, bool) {
	clone := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, false
		}
		body, err := req.GetBody()
		if err != nil {
			return nil, false
		}
		clone.Body = body
	}
	return withRetryMarker(clone), true
}

func isAuthEndpoint(u *url.URL) bool {
	p := strings.TrimSuffix(u.Path, "/")
	for _, s := range authEndpointSuffixes {
		if strings.HasSuffix(p, s) {
			return true
		}
	}
	return false
}
