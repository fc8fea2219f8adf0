// Package guard gates navigation on authentication state and role. It is a
// pure reader of session state: deciding never mutates the session.
package guard

import (
	"eduforum/internal/client/authz"
	"eduforum/internal/client/session"
)

// Destinations for redirect decisions.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

type DecisionKind int

const (
	// DecisionLoading: hydration has not finished; render nothing and do
	// not commit to a redirect yet.
	DecisionLoading DecisionKind = iota

	// DecisionRedirectLogin: not authenticated; go to login, carrying the
	// originally requested path for restoration after login.
	DecisionRedirectLogin

	// DecisionRedirectUnauthorized: authenticated but the role check
	// failed; go to the home destination.
	DecisionRedirectUnauthorized

	// DecisionRender: show the protected content.
	DecisionRender
)

// Decision is the outcome of a route-guard evaluation.
type Decision struct {
	Kind DecisionKind

	// RedirectTo is set for the redirect kinds.
	RedirectTo string

	// From preserves the originally requested path on a login redirect.
	From string
}

// RequireRole decides whether a route demanding requiredRole may render for
// the given auth state. An empty requiredRole means any authenticated user.
func RequireRole(snap session.Snapshot, requiredRole authz.Role, requestedPath string) Decision {
	if snap.Loading {
		return Decision{Kind: DecisionLoading}
	}
	if !snap.Authenticated || snap.User == nil {
		return Decision{Kind: DecisionRedirectLogin, RedirectTo: LoginPath, From: requestedPath}
	}
	if requiredRole != "" {
		actual := authz.NormalizeRole(snap.User.Role)
		if !authz.HasAtLeastSamePrivileges(actual, requiredRole) {
			return Decision{Kind: DecisionRedirectUnauthorized, RedirectTo: HomePath}
		}
	}
	return Decision{Kind: DecisionRender}
}

// Require decides for routes that only demand authentication.
func Require(snap session.Snapshot, requestedPath string) Decision {
	return RequireRole(snap, "", requestedPath)
}
