// Package transport implements the outbound request pipeline of the forum
// client as composable http.RoundTripper stages:
//
//	Recoverer -> Authenticator -> base transport
//
// The Authenticator attaches the stored bearer credential (normalized to a
// single "Bearer " prefix) before dispatch; the Recoverer evaluates every
// response failure afterwards and transparently refreshes an expired
// credential, replaying the original request at most once. When the refresh
// itself fails the session is terminated: the credential store is cleared
// and the navigator is sent to the login destination.
//
// Within one request the two stages never interleave: authentication
// happens before dispatch, recovery after the response. Across requests the
// only ordering guarantee is that refresh calls are single-flight.
package transport
