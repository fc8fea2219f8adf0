// Package session owns the client-side session state: the persisted bearer
// credential with its cached user snapshot, normalization of stored tokens
// into authorization header values, and the process-wide authentication
// state consumed by route guards and the CLI.
//
// The credential store is the only shared mutable resource of the client;
// implementations must make Set and Clear atomic with respect to concurrent
// Get calls, and Clear must remove the token and the user snapshot together
// so no partial state (token without user, or vice versa) is observable.
package session
