// Package authz is the single source of truth for authorization decisions
// on the client: the role hierarchy and the content edit/delete policy.
//
// Every place that gates an action — route guards, inline edit/delete
// controls, call preconditions — consults this package, so page-level and
// button-level answers can never diverge. All functions are pure; nothing
// here mutates session or content state.
package authz
