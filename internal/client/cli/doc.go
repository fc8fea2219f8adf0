// Package cli implements the interactive eduforum client. It wires the
// credential store, the request pipeline and the API client together and
// exposes them through a small read-eval-print loop.
package cli
