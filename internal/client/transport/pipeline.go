package transport

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"eduforum/internal/client/session"
	"eduforum/internal/logging"
)

// DefaultRefreshTimeout bounds the refresh call so a stalled refresh
// endpoint cannot hold every waiting request indefinitely.
const DefaultRefreshTimeout = 12 * time.Second

// Options configures the request pipeline.
type Options struct {
	// Base is the innermost transport. Defaults to http.DefaultTransport.
	Base http.RoundTripper

	// Store holds the persisted credential. Required.
	Store session.Store

	// State, when set, is flipped to anonymous on session termination.
	State *session.State

	// Navigator, when set, receives the forced login redirect.
	Navigator Navigator

	// BaseURL of the forum API; the refresh endpoint is resolved under it.
	BaseURL string

	// RefreshTimeout bounds the refresh call. Defaults to
	// DefaultRefreshTimeout.
	RefreshTimeout time.Duration

	Logger logging.Logger
}

// NewPipeline composes the authenticate-then-recover stages around the base
// transport. The result is a plain http.RoundTripper, so it plugs into any
// *http.Client.
func NewPipeline(opts Options) http.RoundTripper {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}
	timeout := opts.RefreshTimeout
	if timeout <= 0 {
		timeout = DefaultRefreshTimeout
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	auth := NewAuthenticator(base, opts.Store)
	return NewRecoverer(auth, opts.Store, opts.State, opts.Navigator, opts.BaseURL, timeout, log)
}
