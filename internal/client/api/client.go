// Package api is the typed HTTP client for the forum REST API. Every call
// flows through the transport pipeline handed in at construction, so
// credential attachment and session recovery apply uniformly; this package
// only shapes requests and decodes responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eduforum/internal/common"
	"eduforum/internal/logging"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a forum API client over the given transport, which is
// expected to be (but does not have to be) the authenticate/recover
// pipeline.
func NewClient(baseURL string, rt http.RoundTripper, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Transport: rt},
		log:     log,
	}
}

// WithTimeout sets the per-request deadline on the underlying http client
// and returns c for chaining.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.http.Timeout = d
	return c
}

// do issues one API call: marshal in (when non-nil) as the JSON body,
// decode the JSON response into out (when non-nil). Server failures come
// back as *APIError; transport failures additionally match
// common.ErrUnavailable via errors.Is.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// The recovery stage rejects via errors; unwrap them out of the
		// *url.Error the http client adds.
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return ErrorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
