// Package api is the single point of egress to the remote admin backend.
// It owns the base URL, bearer-token injection, the global 401 hook and the
// error envelope; the typed per-resource bindings live in sibling files.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource supplies the current bearer token. An empty string means
// no token is attached.
type TokenSource interface {
	Token() string
}

// Client talks to the admin API. All bindings go through do, so the
// bearer header, request id and 401 handling apply uniformly.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger

	// onUnauthorized fires once per 401 response on authenticated calls.
	// The login call never triggers it.
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every request. A hung backend call fails instead of
// leaving page loading flags stuck forever.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a structured logger for request-level logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUnauthorizedHook registers the callback invoked on any 401 from an
// authenticated call.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New constructs a Client for the given base URL. tokens may not be nil;
// use a source returning "" while anonymous.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUnauthorizedHook replaces the 401 callback. The session store is
// constructed after the client, so wiring happens in two steps.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// do executes one JSON request against the API. body is marshalled as JSON
// when non-nil; out, when non-nil, receives the decoded response body.
// Non-2xx statuses return a *Error; transport failures return the wrapped
// network error with no *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out, true)
}

// postForm executes one form-encoded request. It never attaches a bearer
// token and never fires the 401 hook: it exists for the login call, where
// a 401 means rejected credentials, not an expired session.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, out, false)
}

// send finishes a prepared request: common headers, the optional bearer
// token, status mapping and JSON decoding.
func (c *Client) send(req *http.Request, out any, authenticated bool) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if authenticated {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		if resp.StatusCode == http.StatusUnauthorized && authenticated && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// endpoint joins the base URL, path and query string.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
