// Copyright (c) 2025 Learndash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api implements the typed HTTP/JSON client for the Learndash admin
// backend. It builds authenticated requests, normalizes the backend's
// success/error envelope into typed results, and exposes one method per
// endpoint. Token ownership lives elsewhere: the client only borrows the
// current access token through a TokenSource when building a request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"learndash/admincli/internal/apierrors"
)

// DefaultBaseURL is the production backend origin.
const DefaultBaseURL = "https://learning-dashboard-rouge.vercel.app"

// TokenSource yields the current access token for authenticated requests.
// Implementations must return a consistent snapshot: a renewal in progress
// must never be observed as a half-updated value.
type TokenSource interface {
	AccessToken() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) AccessToken() string { return f() }

// Client is the HTTP client for the admin backend REST API.
// Each method issues one request and resolves to a typed result or a
// categorized *apierrors.E; it never panics across this boundary.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource

	// onAuthDenied fires when a protected call is rejected as unauthorized.
	// The hook is best-effort: the rejected call still reports its original
	// failure to the caller.
	onAuthDenied func()
}

// New creates a client for the given base URL with a 10-second timeout.
// A nil TokenSource behaves as an empty token (unauthenticated).
func New(baseURL string, tokens TokenSource) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// SetTimeout overrides the default request timeout. Non-positive values
// are ignored and keep the current timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.client.Timeout = d
	}
}

// SetAuthDeniedHook registers the callback fired on authorization-denied
// responses to protected endpoints. The session layer uses it to trigger a
// credential renewal attempt.
func (c *Client) SetAuthDeniedHook(fn func()) { c.onAuthDenied = fn }

// accessToken reads the current token, tolerating a nil source.
func (c *Client) accessToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.AccessToken()
}

// newRequest builds an outbound request for the given endpoint. Standard
// JSON headers and a request ID are always set; the bearer credential is
// attached only when withAuth is true and a token is present. Unauthenticated
// calls to protected endpoints are the backend's job to reject.
func (c *Client) newRequest(ctx context.Context, method, path string, withAuth bool, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if withAuth {
		if token := c.accessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doJSON issues a JSON request and interprets the envelope. payload may be
// nil for body-less requests. The returned raw message is the envelope's
// data field (or the whole object when data is absent).
func (c *Client) doJSON(ctx context.Context, method, path string, withAuth bool, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, apierrors.NewTransport("encode request body", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, withAuth, body)
	if err != nil {
		return nil, apierrors.NewTransport("build request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apierrors.NewTransport(describeTransportError(err), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewTransport("read response body", err)
	}

	data, envErr := interpret(raw, resp.StatusCode)
	if envErr != nil {
		if withAuth && resp.StatusCode == http.StatusUnauthorized && c.onAuthDenied != nil {
			c.onAuthDenied()
		}
		return nil, envErr
	}
	return data, nil
}

// decodePayload unmarshals an envelope data field into a typed result.
// A mismatched shape is a transport-level failure, never a zeroed struct
// masquerading as valid data.
func decodePayload[T any](data json.RawMessage, what string) (T, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, apierrors.NewTransport(fmt.Sprintf("malformed %s payload", what), err)
	}
	return v, nil
}

// describeTransportError condenses an http.Client error for the outcome
// message, keeping the full chain wrapped for diagnostics.
func describeTransportError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded"), strings.Contains(msg, "Client.Timeout"):
		return "request timed out"
	case strings.Contains(msg, "connection refused"):
		return "connection refused"
	case strings.Contains(msg, "no such host"):
		return "cannot resolve server address"
	default:
		return "network error"
	}
}
