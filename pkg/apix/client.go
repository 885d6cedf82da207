// Package apix is the HTTP transport layer for the e-Prometna API.
//
// Two client configurations exist: the bootstrap client (no credentials,
// used for login and device registration which must never carry a stale
// token) and the authenticated client (attaches a bearer credential per
// request and reports 401 responses through an UnauthorizedHook). Both
// share the one-time base URL resolution in resolver.go.
package apix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the fixed per-request budget. There is no retry at this
// layer; a request either completes within the budget or fails.
const DefaultTimeout = 5 * time.Second

// UnauthorizedHook is invoked when the authenticated client receives a 401.
// The hook runs before the original error is returned, so by the time the
// caller observes the failure the session teardown has already happened.
// The teardown is a side effect, not a recovery: the request still fails.
type UnauthorizedHook func(ctx context.Context)

// Client performs JSON requests against a resolved base URL.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	creds          CredentialSource
	onUnauthorized UnauthorizedHook
}

// NewBootstrap creates the unauthenticated client used for endpoints that
// must work before any session exists.
func NewBootstrap(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewAuthenticated creates the client that attaches a bearer credential from
// creds to every request and reports 401 responses to onUnauthorized.
func NewAuthenticated(baseURL string, creds CredentialSource, onUnauthorized UnauthorizedHook) *Client {
	return &Client{
		BaseURL:        strings.TrimSuffix(baseURL, "/"),
		HTTPClient:     &http.Client{Timeout: DefaultTimeout},
		creds:          creds,
		onUnauthorized: onUnauthorized,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with an optional JSON body, decoding the
// response into out when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read credentials: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &APIError{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	// Some endpoints return a bare string body rather than JSON.
	if target, ok := out.(*string); ok && !json.Valid(respBody) {
		*target = string(respBody)
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
