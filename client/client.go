// Package client is a typed Go façade over the Trip Journal HTTP API.
// It shapes requests, attaches the stored bearer token, and normalizes every
// failure — HTTP error bodies, transport errors, undecodable responses —
// into a uniform *APIError, so callers never need to distinguish them.
//
// The client performs exactly one request per operation: no retries, no
// token refresh, no deduplication. Ordering between concurrent calls is the
// caller's responsibility.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// genericMessage is the fallback when a failure carries no parseable message.
const genericMessage = "an error occurred"

// TokenSource supplies the bearer token attached to each request.
// Returning an empty token means "no Authorization header" — the anonymous
// case, not an error. Returning an error aborts the request.
type TokenSource func(ctx context.Context) (string, error)

// APIError is the uniform failure shape for every client operation.
// Status is the HTTP status code, or 0 when the request never produced a
// response (unreachable server, cancelled context).
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client talks to a single Trip Journal server.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithTokenSource sets the source of the bearer token attached to each
// request. Without one, all requests are anonymous.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// New returns a Client for the server at baseURL (e.g. "http://localhost:4000").
// A trailing slash on baseURL is tolerated.
func New(baseURL string, opts ...Option) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request. body (when non-nil) is JSON-encoded; on 2xx the
// response body is decoded into out (when non-nil); on anything else the
// error body is mined for a message and an *APIError returned.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		buf = &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return &APIError{Message: genericMessage, Status: 0}
		}
	}

	var req *http.Request
	var err error
	if buf != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return &APIError{Message: genericMessage, Status: 0}
	}
	req.Header.Set("Content-Type", "application/json")

	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return &APIError{Message: genericMessage, Status: 0}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &APIError{Message: genericMessage, Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Message: errorMessage(resp), Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Message: genericMessage, Status: resp.StatusCode}
		}
	}
	return nil
}

// errorMessage extracts a human-readable message from an error response.
// The server sends {"error": msg}; other backends behind the same client
// have used {"message": msg}. A body that is neither falls back to the
// generic message.
func errorMessage(resp *http.Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return genericMessage
	}
	if body.Error != "" {
		return body.Error
	}
	if body.Message != "" {
		return body.Message
	}
	return genericMessage
}
