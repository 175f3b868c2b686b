// Package api is a thin typed wrapper over The Wild Share REST surface.
// All durable state lives behind it; the client only ever re-reads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/nmil1484-source/the-wild-share/internal/config"
)

// TokenSource supplies the current bearer token, or "" when unauthenticated.
// The session manager is the only production implementation.
type TokenSource func() string

// Error is a server-reported failure. Message carries the server's
// `{"error": "..."}` body verbatim when present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// ErrorMessage extracts the user-facing message from err: the server's
// message verbatim for API errors, a generic fallback otherwise.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client talks to the remote REST API. It attaches the bearer token to every
// request and never retries.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource
}

// NewClient creates a new API client. tokenSource may be nil for a client
// that only performs unauthenticated calls.
func NewClient(cfg *config.Config, tokenSource TokenSource) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
		tokenSource: tokenSource,
	}
}

// BaseURL returns the configured API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) token() string {
	if c.tokenSource == nil {
		return ""
	}
	return c.tokenSource()
}

// do performs one JSON request. body is marshalled when non-nil; the response
// body is decoded into out when non-nil. Non-2xx responses become *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request for %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// setCommonHeaders attaches the bearer token (when present) and a per-request ID.
func (c *Client) setCommonHeaders(req *http.Request) {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
}

func decodeResponse(resp *http.Response, out interface{}) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
		}
	}
	return nil
}

// newError builds an *Error from a failed response, preferring the server's
// structured error message.
func newError(statusCode int, body []byte) *Error {
	var serverErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &serverErr); err == nil && serverErr.Error != "" {
		return &Error{StatusCode: statusCode, Message: serverErr.Error}
	}
	return &Error{StatusCode: statusCode, Message: fmt.Sprintf("request failed with status %d", statusCode)}
}
