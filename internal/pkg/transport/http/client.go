// Package http provides the JSON-over-HTTP transport used to talk to the ledger
// network. It wraps the retryablehttp.Client from HashiCorp, so transient
// failures (connection errors, 5xx) are retried below the SDK, and exposes
// GetJSON / PostJSON helpers that decode typed responses.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// maxErrorBodySize bounds how much of a failed response body is kept in a StatusError.
const maxErrorBodySize = 1 << 10

// ErrUnexpectedStatus is matched by every StatusError.
var ErrUnexpectedStatus = errors.New("unexpected http status")

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int    // HTTP status code returned by the server
	Body       string // leading part of the response body
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.StatusCode, e.Body)
}

// Is reports whether target is ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// Client performs JSON requests with automatic retries.
type Client struct {
	conn *retryablehttp.Client
}

// NewClient creates a Client configured with the provided options. If no
// options are given, default values are used:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
func NewClient(opts ...Option) *Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := retryablehttp.NewClient()
	conn.Logger = nil
	conn.HTTPClient.Timeout = cfg.timeout
	conn.RetryWaitMin = cfg.retryWaitMin
	conn.RetryWaitMax = cfg.retryWaitMax
	conn.RetryMax = cfg.retryMax

	return &Client{conn: conn}
}

// StandardClient returns a *http.Client that goes through the same retry
// policy, for collaborators that expect the standard library type.
func (c *Client) StandardClient() *http.Client {
	return c.conn.StandardClient()
}

// HTTPClient returns the client used for the individual attempts, so tests
// can swap its transport.
func (c *Client) HTTPClient() *http.Client {
	return c.conn.HTTPClient
}

// GetJSON sends a GET request to url and decodes the JSON body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

// PostJSON encodes body as JSON, POSTs it to url and decodes the JSON
// response into out. A nil out discards the response body.
func (c *Client) PostJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *retryablehttp.Request, out any) error {
	res, err := c.conn.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return &StatusError{StatusCode: res.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retry attempts for failed requests.
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
