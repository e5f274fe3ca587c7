// Package client provides an HTTP client for the LightWave LED server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lightwave-leds/lightwave/internal/protocol"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Client sends requests to the LED server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		userAgent:  "lightwave",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response is a successful (2xx) server reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// Empty reports whether the server sent no body.
func (r *Response) Empty() bool {
	return len(bytes.TrimSpace(r.Body)) == 0
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// Do sends req and returns the response. Non-2xx replies are returned as
// *APIError, transport failures as *RequestError and 2xx bodies that are
// not valid JSON as *DecodeError.
func (c *Client) Do(ctx context.Context, req *protocol.Request) (*Response, error) {
	url := c.baseURL + req.Path

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, &RequestError{Method: req.Method, URL: url, Err: err}
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("request", "method", req.Method, "url", url, "request_id", requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("request failed", "method", req.Method, "url", url, "request_id", requestID, "error", err)
		return nil, &RequestError{Method: req.Method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: req.Method, URL: url, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"bytes", len(data),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	out := &Response{StatusCode: resp.StatusCode, Body: data}
	if !out.Empty() && !json.Valid(data) {
		return nil, &DecodeError{Err: fmt.Errorf("invalid JSON in %d response", resp.StatusCode)}
	}
	return out, nil
}

func newAPIError(status int, body []byte) *APIError {
	var er protocol.ErrorResponse
	msg := ""
	if json.Unmarshal(body, &er) == nil {
		msg = er.Message()
	}
	if msg == "" {
		msg = fmt.Sprintf("Error status: %d %s", status, http.StatusText(status))
	}
	return &APIError{StatusCode: status, Message: msg}
}
