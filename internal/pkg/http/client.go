package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/requestcontext"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// HTTPError is returned for responses with a 4xx or 5xx status
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// Client is a JSON HTTP client bound to one base URL
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
	username   string
	password   string
	name       string
}

// Option configures a Client
type Option func(*Client)

// WithBasicAuth sends credentials on every request
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithName labels the client in logs
func WithName(name string) Option {
	return func(c *Client) {
		c.name = name
	}
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostJSON posts body as JSON and decodes the response into result when non-nil
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// GetJSON performs a GET request and decodes the JSON response
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set(requestcontext.HeaderRequestID, requestID)
	}
	if traceID := requestcontext.GetTraceID(ctx); traceID != "" {
		req.Header.Set(requestcontext.HeaderTraceID, traceID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("client", c.name),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("client", c.name),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(raw))}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil && err != io.EOF {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
