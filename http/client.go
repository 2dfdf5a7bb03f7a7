// Package http provides the HTTP client used for every call to YouTube:
// per-host rate limiting, retry with backoff, and typed status errors.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"ytkit/internal/retry"
)

// Client wraps an HTTP client with retry logic and rate limit handling.
type Client struct {
	base        *http.Client
	config      *Config
	rateLimiter *RateLimiter
	log         *zap.Logger
}

// Config holds HTTP client configuration including retry and rate limit settings.
type Config struct {
	// Timeout for individual HTTP requests
	Timeout time.Duration

	// Retry configuration
	Retry retry.Config

	// User agent for HTTP requests
	UserAgent string

	// Rate limiter configuration
	RateLimiter RateLimiterConfig

	// Connection pool configuration
	Transport TransportConfig
}

// TransportConfig configures the HTTP transport (connection pooling).
type TransportConfig struct {
	// MaxIdleConns is the maximum number of idle connections across all hosts.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is the maximum amount of time an idle connection can remain open.
	IdleConnTimeout time.Duration

	// ForceAttemptHTTP2 forces HTTP/2 for connections to servers that don't explicitly support it.
	ForceAttemptHTTP2 bool
}

// DefaultConfig returns sensible defaults for HTTP client configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout:     30 * time.Second,
		Retry:       retry.DefaultConfig(),
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		RateLimiter: DefaultRateLimiterConfig(),
		Transport:   DefaultTransportConfig(),
	}
}

// DefaultTransportConfig returns sensible defaults for HTTP transport configuration.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.base = hc
		}
	}
}

// New creates a new HTTP client with the given configuration.
func New(cfg *Config, opts ...Option) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        cfg.Transport.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
		ForceAttemptHTTP2:   cfg.Transport.ForceAttemptHTTP2,
	}

	c := &Client{
		base: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		config:      cfg,
		rateLimiter: NewRateLimiter(cfg.RateLimiter),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Response represents an HTTP response with status code and body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Get performs a GET request with retry logic.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with retry logic.
func (c *Client) Post(ctx context.Context, url string, body []byte, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, url, body, headers)
}

// Do performs an HTTP request with retry logic and rate limit handling.
// The body is replayed on every attempt.
func (c *Client) Do(ctx context.Context, method, urlStr string, body []byte, headers map[string]string) (*Response, error) {
	if err := c.rateLimiter.WaitForBackoff(ctx, urlStr); err != nil {
		return nil, err
	}
	if err := c.rateLimiter.Wait(ctx, urlStr); err != nil {
		return nil, err
	}

	var out *Response
	attempt := 0
	start := time.Now()

	err := retry.Do(ctx, c.config.Retry, isRetryableHTTPError, func(ctx context.Context) error {
		attempt++
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}

		req.Header.Set("User-Agent", c.config.UserAgent)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.base.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests ||
			resp.StatusCode == http.StatusServiceUnavailable {
			retryAfter := parseRetryAfter(resp.Header)
			if backoff := c.rateLimiter.RecordRateLimitError(urlStr, retryAfter); backoff > retryAfter {
				retryAfter = backoff
			}
			c.log.Debug("rate limited",
				zap.String("url", urlStr),
				zap.Int("status", resp.StatusCode),
				zap.Duration("retry_after", retryAfter),
				zap.Int("attempt", attempt))
			return &RateLimitError{
				StatusCode: resp.StatusCode,
				RetryAfter: retryAfter,
			}
		}

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &HTTPError{
				StatusCode: resp.StatusCode,
				Body:       respBody,
			}
		}

		out = &Response{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       respBody,
		}
		return nil
	})
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", method),
			zap.String("url", urlStr),
			zap.Int("attempts", attempt),
			zap.Error(err))
		return nil, err
	}
	if out == nil {
		return nil, ErrNoResponse
	}

	c.rateLimiter.RecordSuccess(urlStr)
	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("url", urlStr),
		zap.Int("status", out.StatusCode),
		zap.Int("attempts", attempt),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// isRetryableHTTPError determines if an HTTP error is retryable.
func isRetryableHTTPError(err error) bool {
	if !retry.IsRetryable(err) {
		return false
	}

	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}

	return true
}

// parseRetryAfter extracts the Retry-After header value.
func parseRetryAfter(header http.Header) time.Duration {
	retryAfter := header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return 0
}

// Close closes the HTTP client connections and releases all resources.
func (c *Client) Close() error {
	if c.base != nil {
		c.base.CloseIdleConnections()
	}
	return nil
}
