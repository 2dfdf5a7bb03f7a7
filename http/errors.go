package http

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError indicates the server rate limited the request.
type RateLimitError struct {
	// StatusCode is the HTTP status code (429 or 503)
	StatusCode int
	// RetryAfter indicates how long to wait before retrying
	RetryAfter time.Duration
}

// Error returns a string representation of the rate limit error.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (status %d): retry after %v", e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited (status %d)", e.StatusCode)
}

// HTTPError indicates a non-2xx response that is not a rate limit.
type HTTPError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Body is the response body
	Body []byte
}

// Error returns a string representation of the HTTP error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return rateErr.StatusCode
	}
	return 0
}

// Sentinel errors for HTTP operations.
var (
	// ErrNoResponse indicates no response was received from the server.
	ErrNoResponse = errors.New("no response received")

	// ErrRequestFailed indicates the request itself failed (network error).
	ErrRequestFailed = errors.New("http request failed")
)
