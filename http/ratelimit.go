package http

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter manages per-host request rate limiting using a token bucket.
// Hosts that answer with 429/503 are backed off and their rate reduced
// until they recover.
type RateLimiter struct {
	limiters     map[string]*rate.Limiter
	backoffState map[string]*BackoffState
	mu           sync.RWMutex
	config       RateLimiterConfig
}

// BackoffState tracks rate limit backoff for a host.
type BackoffState struct {
	// CurrentBackoff is the current backoff duration
	CurrentBackoff time.Duration
	// LastError is when the last rate limit error occurred
	LastError time.Time
	// ConsecutiveErrors is the count of consecutive rate limit errors
	ConsecutiveErrors int
	// OriginalRPS is the configured rate to restore after cooldown
	OriginalRPS float64
	// ReducedRPS is the current reduced rate (0 means using original)
	ReducedRPS float64
}

const (
	// InitialBackoff is the first backoff after a rate limit response.
	InitialBackoff = 1 * time.Second
	// MaxBackoff caps the backoff between rate limited requests.
	MaxBackoff = 60 * time.Second
	// BackoffMultiplier is the multiplier for exponential backoff.
	BackoffMultiplier = 2.0
	// BackoffCooldownPeriod is how long after last error before resetting backoff.
	BackoffCooldownPeriod = 5 * time.Minute
	// MinRPSMultiplier is the minimum rate reduction (0.25 = 25% of original).
	MinRPSMultiplier = 0.25
)

// RateLimiterConfig defines rate limiting behavior.
type RateLimiterConfig struct {
	// RPS is requests per second for YouTube hosts (0 = unlimited).
	RPS float64
	// CustomRates maps hosts to RPS values.
	CustomRates map[string]float64
	// EnableDynamicBackoff enables automatic rate reduction on errors.
	EnableDynamicBackoff bool
}

// DefaultRateLimiterConfig returns defaults aligned with YouTube's tolerance.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RPS:                  2.5,
		CustomRates:          make(map[string]float64),
		EnableDynamicBackoff: true,
	}
}

// NewRateLimiter creates a new rate limiter with the given configuration.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.CustomRates == nil {
		cfg.CustomRates = make(map[string]float64)
	}

	return &RateLimiter{
		limiters:     make(map[string]*rate.Limiter),
		backoffState: make(map[string]*BackoffState),
		config:       cfg,
	}
}

// Wait waits until the rate limit allows a request for the given URL.
func (rl *RateLimiter) Wait(ctx context.Context, urlStr string) error {
	if rl == nil {
		return nil
	}

	limiter := rl.getLimiter(urlStr)
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}

// getLimiter returns the rate limiter for a given URL, creating one if necessary.
func (rl *RateLimiter) getLimiter(urlStr string) *rate.Limiter {
	host := extractHost(urlStr)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rps := rl.getRPS(host)
	if rps <= 0 {
		return nil
	}

	if limiter, ok := rl.limiters[host]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(rps), 1)
	rl.limiters[host] = limiter
	return limiter
}

// getRPS returns the requests per second for a given host.
func (rl *RateLimiter) getRPS(host string) float64 {
	if rps, ok := rl.config.CustomRates[host]; ok {
		return rps
	}
	return rl.config.RPS
}

// extractHost extracts the host without port from a URL string.
func extractHost(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}

// SetCustomRate sets a custom rate limit for a specific host.
func (rl *RateLimiter) SetCustomRate(host string, rps float64) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.config.CustomRates[host] = rps
	delete(rl.limiters, host)
}

// RecordRateLimitError records a rate limit response for a host and returns
// the recommended backoff before retrying.
func (rl *RateLimiter) RecordRateLimitError(urlStr string, retryAfter time.Duration) time.Duration {
	if rl == nil || !rl.config.EnableDynamicBackoff {
		if retryAfter > 0 {
			return retryAfter
		}
		return InitialBackoff
	}

	host := extractHost(urlStr)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	state, exists := rl.backoffState[host]
	if !exists {
		state = &BackoffState{
			CurrentBackoff: InitialBackoff,
			OriginalRPS:    rl.getRPS(host),
		}
		rl.backoffState[host] = state
	}

	state.LastError = time.Now()
	state.ConsecutiveErrors++

	// 1s, 2s, 4s, ... up to MaxBackoff
	if state.ConsecutiveErrors > 1 {
		state.CurrentBackoff = time.Duration(float64(state.CurrentBackoff) * BackoffMultiplier)
		if state.CurrentBackoff > MaxBackoff {
			state.CurrentBackoff = MaxBackoff
		}
	}

	if retryAfter > state.CurrentBackoff {
		state.CurrentBackoff = retryAfter
	}

	rl.reduceRate(host, state)
	return state.CurrentBackoff
}

// reduceRate lowers the host rate according to the consecutive error count.
// Must be called with mutex held.
func (rl *RateLimiter) reduceRate(host string, state *BackoffState) {
	if state.OriginalRPS <= 0 {
		return
	}

	factor := 0.75
	switch {
	case state.ConsecutiveErrors >= 3:
		factor = MinRPSMultiplier
	case state.ConsecutiveErrors == 2:
		factor = 0.5
	}

	state.ReducedRPS = state.OriginalRPS * factor
	if limiter, ok := rl.limiters[host]; ok {
		limiter.SetLimit(rate.Limit(state.ReducedRPS))
	}
}

// RecordSuccess records a successful request, relaxing any backoff state.
func (rl *RateLimiter) RecordSuccess(urlStr string) {
	if rl == nil || !rl.config.EnableDynamicBackoff {
		return
	}

	host := extractHost(urlStr)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	state, exists := rl.backoffState[host]
	if !exists {
		return
	}

	if time.Since(state.LastError) > BackoffCooldownPeriod {
		if limiter, ok := rl.limiters[host]; ok && state.ReducedRPS > 0 {
			limiter.SetLimit(rate.Limit(state.OriginalRPS))
		}
		delete(rl.backoffState, host)
		return
	}

	if state.ConsecutiveErrors > 0 {
		state.ConsecutiveErrors--
		if state.ConsecutiveErrors == 0 && state.ReducedRPS > 0 {
			half := state.OriginalRPS * 0.5
			if half > state.ReducedRPS {
				state.ReducedRPS = half
				if limiter, ok := rl.limiters[host]; ok {
					limiter.SetLimit(rate.Limit(half))
				}
			}
		}
	}
}

// GetBackoffState returns a copy of the backoff state for a host, or nil.
func (rl *RateLimiter) GetBackoffState(urlStr string) *BackoffState {
	if rl == nil {
		return nil
	}

	host := extractHost(urlStr)

	rl.mu.RLock()
	defer rl.mu.RUnlock()

	if state, ok := rl.backoffState[host]; ok {
		cp := *state
		return &cp
	}
	return nil
}

// WaitForBackoff waits for the current backoff period to expire.
func (rl *RateLimiter) WaitForBackoff(ctx context.Context, urlStr string) error {
	state := rl.GetBackoffState(urlStr)
	if state == nil {
		return nil
	}

	remaining := state.CurrentBackoff - time.Since(state.LastError)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
