// Package retry runs transport calls again with exponential backoff and
// jitter when they fail transiently.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Config controls how often and how patiently a call is repeated.
type Config struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	// JitterFraction spreads each delay by up to +/- this fraction.
	JitterFraction float64
}

// DefaultConfig returns the transport defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:     3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     10 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.2,
	}
}

// ErrorClassifier reports whether err is worth another attempt.
type ErrorClassifier func(error) bool

// ErrPermanent marks an error that must not be retried.
var ErrPermanent = errors.New("permanent error")

// ErrExhausted is returned, wrapping the last failure, once every attempt
// has failed.
var ErrExhausted = errors.New("max retries exceeded")

// Permanent wraps err so that IsRetryable rejects it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPermanent, err)
}

// IsRetryable is the default classifier: everything except context errors
// and errors wrapped with Permanent.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, ErrPermanent)
}

// backoff yields the base delay before each retry.
type backoff struct {
	cfg  Config
	next time.Duration
}

func newBackoff(cfg Config) *backoff {
	return &backoff{cfg: cfg, next: cfg.InitialBackoff}
}

// delay returns the jittered wait for the current retry and grows the base
// for the following one. Both are capped at MaxBackoff.
func (b *backoff) delay() time.Duration {
	d := b.next + jitter(b.next, b.cfg.JitterFraction)
	if b.cfg.MaxBackoff > 0 && d > b.cfg.MaxBackoff {
		d = b.cfg.MaxBackoff
	}
	b.next = time.Duration(float64(b.next) * b.cfg.Multiplier)
	if b.cfg.MaxBackoff > 0 && b.next > b.cfg.MaxBackoff {
		b.next = b.cfg.MaxBackoff
	}
	return d
}

// Do calls fn until it succeeds, the classifier rejects its error, the
// retries run out or ctx is done. A nil classifier means IsRetryable.
func Do(ctx context.Context, cfg Config, classify ErrorClassifier, fn func(context.Context) error) error {
	if classify == nil {
		classify = IsRetryable
	}

	b := newBackoff(cfg)
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if !classify(err) {
			return err
		}
		if attempt >= cfg.MaxRetries {
			return fmt.Errorf("%w: %w", ErrExhausted, err)
		}

		timer := time.NewTimer(b.delay())
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
}

func jitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 {
		return 0
	}
	span := float64(d) * fraction
	return time.Duration((rand.Float64()*2 - 1) * span)
}
