package signature

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// BundleFetcher fetches the player bundle for an identity.
// *innertube.Client implements it.
type BundleFetcher interface {
	FetchBundle(ctx context.Context, identity string) ([]byte, error)
}

// Loader compiles and caches one Program per bundle identity. A bundle is
// fetched and compiled at most once per identity, and only programs that
// passed validation are published.
type Loader struct {
	fetcher BundleFetcher
	host    ScriptHost
	log     *zap.Logger

	group singleflight.Group

	mu       sync.RWMutex
	programs map[string]*Program
	failed   map[string]error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(log *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithHost replaces the goja script host.
func WithHost(h ScriptHost) LoaderOption {
	return func(l *Loader) {
		if h != nil {
			l.host = h
		}
	}
}

// WithScriptTimeout sets the per-call timeout of the default goja host.
func WithScriptTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if g, ok := l.host.(*GojaHost); ok && d > 0 {
			g.Timeout = d
		}
	}
}

// NewLoader creates a loader that fetches bundles through f.
func NewLoader(f BundleFetcher, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher:  f,
		host:     NewGojaHost(),
		log:      zap.NewNop(),
		programs: make(map[string]*Program),
		failed:   make(map[string]error),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Cached returns the published program for identity, if any.
func (l *Loader) Cached(identity string) (*Program, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.programs[identity]
	return p, ok
}

// Load returns the program for identity, fetching and compiling it on
// first use. Pattern, compile and validation failures are remembered: the
// bundle is not fetched again for an identity that was rejected. Fetch
// failures and cancellation are not.
func (l *Loader) Load(ctx context.Context, identity string) (*Program, error) {
	if identity == "" {
		return nil, errors.New("empty bundle identity")
	}
	for {
		l.mu.RLock()
		p, ok := l.programs[identity]
		ferr := l.failed[identity]
		l.mu.RUnlock()
		if ok {
			return p, nil
		}
		if ferr != nil {
			return nil, ferr
		}

		ch := l.group.DoChan(identity, func() (any, error) {
			return l.build(ctx, identity)
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-ch:
			if res.Err == nil {
				return res.Val.(*Program), nil
			}
			// The leader was cancelled. Callers that are still live try
			// again under their own context.
			if isContextErr(res.Err) && ctx.Err() == nil {
				continue
			}
			return nil, res.Err
		}
	}
}

func (l *Loader) build(ctx context.Context, identity string) (*Program, error) {
	start := time.Now()
	log := l.log.With(zap.String("identity", identity))

	bundle, err := l.fetcher.FetchBundle(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("fetch player bundle %s: %w", identity, err)
	}

	prog, err := Compile(identity, bundle, l.host)
	if err != nil {
		l.remember(log, identity, err)
		return nil, err
	}
	if err := validate(ctx, prog); err != nil {
		err = fmt.Errorf("validate player bundle %s: %w", identity, err)
		l.remember(log, identity, err)
		return nil, err
	}

	l.mu.Lock()
	l.programs[identity] = prog
	l.mu.Unlock()

	log.Info("player bundle compiled",
		zap.Int("signature_timestamp", prog.SignatureTimestamp),
		zap.Duration("duration", time.Since(start)))
	return prog, nil
}

// remember records a failure that happened after the bundle was fetched.
// Those depend only on the bundle text, so the identity is not fetched
// again. Cancellation is not remembered.
func (l *Loader) remember(log *zap.Logger, identity string, err error) {
	if isContextErr(err) {
		return
	}
	log.Error("player bundle rejected", zap.Error(err))
	l.mu.Lock()
	l.failed[identity] = err
	l.mu.Unlock()
}

// validate runs both entry points once so that a program which does not
// execute is never published.
func validate(ctx context.Context, p *Program) error {
	if _, err := p.DescrambleSignature(ctx, "0123456789abcdefghijklmnopqrstuvwxyz"); err != nil {
		return err
	}
	_, err := p.DescrambleN(ctx, "0123456789abcdef")
	return err
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
