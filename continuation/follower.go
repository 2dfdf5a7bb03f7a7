package continuation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	ythttp "ytkit/http"
	"ytkit/innertube"
	"ytkit/locale"
	"ytkit/renderer"
)

// Transport issues continuation requests. *innertube.Client implements it.
type Transport interface {
	ContinueSearch(ctx context.Context, loc innertube.Locale, token string) (*innertube.SearchResponse, error)
	ContinueBrowse(ctx context.Context, loc innertube.Locale, token string) (*innertube.BrowseResponse, error)
	ContinueNext(ctx context.Context, loc innertube.Locale, token string) (*innertube.NextResponse, error)
}

// Page is one followed page of a listing.
type Page struct {
	Family Family
	// Items are the normalized nodes of the page, without the trailing
	// continuation.
	Items []renderer.Container
	// Next is zero when the listing is exhausted.
	Next Token
}

// HasNext reports whether the listing continues.
func (p *Page) HasNext() bool {
	return !p.Next.IsZero()
}

// Follower follows continuation tokens. It holds no mutable state and is
// safe for concurrent use.
type Follower struct {
	transport Transport
	parsers   *locale.Registry
	log       *zap.Logger
}

// FollowerOption configures a Follower.
type FollowerOption func(*Follower)

// WithLogger sets the follower's logger.
func WithLogger(log *zap.Logger) FollowerOption {
	return func(f *Follower) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFollower creates a follower that requests pages through t and parses
// them with the locale parsers of reg.
func NewFollower(t Transport, reg *locale.Registry, opts ...FollowerOption) *Follower {
	f := &Follower{transport: t, parsers: reg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Follow requests the page tok points at. Stale server tokens surface as
// innertube.ErrNotFound or innertube.ErrBadRequest. A synthesized playlist
// token past the end of its list yields an empty, final page.
func (f *Follower) Follow(ctx context.Context, tok Token, loc innertube.Locale) (*Page, error) {
	if tok.IsZero() {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}
	parser, err := f.parsers.Get(loc.Language)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	nodes, err := f.fetch(ctx, tok, loc)
	if err != nil {
		if tok.Synthesized && errors.Is(err, innertube.ErrNotFound) && ctx.Err() == nil && !isTransport(err) {
			f.log.Debug("synthesized token past end of list",
				zap.Stringer("family", tok.Family))
			return &Page{Family: tok.Family, Items: []renderer.Container{}}, nil
		}
		return nil, fmt.Errorf("follow %s continuation: %w", tok.Family, err)
	}

	items := renderer.NewConverter(parser, renderer.WithLogger(f.log)).ConvertAll(nodes)
	page := &Page{Family: tok.Family, Items: Strip(items)}
	if next, ok := Extract(items, tok.Family); ok {
		page.Next = next
	}

	f.log.Debug("continuation followed",
		zap.Stringer("family", tok.Family),
		zap.Int("items", len(page.Items)),
		zap.Bool("has_next", page.HasNext()),
		zap.Duration("duration", time.Since(start)))
	return page, nil
}

// isTransport reports whether err came from an HTTP status rather than
// from the response body.
func isTransport(err error) bool {
	var httpErr *ythttp.HTTPError
	return errors.As(err, &httpErr)
}

func (f *Follower) fetch(ctx context.Context, tok Token, loc innertube.Locale) ([]innertube.Node, error) {
	switch tok.Family {
	case FamilySearch:
		resp, err := f.transport.ContinueSearch(ctx, loc, tok.Value)
		if err != nil {
			return nil, err
		}
		return resp.ContinuationItems()
	case FamilyBrowse, FamilyPlaylist:
		resp, err := f.transport.ContinueBrowse(ctx, loc, tok.Value)
		if err != nil {
			return nil, err
		}
		if err := resp.Err(); err != nil {
			return nil, err
		}
		return resp.ContinuationItems()
	case FamilyComments:
		resp, err := f.transport.ContinueNext(ctx, loc, tok.Value)
		if err != nil {
			return nil, err
		}
		return resp.ContinuationItems()
	}
	return nil, fmt.Errorf("%w: unknown family %s", ErrInvalidToken, tok.Family)
}

// Walk follows the listing from state's token until it is exhausted, fn
// returns an error, or ctx is done. state is advanced after every page so
// that an interrupted walk can be resumed from it.
func (f *Follower) Walk(ctx context.Context, state *State, loc innertube.Locale, fn func(*Page) error) error {
	for state.HasMore() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if state.IsExpired() {
			return fmt.Errorf("%w: %s token expired", innertube.ErrNotFound, state.Token.Family)
		}

		page, err := f.Follow(ctx, state.Token, loc)
		if err != nil {
			return err
		}
		state.Advance(page)
		if err := fn(page); err != nil {
			return err
		}
	}
	return nil
}
