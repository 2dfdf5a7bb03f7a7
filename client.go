package ytkit

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ytkit/config"
	"ytkit/continuation"
	ythttp "ytkit/http"
	"ytkit/innertube"
	"ytkit/locale"
	"ytkit/renderer"
	"ytkit/signature"
)

// Client is the entry point of ytkit. It issues requests, normalizes the
// responses, follows continuations and resolves playback URLs. It is safe
// for concurrent use.
type Client struct {
	cfg       *config.Config
	transport *ythttp.Client
	api       *innertube.Client
	parsers   *locale.Registry
	follower  *continuation.Follower
	loader    *signature.Loader
	log       *zap.Logger

	hc      *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger shared by every component.
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
		c.hc = hc
	}
}

// WithBaseURL points the client at another host, mainly for tests. The URL
// must end with a slash.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// New creates a client. A nil cfg uses config.DefaultConfig.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	c.transport = ythttp.New(cfg.HTTP(), ythttp.WithLogger(c.log), ythttp.WithHTTPClient(c.hc))

	apiOpts := []innertube.ClientOption{
		innertube.WithLogger(c.log),
		innertube.WithClientVersion(cfg.ClientName, cfg.ClientVersion),
	}
	if c.baseURL != "" {
		apiOpts = append(apiOpts, innertube.WithBaseURL(c.baseURL))
	}
	c.api = innertube.NewClient(c.transport, apiOpts...)
	c.parsers = locale.NewRegistry()
	c.follower = continuation.NewFollower(c.api, c.parsers, continuation.WithLogger(c.log))

	host := signature.NewGojaHost()
	host.Timeout = cfg.ScriptTimeout
	c.loader = signature.NewLoader(c.api, signature.WithHost(host), signature.WithLogger(c.log))
	return c, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// Page is one page of a normalized listing.
type Page = continuation.Page

// Token is a continuation token.
type Token = continuation.Token

func (c *Client) request(op string, fields ...zap.Field) *zap.Logger {
	return c.log.With(append([]zap.Field{
		zap.String("op", op),
		zap.String("request_id", uuid.NewString()),
	}, fields...)...)
}

func (c *Client) converter(log *zap.Logger) (*renderer.Converter, error) {
	parser, err := c.parsers.Get(c.cfg.Language)
	if err != nil {
		return nil, err
	}
	return renderer.NewConverter(parser, renderer.WithLogger(log)), nil
}

func (c *Client) page(log *zap.Logger, family continuation.Family, nodes []innertube.Node) (*Page, error) {
	conv, err := c.converter(log)
	if err != nil {
		return nil, err
	}
	items := conv.ConvertAll(nodes)
	p := &Page{Family: family, Items: continuation.Strip(items)}
	if next, ok := continuation.Extract(items, family); ok {
		p.Next = next
	}
	return p, nil
}

// Search returns the first page of results for query. params selects a
// search filter and may be empty.
func (c *Client) Search(ctx context.Context, query, params string) (*Page, error) {
	log := c.request("search", zap.String("query", query))
	start := time.Now()

	resp, err := c.api.Search(ctx, c.cfg.Locale(), query, params)
	if err != nil {
		return nil, err
	}
	nodes, err := resp.Nodes()
	if err != nil {
		return nil, err
	}
	p, err := c.page(log, continuation.FamilySearch, nodes)
	if err != nil {
		return nil, err
	}
	log.Debug("search done", zap.Int("items", len(p.Items)), zap.Duration("duration", time.Since(start)))
	return p, nil
}

// Browse returns the first page of a browse id: a channel, a channel tab,
// a playlist or a feed.
func (c *Client) Browse(ctx context.Context, browseID, params string) (*Page, error) {
	log := c.request("browse", zap.String("browse_id", browseID))
	return c.browse(ctx, log, continuation.FamilyBrowse, browseID, params)
}

// Playlist returns the first page of a playlist.
func (c *Client) Playlist(ctx context.Context, listID string) (*Page, error) {
	log := c.request("playlist", zap.String("list_id", listID))
	return c.browse(ctx, log, continuation.FamilyPlaylist, "VL"+strings.TrimPrefix(listID, "VL"), "")
}

func (c *Client) browse(ctx context.Context, log *zap.Logger, family continuation.Family, browseID, params string) (*Page, error) {
	resp, err := c.api.Browse(ctx, c.cfg.Locale(), browseID, params)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}
	nodes, err := resp.Nodes()
	if err != nil {
		return nil, err
	}
	return c.page(log, family, nodes)
}

// PlaylistAt returns the page of a playlist starting at offset, without
// walking the pages before it. A channel id selects its uploads.
func (c *Client) PlaylistAt(ctx context.Context, listID string, offset int) (*Page, error) {
	tok, err := continuation.PackOffset(listID, offset)
	if err != nil {
		return nil, err
	}
	return c.Continue(ctx, tok)
}

// Continue follows a continuation token from a previous page.
func (c *Client) Continue(ctx context.Context, tok Token) (*Page, error) {
	return c.follower.Follow(ctx, tok, c.cfg.Locale())
}

// Walk follows state until the listing is exhausted, calling fn for every
// page.
func (c *Client) Walk(ctx context.Context, state *continuation.State, fn func(*Page) error) error {
	return c.follower.Walk(ctx, state, c.cfg.Locale(), fn)
}

// WatchPage is the normalized watch page of a video.
type WatchPage struct {
	// Items holds the primary and secondary info blocks.
	Items []renderer.Container
	// Related holds the related videos column.
	Related []renderer.Container
	// Playlist is set when the video is watched inside a playlist.
	Playlist *renderer.Container
	// Comments is the token of the first comments page, if any.
	Comments Token
}

// Watch returns the watch page of videoID. playlistID may be empty.
func (c *Client) Watch(ctx context.Context, videoID, playlistID string) (*WatchPage, error) {
	log := c.request("watch", zap.String("video_id", videoID))

	resp, err := c.api.Next(ctx, c.cfg.Locale(), videoID, playlistID)
	if err != nil {
		return nil, err
	}
	nodes, err := resp.Nodes()
	if err != nil {
		return nil, err
	}
	conv, err := c.converter(log)
	if err != nil {
		return nil, err
	}

	items := conv.ConvertAll(nodes)
	w := &WatchPage{
		Items:   items,
		Related: continuation.Strip(conv.ConvertAll(resp.Related())),
	}
	if tok, ok := continuation.Extract(items, continuation.FamilyComments); ok {
		w.Comments = tok
	}
	if panel := resp.Playlist(); panel != nil {
		n, err := innertube.NewNode("playlistPanelRenderer", panel)
		if err != nil {
			return nil, err
		}
		pl := conv.Convert(n)
		w.Playlist = &pl
	}
	return w, nil
}

// Comments returns the first page of comments of videoID.
func (c *Client) Comments(ctx context.Context, videoID string) (*Page, error) {
	w, err := c.Watch(ctx, videoID, "")
	if err != nil {
		return nil, err
	}
	if w.Comments.IsZero() {
		return nil, fmt.Errorf("%w: comments of %s", innertube.ErrNotFound, videoID)
	}
	return c.Continue(ctx, w.Comments)
}

// Playback is a playable video with resolved format URLs.
type Playback struct {
	VideoID  string
	Title    string
	Author   string
	Duration time.Duration
	Formats  []signature.ResolvedFormat
	// PlayerID is the identity of the player bundle used for descrambling.
	PlayerID string
}

// Player returns the formats of videoID with directly fetchable URLs.
func (c *Client) Player(ctx context.Context, videoID string) (*Playback, error) {
	log := c.request("player", zap.String("video_id", videoID))

	identity, err := c.api.BundleIdentity(ctx)
	if err != nil {
		return nil, err
	}
	prog, err := c.loader.Load(ctx, identity)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.Player(ctx, c.cfg.Locale(), videoID, prog.SignatureTimestamp)
	if err != nil {
		return nil, err
	}
	if err := resp.PlayabilityError(videoID); err != nil {
		return nil, err
	}

	formats, err := signature.ApplyAll(ctx, resp.Formats(), prog)
	if err != nil {
		log.Error("resolve formats", zap.String("player_id", identity), zap.Error(err))
		return nil, err
	}

	pb := &Playback{VideoID: videoID, Formats: formats, PlayerID: identity}
	if d := resp.VideoDetails; d != nil {
		pb.Title = d.Title
		pb.Author = d.Author
		if secs, err := time.ParseDuration(d.LengthSeconds + "s"); err == nil {
			pb.Duration = secs
		}
	}
	log.Debug("player resolved", zap.Int("formats", len(formats)), zap.String("player_id", identity))
	return pb, nil
}
