// Package innertube speaks YouTube's internal web API: it builds the JSON
// requests for the search, browse, next and player endpoints, decodes the
// responses into the typed wire schema of this package, and fetches the
// player script bundle.
package innertube

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	ythttp "ytkit/http"
)

const (
	defaultWebBase = "https://www.youtube.com/"

	apiPath = "youtubei/v1/"

	// iframeAPIPath serves a loader script that names the current player.
	iframeAPIPath = "iframe_api"

	playerBundlePath = "s/player/%s/player_ias.vflset/en_US/base.js"

	// DefaultClientName is the client identifier for web requests.
	DefaultClientName = "WEB"
	// DefaultClientVersion is the client version for web requests.
	DefaultClientVersion = "2.20240726.00.00"
)

// Endpoint names.
const (
	EndpointSearch = "search"
	EndpointBrowse = "browse"
	EndpointNext   = "next"
	EndpointPlayer = "player"
)

// Locale is the display language and region sent with every request.
type Locale struct {
	Language string
	Region   string
}

// Client handles Innertube API requests. It is safe for concurrent use.
type Client struct {
	httpClient    *ythttp.Client
	clientName    string
	clientVersion string
	webBase       string
	log           *zap.Logger
}

// ClientOption configures the Innertube client.
type ClientOption func(*Client)

// WithClientVersion overrides the web client name and version.
func WithClientVersion(name, version string) ClientOption {
	return func(c *Client) {
		if name != "" {
			c.clientName = name
		}
		if version != "" {
			c.clientVersion = version
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithBaseURL points the client at another host, mainly for tests. The
// URL must end with a slash.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.webBase = base
	}
}

// NewClient creates a new Innertube API client.
func NewClient(httpClient *ythttp.Client, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:    httpClient,
		clientName:    DefaultClientName,
		clientVersion: DefaultClientVersion,
		webBase:       defaultWebBase,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request is the JSON body common to every endpoint.
type Request struct {
	Context         RequestContext   `json:"context"`
	Query           string           `json:"query,omitempty"`
	BrowseID        string           `json:"browseId,omitempty"`
	VideoID         string           `json:"videoId,omitempty"`
	PlaylistID      string           `json:"playlistId,omitempty"`
	Params          string           `json:"params,omitempty"`
	Continuation    string           `json:"continuation,omitempty"`
	PlaybackContext *PlaybackContext `json:"playbackContext,omitempty"`
	ContentCheckOK  bool             `json:"contentCheckOk,omitempty"`
	RacyCheckOK     bool             `json:"racyCheckOk,omitempty"`
}

// RequestContext identifies the client making the request.
type RequestContext struct {
	Client ClientInfo `json:"client"`
}

// ClientInfo is the client block of a request context.
type ClientInfo struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	HL            string `json:"hl,omitempty"`
	GL            string `json:"gl,omitempty"`
}

// PlaybackContext carries the signature timestamp of the player bundle so
// that returned ciphers match the descrambler compiled from it.
type PlaybackContext struct {
	ContentPlaybackContext struct {
		SignatureTimestamp int    `json:"signatureTimestamp,omitempty"`
		HTML5Preference    string `json:"html5Preference,omitempty"`
	} `json:"contentPlaybackContext"`
}

func (c *Client) newRequest(loc Locale) *Request {
	return &Request{
		Context: RequestContext{
			Client: ClientInfo{
				ClientName:    c.clientName,
				ClientVersion: c.clientVersion,
				HL:            loc.Language,
				GL:            loc.Region,
			},
		},
	}
}

// Search fetches the first page of search results.
func (c *Client) Search(ctx context.Context, loc Locale, query, params string) (*SearchResponse, error) {
	req := c.newRequest(loc)
	req.Query = query
	req.Params = params

	var resp SearchResponse
	if err := c.post(ctx, EndpointSearch, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Browse fetches a channel, playlist or feed page.
func (c *Client) Browse(ctx context.Context, loc Locale, browseID, params string) (*BrowseResponse, error) {
	req := c.newRequest(loc)
	req.BrowseID = browseID
	req.Params = params

	var resp BrowseResponse
	if err := c.post(ctx, EndpointBrowse, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Next fetches the watch page of a video, optionally inside a playlist.
func (c *Client) Next(ctx context.Context, loc Locale, videoID, playlistID string) (*NextResponse, error) {
	req := c.newRequest(loc)
	req.VideoID = videoID
	req.PlaylistID = playlistID

	var resp NextResponse
	if err := c.post(ctx, EndpointNext, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Player fetches the playback data of a video. signatureTimestamp should be
// the timestamp of the bundle whose program will resolve the formats; zero
// omits it.
func (c *Client) Player(ctx context.Context, loc Locale, videoID string, signatureTimestamp int) (*PlayerResponse, error) {
	req := c.newRequest(loc)
	req.VideoID = videoID
	req.ContentCheckOK = true
	req.RacyCheckOK = true
	if signatureTimestamp > 0 {
		req.PlaybackContext = &PlaybackContext{}
		req.PlaybackContext.ContentPlaybackContext.SignatureTimestamp = signatureTimestamp
		req.PlaybackContext.ContentPlaybackContext.HTML5Preference = "HTML5_PREF_WANTS"
	}

	var resp PlayerResponse
	if err := c.post(ctx, EndpointPlayer, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ContinueSearch follows a search continuation token.
func (c *Client) ContinueSearch(ctx context.Context, loc Locale, token string) (*SearchResponse, error) {
	req := c.newRequest(loc)
	req.Continuation = token

	var resp SearchResponse
	if err := c.post(ctx, EndpointSearch, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ContinueBrowse follows a browse or playlist continuation token.
func (c *Client) ContinueBrowse(ctx context.Context, loc Locale, token string) (*BrowseResponse, error) {
	req := c.newRequest(loc)
	req.Continuation = token

	var resp BrowseResponse
	if err := c.post(ctx, EndpointBrowse, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ContinueNext follows a comments or related videos continuation token.
func (c *Client) ContinueNext(ctx context.Context, loc Locale, token string) (*NextResponse, error) {
	req := c.newRequest(loc)
	req.Continuation = token

	var resp NextResponse
	if err := c.post(ctx, EndpointNext, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, endpoint string, req *Request, out any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", endpoint, err)
	}

	headers := map[string]string{
		"Content-Type":             "application/json",
		"Origin":                   "https://www.youtube.com",
		"Referer":                  "https://www.youtube.com/",
		"X-Youtube-Client-Name":    "1",
		"X-Youtube-Client-Version": c.clientVersion,
	}

	start := time.Now()
	resp, err := c.httpClient.Post(ctx, c.webBase+apiPath+endpoint+"?prettyPrint=false", body, headers)
	if err != nil {
		return classify(endpoint, err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%s: unmarshal response: %w", endpoint, err)
	}

	c.log.Debug("innertube request",
		zap.String("endpoint", endpoint),
		zap.Bool("continuation", req.Continuation != ""),
		zap.String("hl", req.Context.Client.HL),
		zap.Int("bytes", len(resp.Body)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// classify maps transport failures onto the package sentinels. The
// transport error stays in the chain for errors.As.
func classify(endpoint string, err error) error {
	switch ythttp.StatusCode(err) {
	case 400:
		return fmt.Errorf("%s: %w: %w", endpoint, ErrBadRequest, err)
	case 404:
		return fmt.Errorf("%s: %w: %w", endpoint, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", endpoint, err)
}

var playerIDPattern = regexp.MustCompile(`player\\?/([0-9a-fA-F]{8})\\?/`)

// BundleIdentity returns the identity of the player bundle currently
// served to web clients.
func (c *Client) BundleIdentity(ctx context.Context) (string, error) {
	resp, err := c.httpClient.Get(ctx, c.webBase+iframeAPIPath, nil)
	if err != nil {
		return "", fmt.Errorf("fetch iframe api: %w", err)
	}
	m := playerIDPattern.FindSubmatch(resp.Body)
	if m == nil {
		return "", fmt.Errorf("%w: player id in iframe api", ErrNotFound)
	}
	return string(m[1]), nil
}

// FetchBundle downloads the player script bundle of the given identity.
func (c *Client) FetchBundle(ctx context.Context, identity string) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Get(ctx, c.webBase+fmt.Sprintf(playerBundlePath, identity), nil)
	if err != nil {
		return nil, classify("player bundle", err)
	}
	c.log.Info("fetched player bundle",
		zap.String("identity", identity),
		zap.Int("bytes", len(resp.Body)),
		zap.Duration("elapsed", time.Since(start)))
	return resp.Body, nil
}
