package ytkit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytkit/config"
	"ytkit/continuation"
	"ytkit/innertube"
	"ytkit/renderer"
)

const testBundle = `var yt={};yt.config={signatureTimestamp:19834};
var XY={Ab:function(a){a.reverse()},
cd:function(a,b){a.splice(0,b)},
Ef:function(a,b){var c=a[0];a[0]=a[b%a.length];a[b%a.length]=c}};
Qz=function(a){a=a.split("");XY.cd(a,2);XY.Ab(a,45);XY.Ef(a,3);return a.join("")};
var nArr=[Nf];
function Nf(b){var c=b.split("");if(typeof nArr==="undefined")return b;c.reverse();return c.join("")+"_n"}
var Ux=function(a){var b;if((b=a.get("n"))&&(b=nArr[0](b)))a.set("n",b)};`

const (
	searchBody = `{"contents": {"twoColumnSearchResultsRenderer": {"primaryContents": {"sectionListRenderer": {"contents": [
		{"itemSectionRenderer": {"contents": [
			{"videoRenderer": {"videoId": "a", "title": {"runs": [{"text": "First"}]}, "viewCountText": {"simpleText": "1,234 views"}}},
			{"promotedSparklesWebRenderer": {}}
		]}},
		{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "S2"}}}}
	]}}}}}`

	searchNextBody = `{"onResponseReceivedCommands": [{"appendContinuationItemsAction": {"continuationItems": [
		{"itemSectionRenderer": {"contents": [{"videoRenderer": {"videoId": "b"}}]}}
	]}}]}`

	playlistBody = `{"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"selected": true, "content":
		{"sectionListRenderer": {"contents": [{"itemSectionRenderer": {"contents": [{"playlistVideoListRenderer": {"playlistId": "PL1", "contents": [
			{"playlistVideoRenderer": {"videoId": "v1", "index": {"simpleText": "1"}}},
			{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "P2"}}}}
		]}}]}}]}}}}]}}}`

	playlistNextBody = `{"onResponseReceivedActions": [{"appendContinuationItemsAction": {"continuationItems": [
		{"playlistVideoRenderer": {"videoId": "v2", "index": {"simpleText": "2"}}}
	]}}]}`

	offsetBody = `{"onResponseReceivedActions": [{"appendContinuationItemsAction": {"continuationItems": [
		{"playlistVideoRenderer": {"videoId": "v101", "index": {"simpleText": "101"}}}
	]}}]}`

	missingChannelBody = `{"alerts": [{"alertRenderer": {"type": "ERROR", "text": {"simpleText": "This channel does not exist."}}}]}`

	watchBody = `{"contents": {"twoColumnWatchNextResults": {
		"results": {"results": {"contents": [
			{"videoPrimaryInfoRenderer": {"title": {"runs": [{"text": "Watched"}]}}},
			{"itemSectionRenderer": {"sectionIdentifier": "comment-item-section", "contents": [
				{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "C1"}}}}
			]}}
		]}},
		"secondaryResults": {"secondaryResults": {"results": [
			{"compactVideoRenderer": {"videoId": "r1"}}
		]}}
	}}}`

	commentsBody = `{"onResponseReceivedEndpoints": [{"appendContinuationItemsAction": {"continuationItems": [
		{"commentThreadRenderer": {"comment": {"commentRenderer": {"commentId": "c1"}}}}
	]}}]}`

	iframeBody = `var scriptUrl = 'https:\/\/www.youtube.com\/s\/player\/abcd1234\/www-widgetapi.vflset\/www-widgetapi.js';`
)

func playerBody(status string) string {
	cipher := "s=abcdefghij&sp=sig&url=" + url.QueryEscape("https://rr1.example.com/videoplayback?itag=18&n=abc")
	f, _ := json.Marshal([]innertube.Format{
		{Itag: 18, SignatureCipher: cipher, MimeType: `video/mp4; codecs="avc1.42001E, mp4a.40.2"`},
		{Itag: 140, URL: "https://rr1.example.com/videoplayback?itag=140&n=xyz", MimeType: "audio/mp4"},
	})
	return `{"playabilityStatus": {"status": "` + status + `", "reason": "Video unavailable"},
		"streamingData": {"formats": ` + string(f) + `},
		"videoDetails": {"videoId": "vid", "title": "Watched", "author": "Someone", "lengthSeconds": "212"}}`
}

type fakeYouTube struct {
	t *testing.T

	mu           sync.Mutex
	playerStatus string
	player       innertube.Request
	bundleHits   int
}

func (f *fakeYouTube) setPlayerStatus(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.playerStatus = s
}

func (f *fakeYouTube) lastPlayer() (innertube.Request, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.player, f.bundleHits
}

func (f *fakeYouTube) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/iframe_api":
		io.WriteString(w, iframeBody)
		return
	case "/s/player/abcd1234/player_ias.vflset/en_US/base.js":
		f.mu.Lock()
		f.bundleHits++
		f.mu.Unlock()
		io.WriteString(w, testBundle)
		return
	}

	var req innertube.Request
	body, _ := io.ReadAll(r.Body)
	assert.NoError(f.t, json.Unmarshal(body, &req))

	switch r.URL.Path {
	case "/youtubei/v1/search":
		if req.Continuation == "S2" {
			io.WriteString(w, searchNextBody)
			return
		}
		io.WriteString(w, searchBody)
	case "/youtubei/v1/browse":
		switch {
		case req.BrowseID == "VLPL1":
			io.WriteString(w, playlistBody)
		case req.BrowseID != "":
			io.WriteString(w, missingChannelBody)
		case req.Continuation == "P2":
			io.WriteString(w, playlistNextBody)
		default:
			tok, err := continuation.DecodeBrowse(req.Continuation)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if off, err := tok.Offset(); err == nil && off == 100 && tok.ListID == "PL1" {
				io.WriteString(w, offsetBody)
				return
			}
			io.WriteString(w, `{}`)
		}
	case "/youtubei/v1/next":
		if req.Continuation == "C1" {
			io.WriteString(w, commentsBody)
			return
		}
		io.WriteString(w, watchBody)
	case "/youtubei/v1/player":
		f.mu.Lock()
		f.player = req
		status := f.playerStatus
		f.mu.Unlock()
		io.WriteString(w, playerBody(status))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestClient(t *testing.T, cfg *config.Config) (*Client, *fakeYouTube) {
	t.Helper()
	fake := &fakeYouTube{t: t, playerStatus: "OK"}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.RequestsPerSecond = 0
	cfg.MaxRetries = 0
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = time.Millisecond

	c, err := New(cfg, WithBaseURL(server.URL+"/"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, fake
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timeout = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestSearchAndContinue(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	page, err := c.Search(ctx, "golang", "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	section := page.Items[0]
	assert.Equal(t, renderer.CategoryContainer, section.Category)
	// The ad shell is dropped.
	require.Len(t, section.Children(), 1)
	v := section.Children()[0].Data.(renderer.Video)
	assert.Equal(t, "a", v.ID)
	assert.Equal(t, "First", v.Title)
	assert.Equal(t, int64(1234), v.ViewCount)

	require.True(t, page.HasNext())
	assert.Equal(t, Token{Family: continuation.FamilySearch, Value: "S2"}, page.Next)

	page, err = c.Continue(ctx, page.Next)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "b", page.Items[0].Children()[0].Data.(renderer.Video).ID)
	assert.False(t, page.HasNext())
}

func TestPlaylistPages(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	page, err := c.Playlist(ctx, "PL1")
	require.NoError(t, err)
	require.True(t, page.HasNext())
	assert.Equal(t, continuation.FamilyPlaylist, page.Next.Family)
	assert.Equal(t, "P2", page.Next.Value)

	page, err = c.Continue(ctx, page.Next)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Items[0].Data.(renderer.Video).Index)
}

func TestPlaylistAt(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	page, err := c.PlaylistAt(ctx, "PL1", 100)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "v101", page.Items[0].Data.(renderer.Video).ID)

	// Past the end of the list.
	page, err = c.PlaylistAt(ctx, "PL1", 5000)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext())

	_, err = c.PlaylistAt(ctx, "PL1", -1)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestWalkPlaylist(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	first, err := c.Playlist(ctx, "PL1")
	require.NoError(t, err)

	state := continuation.NewState(first.Next)
	var ids []string
	err = c.Walk(ctx, state, func(p *Page) error {
		for _, item := range p.Items {
			ids = append(ids, item.Data.(renderer.Video).ID)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"v2"}, ids)
	assert.Equal(t, 1, state.Pages)
}

func TestBrowseMissingChannel(t *testing.T) {
	c, _ := newTestClient(t, nil)
	_, err := c.Browse(context.Background(), "UCmissing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContinueForeignToken(t *testing.T) {
	c, _ := newTestClient(t, nil)
	_, err := c.Continue(context.Background(), Token{Family: continuation.FamilyBrowse, Value: "!!bad!!"})
	assert.ErrorIs(t, err, ErrBadRequest)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

func TestWatchAndComments(t *testing.T) {
	c, _ := newTestClient(t, nil)
	ctx := context.Background()

	w, err := c.Watch(ctx, "vid", "")
	require.NoError(t, err)
	require.Len(t, w.Items, 2)
	assert.Equal(t, renderer.CategoryVideo, w.Items[0].Category)
	require.Len(t, w.Related, 1)
	assert.Equal(t, "r1", w.Related[0].Data.(renderer.Video).ID)
	assert.Nil(t, w.Playlist)
	assert.Equal(t, Token{Family: continuation.FamilyComments, Value: "C1"}, w.Comments)

	page, err := c.Comments(ctx, "vid")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, renderer.CategoryComment, page.Items[0].Category)
}

func TestPlayer(t *testing.T) {
	c, fake := newTestClient(t, nil)
	ctx := context.Background()

	pb, err := c.Player(ctx, "vid")
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", pb.PlayerID)
	assert.Equal(t, "Watched", pb.Title)
	assert.Equal(t, "Someone", pb.Author)
	assert.Equal(t, 212*time.Second, pb.Duration)

	player, _ := fake.lastPlayer()
	require.NotNil(t, player.PlaybackContext)
	assert.Equal(t, 19834, player.PlaybackContext.ContentPlaybackContext.SignatureTimestamp)

	require.Len(t, pb.Formats, 2)
	assert.Equal(t, "https://rr1.example.com/videoplayback?itag=18&n=cba_n&sig=gihjfedc", pb.Formats[0].URL)
	assert.Equal(t, "https://rr1.example.com/videoplayback?itag=140&n=zyx_n", pb.Formats[1].URL)

	// The compiled program is reused for later calls.
	_, err = c.Player(ctx, "vid")
	require.NoError(t, err)
	_, hits := fake.lastPlayer()
	assert.Equal(t, 1, hits)
}

func TestPlayerNotPlayable(t *testing.T) {
	c, fake := newTestClient(t, nil)
	fake.setPlayerStatus("ERROR")

	_, err := c.Player(context.Background(), "vid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var np *NotPlayableError
	require.True(t, errors.As(err, &np))
	assert.Equal(t, "Video unavailable", np.Reason)
}

func TestUnknownLanguage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Language = "xx"
	c, _ := newTestClient(t, cfg)

	_, err := c.Search(context.Background(), "golang", "")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}
