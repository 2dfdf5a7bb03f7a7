package innertube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ythttp "ytkit/http"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ythttp.DefaultConfig()
	cfg.RateLimiter.RPS = 0
	cfg.Retry.MaxRetries = 1
	cfg.Retry.InitialBackoff = time.Millisecond
	cfg.Retry.MaxBackoff = time.Millisecond
	httpClient := ythttp.New(cfg)
	t.Cleanup(func() { httpClient.Close() })

	return NewClient(httpClient, WithBaseURL(server.URL+"/"))
}

func TestClientSendsLocaleAndContinuation(t *testing.T) {
	var got Request
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"onResponseReceivedActions": [{"appendContinuationItemsAction": {"continuationItems": []}}]}`))
	})

	resp, err := c.ContinueBrowse(context.Background(), Locale{Language: "fr", Region: "CA"}, "TOKEN")
	require.NoError(t, err)

	assert.Equal(t, "/youtubei/v1/browse", path)
	assert.Equal(t, "TOKEN", got.Continuation)
	assert.Equal(t, "fr", got.Context.Client.HL)
	assert.Equal(t, "CA", got.Context.Client.GL)
	assert.Equal(t, DefaultClientName, got.Context.Client.ClientName)

	items, err := resp.ContinuationItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClientPlayerSendsSignatureTimestamp(t *testing.T) {
	var got Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Write([]byte(`{"playabilityStatus": {"status": "OK"}}`))
	})

	resp, err := c.Player(context.Background(), Locale{Language: "en"}, "dQw4w9WgXcQ", 19834)
	require.NoError(t, err)
	assert.NoError(t, resp.PlayabilityError("dQw4w9WgXcQ"))

	require.NotNil(t, got.PlaybackContext)
	assert.Equal(t, 19834, got.PlaybackContext.ContentPlaybackContext.SignatureTimestamp)
	assert.Equal(t, "dQw4w9WgXcQ", got.VideoID)
}

func TestClientClassifiesStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.ContinueSearch(context.Background(), Locale{Language: "en"}, "stale")
			assert.ErrorIs(t, err, tt.want)

			var httpErr *ythttp.HTTPError
			assert.True(t, errors.As(err, &httpErr))
		})
	}
}

func TestClientBundleIdentityAndFetch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/iframe_api":
			w.Write([]byte(`var scriptUrl = 'https:\/\/www.youtube.com\/s\/player\/9c6dfc4a\/www-widgetapi.vflset\/www-widgetapi.js';`))
		case strings.HasPrefix(r.URL.Path, "/s/player/9c6dfc4a/"):
			w.Write([]byte("var bundle;"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	id, err := c.BundleIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "9c6dfc4a", id)

	body, err := c.FetchBundle(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "var bundle;", string(body))

	_, err = c.FetchBundle(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientBundleIdentityMissing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`nothing here`))
	})
	_, err := c.BundleIdentity(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
