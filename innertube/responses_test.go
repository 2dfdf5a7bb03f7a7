package innertube

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, data string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return &v
}

func kinds(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind
	}
	return out
}

func TestSearchResponseNodes(t *testing.T) {
	resp := decode[SearchResponse](t, `{
		"estimatedResults": "1000",
		"contents": {"twoColumnSearchResultsRenderer": {
			"primaryContents": {"sectionListRenderer": {"contents": [
				{"itemSectionRenderer": {"contents": [{"videoRenderer": {"videoId": "a"}}]}},
				{"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "NEXT"}}}}
			]}},
			"secondaryContents": {"secondarySearchContainerRenderer": {"contents": [
				{"universalWatchCardRenderer": {}}
			]}}
		}}
	}`)

	nodes, err := resp.Nodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"itemSectionRenderer", "continuationItemRenderer"}, kinds(nodes))
	assert.Equal(t, []string{"universalWatchCardRenderer"}, kinds(resp.Secondary()))
}

func TestMissingRootIsNotFound(t *testing.T) {
	_, err := decode[SearchResponse](t, `{}`).Nodes()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = decode[BrowseResponse](t, `{"contents": {}}`).Nodes()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = decode[NextResponse](t, `{}`).Nodes()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = decode[BrowseResponse](t, `{}`).ContinuationItems()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = decode[SearchResponse](t, `{}`).ContinuationItems()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmptyRootIsEmptyPage(t *testing.T) {
	nodes, err := decode[SearchResponse](t, `{"contents": {"twoColumnSearchResultsRenderer": {
		"primaryContents": {"sectionListRenderer": {"contents": []}}
	}}}`).Nodes()
	require.NoError(t, err)
	assert.Empty(t, nodes)

	nodes, err = decode[BrowseResponse](t, `{"onResponseReceivedActions": [
		{"appendContinuationItemsAction": {"continuationItems": []}}
	]}`).ContinuationItems()
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestBrowseResponseSelectedTab(t *testing.T) {
	resp := decode[BrowseResponse](t, `{
		"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [
			{"tabRenderer": {"title": "Home", "content": {"sectionListRenderer": {"contents": [{"shelfRenderer": {}}]}}}},
			{"tabRenderer": {"title": "Videos", "selected": true, "content": {"richGridRenderer": {"contents": [
				{"richItemRenderer": {"content": {"videoRenderer": {"videoId": "v1"}}}},
				{"continuationItemRenderer": {}}
			]}}}},
			{"expandableTabRenderer": {"title": "Search"}}
		]}},
		"header": {"c4TabbedHeaderRenderer": {"channelId": "UC1", "title": "Chan"}}
	}`)

	nodes, err := resp.Nodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"richItemRenderer", "continuationItemRenderer"}, kinds(nodes))
	assert.Len(t, resp.Tabs(), 3)
	assert.Equal(t, "c4TabbedHeaderRenderer", resp.Header.Kind)
}

func TestBrowseResponseAlert(t *testing.T) {
	resp := decode[BrowseResponse](t, `{
		"alerts": [{"alertRenderer": {"type": "ERROR", "text": {"simpleText": "This channel does not exist."}}}]
	}`)
	_, err := resp.Nodes()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "does not exist")

	info := decode[BrowseResponse](t, `{
		"alerts": [{"alertWithButtonRenderer": {"type": "INFO", "text": {"simpleText": "Unavailable videos are hidden"}}}]
	}`)
	assert.NoError(t, info.Err())
}

func TestContinuationItemsLegacyAndReload(t *testing.T) {
	legacy := decode[BrowseResponse](t, `{"continuationContents": {"playlistVideoListContinuation": {
		"contents": [{"playlistVideoRenderer": {"videoId": "a"}}],
		"continuations": [{"nextContinuationData": {"continuation": "LEGACY"}}]
	}}}`)
	nodes, err := legacy.ContinuationItems()
	require.NoError(t, err)
	assert.Equal(t, []string{"playlistVideoRenderer", "nextContinuationData"}, kinds(nodes))

	next := decode[NextResponse](t, `{"onResponseReceivedEndpoints": [
		{"reloadContinuationItemsCommand": {"slot": "RELOAD_CONTINUATION_SLOT_HEADER", "continuationItems": [{"commentsHeaderRenderer": {}}]}},
		{"reloadContinuationItemsCommand": {"slot": "RELOAD_CONTINUATION_SLOT_BODY", "continuationItems": [
			{"commentThreadRenderer": {}},
			{"continuationItemRenderer": {}}
		]}}
	]}`)
	nodes, err = next.ContinuationItems()
	require.NoError(t, err)
	assert.Equal(t, []string{"commentsHeaderRenderer", "commentThreadRenderer", "continuationItemRenderer"}, kinds(nodes))
}

func TestPlayabilityError(t *testing.T) {
	tests := []struct {
		status      string
		reason      string
		wantErr     bool
		wantMissing bool
	}{
		{"OK", "", false, false},
		{"LOGIN_REQUIRED", "Sign in to confirm your age", true, false},
		{"UNPLAYABLE", "Video unavailable", true, false},
		{"ERROR", "This video is unavailable", true, true},
		{"", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			var resp PlayerResponse
			resp.PlayabilityStatus.Status = tt.status
			resp.PlayabilityStatus.Reason = tt.reason

			err := resp.PlayabilityError("vid")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var np *NotPlayableError
			require.True(t, errors.As(err, &np))
			assert.Equal(t, "vid", np.VideoID)
			assert.Equal(t, tt.wantMissing, errors.Is(err, ErrNotFound))
		})
	}
}

func TestPlayerFormatsAndCipher(t *testing.T) {
	resp := decode[PlayerResponse](t, `{
		"playabilityStatus": {"status": "OK"},
		"streamingData": {
			"formats": [{"itag": 18, "url": "https://r1.example/videoplayback?n=abc", "mimeType": "video/mp4"}],
			"adaptiveFormats": [{"itag": 251, "signatureCipher": "s=SIG&sp=sig&url=https%3A%2F%2Fr1.example%2Fvideoplayback%3Fn%3Dabc", "mimeType": "audio/webm", "contentLength": "12345"}]
		}
	}`)

	formats := resp.Formats()
	require.Len(t, formats, 2)
	assert.Equal(t, 18, formats[0].Itag)
	assert.Equal(t, int64(12345), formats[1].Size())

	c, err := ParseCipher(formats[1].CipherString())
	require.NoError(t, err)
	assert.Equal(t, "SIG", c.Signature)
	assert.Equal(t, "sig", c.Param)
	assert.Equal(t, "https://r1.example/videoplayback?n=abc", c.URL)

	c, err = ParseCipher("s=X&url=https%3A%2F%2Fa")
	require.NoError(t, err)
	assert.Equal(t, "signature", c.Param)
}
