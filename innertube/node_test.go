package innertube

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeUnmarshalSelectsVariant(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind string
		raw  string
	}{
		{"single key", `{"videoRenderer":{"videoId":"abc"}}`, "videoRenderer", `{"videoId":"abc"}`},
		{"tracking params ignored", `{"trackingParams":"CAE","shelfRenderer":{}}`, "shelfRenderer", `{}`},
		{"only bookkeeping", `{"trackingParams":"CAE"}`, "", `{"trackingParams":"CAE"}`},
		{"empty object", `{}`, "", `{}`},
		{"null", `null`, "", `null`},
		{"string", `"oops"`, "", `"oops"`},
		{"number", `42`, "", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Node
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.kind, n.Kind)
			assert.JSONEq(t, tt.raw, string(n.Raw))
		})
	}
}

func TestParseNodesKeepsMalformedSiblings(t *testing.T) {
	nodes, err := ParseNodes([]byte(`[{"videoRenderer":{"videoId":"a"}}, 7, {"shelfRenderer":{}}]`))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, "videoRenderer", nodes[0].Kind)
	assert.Equal(t, "", nodes[1].Kind)
	assert.Equal(t, "shelfRenderer", nodes[2].Kind)
}

func TestNodeMarshalRoundTrip(t *testing.T) {
	n, err := NewNode("chipCloudChipRenderer", ChipRenderer{IsSelected: true})
	require.NoError(t, err)

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var back Node
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "chipCloudChipRenderer", back.Kind)

	var chip ChipRenderer
	require.NoError(t, back.Decode(&chip))
	assert.True(t, chip.IsSelected)
}

func TestNodeDecodeEmpty(t *testing.T) {
	var n Node
	assert.True(t, n.IsZero())
	assert.Error(t, n.Decode(&VideoRenderer{}))
}

func TestTextString(t *testing.T) {
	var nilText *Text
	assert.Equal(t, "", nilText.String())
	assert.Equal(t, "hi", (&Text{SimpleText: "hi"}).String())
	assert.Equal(t, "a b", (&Text{Runs: []Run{{Text: "a "}, {Text: "b"}}}).String())

	labelled := &Text{SimpleText: "3:21"}
	labelled.Accessibility = &Accessibility{}
	labelled.Accessibility.AccessibilityData.Label = "3 minutes, 21 seconds"
	assert.Equal(t, "3 minutes, 21 seconds", labelled.Label())
}

func TestEndpointAccessors(t *testing.T) {
	var e Endpoint
	require.NoError(t, json.Unmarshal([]byte(`{
		"innertubeCommand": {
			"browseEndpoint": {"browseId": "UC123", "canonicalBaseUrl": "/@someone"}
		}
	}`), &e))
	assert.Equal(t, "UC123", e.BrowseID())
	assert.Equal(t, "@someone", e.Handle())
	assert.Equal(t, "", e.VideoID())

	var nilEndpoint *Endpoint
	assert.Equal(t, "", nilEndpoint.Token())
	assert.Equal(t, "", nilEndpoint.BrowseID())

	reel := &Endpoint{ReelWatchEndpoint: &WatchEndpoint{VideoID: "short1"}}
	assert.Equal(t, "short1", reel.VideoID())
}
