package innertube

import (
	"fmt"
	"strings"
)

// Action is one entry of the onResponseReceived* lists carried by
// continuation responses.
type Action struct {
	AppendContinuationItemsAction  *ContinuationAction `json:"appendContinuationItemsAction,omitempty"`
	ReloadContinuationItemsCommand *ContinuationAction `json:"reloadContinuationItemsCommand,omitempty"`
}

// ContinuationAction holds the nodes appended to (or replacing) a listing.
type ContinuationAction struct {
	ContinuationItems []Node `json:"continuationItems,omitempty"`
	TargetID          string `json:"targetId,omitempty"`
	Slot              string `json:"slot,omitempty"`
}

// Alert is an alertRenderer or alertWithButtonRenderer payload.
type Alert struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// continuationItems flattens the actions of a continuation response. A
// response with neither actions nor legacy continuation contents has no
// continuation root.
func continuationItems(family string, actions []Action, legacy *Node) ([]Node, error) {
	if len(actions) == 0 && (legacy == nil || legacy.Kind == "") {
		return nil, fmt.Errorf("%w: %s continuation root", ErrNotFound, family)
	}

	var out []Node
	for _, a := range actions {
		if a.ReloadContinuationItemsCommand != nil {
			out = append(out, a.ReloadContinuationItemsCommand.ContinuationItems...)
		}
		if a.AppendContinuationItemsAction != nil {
			out = append(out, a.AppendContinuationItemsAction.ContinuationItems...)
		}
	}
	if legacy != nil && legacy.Kind != "" {
		var list ListRenderer
		if err := legacy.Decode(&list); err != nil {
			return nil, fmt.Errorf("%s continuation root: %w", family, err)
		}
		out = append(out, list.Contents...)
		out = append(out, list.Continuations...)
	}
	return out, nil
}

// alertError maps an ERROR alert to ErrNotFound.
func alertError(alerts []Node) error {
	for _, n := range alerts {
		if !strings.HasPrefix(n.Kind, "alert") {
			continue
		}
		var a Alert
		if err := n.Decode(&a); err != nil {
			continue
		}
		if a.Type == "ERROR" {
			return fmt.Errorf("%w: %s", ErrNotFound, a.Text.String())
		}
	}
	return nil
}

// sectionChildren unwraps a section list into its sections. Any other
// node is returned as the only child.
func sectionChildren(n *Node) ([]Node, error) {
	if n == nil || n.Kind == "" {
		return nil, nil
	}
	switch n.Kind {
	case "sectionListRenderer", "richGridRenderer":
		var list ListRenderer
		if err := n.Decode(&list); err != nil {
			return nil, err
		}
		out := append([]Node(nil), list.Contents...)
		return append(out, list.Continuations...), nil
	}
	return []Node{*n}, nil
}

// SearchResponse is the response of the search endpoint.
type SearchResponse struct {
	EstimatedResults string `json:"estimatedResults,omitempty"`
	Contents         *struct {
		TwoColumnSearchResultsRenderer *struct {
			PrimaryContents   *Node `json:"primaryContents,omitempty"`
			SecondaryContents *Node `json:"secondaryContents,omitempty"`
		} `json:"twoColumnSearchResultsRenderer,omitempty"`
		SectionListRenderer *ListRenderer `json:"sectionListRenderer,omitempty"`
	} `json:"contents,omitempty"`
	Refinements                []string `json:"refinements,omitempty"`
	OnResponseReceivedCommands []Action `json:"onResponseReceivedCommands,omitempty"`
}

// Nodes returns the result sections of an initial search page.
func (r *SearchResponse) Nodes() ([]Node, error) {
	if r == nil || r.Contents == nil {
		return nil, fmt.Errorf("%w: search contents", ErrNotFound)
	}
	if two := r.Contents.TwoColumnSearchResultsRenderer; two != nil && two.PrimaryContents != nil {
		nodes, err := sectionChildren(two.PrimaryContents)
		if err != nil {
			return nil, fmt.Errorf("search contents: %w", err)
		}
		return nodes, nil
	}
	if list := r.Contents.SectionListRenderer; list != nil {
		out := append([]Node(nil), list.Contents...)
		return append(out, list.Continuations...), nil
	}
	return nil, fmt.Errorf("%w: search contents", ErrNotFound)
}

// Secondary returns the sidebar nodes of a search page, if any.
func (r *SearchResponse) Secondary() []Node {
	if r == nil || r.Contents == nil || r.Contents.TwoColumnSearchResultsRenderer == nil {
		return nil
	}
	side := r.Contents.TwoColumnSearchResultsRenderer.SecondaryContents
	if side == nil || side.Kind == "" {
		return nil
	}
	var list ListRenderer
	if err := side.Decode(&list); err != nil {
		return []Node{*side}
	}
	return list.Contents
}

// ContinuationItems returns the appended nodes of a search continuation.
func (r *SearchResponse) ContinuationItems() ([]Node, error) {
	return continuationItems("search", r.OnResponseReceivedCommands, nil)
}

// BrowseResponse is the response of the browse endpoint, used for
// channels, playlists and feeds.
type BrowseResponse struct {
	Contents *struct {
		TwoColumnBrowseResultsRenderer *struct {
			Tabs []Node `json:"tabs,omitempty"`
		} `json:"twoColumnBrowseResultsRenderer,omitempty"`
		SingleColumnBrowseResultsRenderer *struct {
			Tabs []Node `json:"tabs,omitempty"`
		} `json:"singleColumnBrowseResultsRenderer,omitempty"`
	} `json:"contents,omitempty"`
	Header                    *Node    `json:"header,omitempty"`
	Alerts                    []Node   `json:"alerts,omitempty"`
	OnResponseReceivedActions []Action `json:"onResponseReceivedActions,omitempty"`
	ContinuationContents      *Node    `json:"continuationContents,omitempty"`
	Metadata                  *struct {
		ChannelMetadataRenderer *struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ExternalID  string `json:"externalId"`
			VanityURL   string `json:"vanityChannelUrl,omitempty"`
		} `json:"channelMetadataRenderer,omitempty"`
		PlaylistMetadataRenderer *struct {
			Title       string `json:"title"`
			Description string `json:"description,omitempty"`
		} `json:"playlistMetadataRenderer,omitempty"`
	} `json:"metadata,omitempty"`
}

// Err reports an ERROR alert, which the browse endpoint returns for
// channels and playlists that do not exist.
func (r *BrowseResponse) Err() error {
	if r == nil {
		return fmt.Errorf("%w: empty browse response", ErrNotFound)
	}
	return alertError(r.Alerts)
}

// Tabs returns the tab nodes of the page.
func (r *BrowseResponse) Tabs() []Node {
	if r == nil || r.Contents == nil {
		return nil
	}
	if two := r.Contents.TwoColumnBrowseResultsRenderer; two != nil {
		return two.Tabs
	}
	if one := r.Contents.SingleColumnBrowseResultsRenderer; one != nil {
		return one.Tabs
	}
	return nil
}

// Nodes returns the content of the selected tab, unwrapped from its
// section list or grid.
func (r *BrowseResponse) Nodes() ([]Node, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	tabs := r.Tabs()
	if len(tabs) == 0 {
		return nil, fmt.Errorf("%w: browse contents", ErrNotFound)
	}

	var chosen *TabRenderer
	for _, n := range tabs {
		var tab TabRenderer
		if n.Kind != "tabRenderer" && n.Kind != "expandableTabRenderer" {
			continue
		}
		if err := n.Decode(&tab); err != nil {
			continue
		}
		if tab.Content == nil {
			continue
		}
		if tab.Selected || chosen == nil {
			t := tab
			chosen = &t
			if tab.Selected {
				break
			}
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: browse tab content", ErrNotFound)
	}

	nodes, err := sectionChildren(chosen.Content)
	if err != nil {
		return nil, fmt.Errorf("browse tab %q: %w", chosen.Title, err)
	}
	return nodes, nil
}

// ContinuationItems returns the appended nodes of a browse or playlist
// continuation.
func (r *BrowseResponse) ContinuationItems() ([]Node, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: browse continuation root", ErrNotFound)
	}
	return continuationItems("browse", r.OnResponseReceivedActions, r.ContinuationContents)
}

// NextResponse is the response of the next (watch page) endpoint.
type NextResponse struct {
	Contents *struct {
		TwoColumnWatchNextResults *struct {
			Results *struct {
				Results *struct {
					Contents []Node `json:"contents,omitempty"`
				} `json:"results,omitempty"`
			} `json:"results,omitempty"`
			SecondaryResults *struct {
				SecondaryResults *struct {
					Results []Node `json:"results,omitempty"`
				} `json:"secondaryResults,omitempty"`
			} `json:"secondaryResults,omitempty"`
			Playlist *struct {
				Playlist *PlaylistPanelRenderer `json:"playlist,omitempty"`
			} `json:"playlist,omitempty"`
		} `json:"twoColumnWatchNextResults,omitempty"`
	} `json:"contents,omitempty"`
	OnResponseReceivedEndpoints []Action `json:"onResponseReceivedEndpoints,omitempty"`
}

// Nodes returns the primary watch page column: the video info blocks and
// the comment section entry point.
func (r *NextResponse) Nodes() ([]Node, error) {
	if r == nil || r.Contents == nil || r.Contents.TwoColumnWatchNextResults == nil ||
		r.Contents.TwoColumnWatchNextResults.Results == nil ||
		r.Contents.TwoColumnWatchNextResults.Results.Results == nil {
		return nil, fmt.Errorf("%w: watch contents", ErrNotFound)
	}
	return r.Contents.TwoColumnWatchNextResults.Results.Results.Contents, nil
}

// Related returns the secondary column of related videos.
func (r *NextResponse) Related() []Node {
	if r == nil || r.Contents == nil || r.Contents.TwoColumnWatchNextResults == nil ||
		r.Contents.TwoColumnWatchNextResults.SecondaryResults == nil ||
		r.Contents.TwoColumnWatchNextResults.SecondaryResults.SecondaryResults == nil {
		return nil
	}
	return r.Contents.TwoColumnWatchNextResults.SecondaryResults.SecondaryResults.Results
}

// Playlist returns the playlist panel when the video is played inside a
// playlist.
func (r *NextResponse) Playlist() *PlaylistPanelRenderer {
	if r == nil || r.Contents == nil || r.Contents.TwoColumnWatchNextResults == nil ||
		r.Contents.TwoColumnWatchNextResults.Playlist == nil {
		return nil
	}
	return r.Contents.TwoColumnWatchNextResults.Playlist.Playlist
}

// ContinuationItems returns the appended nodes of a comments or related
// videos continuation.
func (r *NextResponse) ContinuationItems() ([]Node, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: next continuation root", ErrNotFound)
	}
	return continuationItems("next", r.OnResponseReceivedEndpoints, nil)
}
