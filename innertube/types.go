package innertube

import "strings"

// Text is the formatted text object used throughout responses. It is
// either a simple string or a list of runs.
type Text struct {
	SimpleText    string         `json:"simpleText,omitempty"`
	Runs          []Run          `json:"runs,omitempty"`
	Accessibility *Accessibility `json:"accessibility,omitempty"`
}

// Run is a segment of text, optionally linked.
type Run struct {
	Text               string    `json:"text"`
	Bold               bool      `json:"bold,omitempty"`
	NavigationEndpoint *Endpoint `json:"navigationEndpoint,omitempty"`
}

// Accessibility carries the screen reader label of a text or button.
type Accessibility struct {
	AccessibilityData struct {
		Label string `json:"label"`
	} `json:"accessibilityData"`
}

// String joins the text runs. It is safe on a nil receiver.
func (t *Text) String() string {
	if t == nil {
		return ""
	}
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Label returns the accessibility label, falling back to the text itself.
func (t *Text) Label() string {
	if t == nil {
		return ""
	}
	if t.Accessibility != nil && t.Accessibility.AccessibilityData.Label != "" {
		return t.Accessibility.AccessibilityData.Label
	}
	return t.String()
}

// FirstEndpoint returns the first linked endpoint of the runs, if any.
func (t *Text) FirstEndpoint() *Endpoint {
	if t == nil {
		return nil
	}
	for _, r := range t.Runs {
		if r.NavigationEndpoint != nil {
			return r.NavigationEndpoint
		}
	}
	return nil
}

// DynamicText is the plain text object used by view models.
type DynamicText struct {
	Content string `json:"content"`
}

// Thumbnails is a list of renditions of one image.
type Thumbnails struct {
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}

// Thumbnail is a single image rendition.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ImageSources is the view model equivalent of Thumbnails.
type ImageSources struct {
	Sources []Thumbnail `json:"sources,omitempty"`
}

// Endpoint is a navigation target. At most one member is set.
type Endpoint struct {
	BrowseEndpoint      *BrowseEndpoint      `json:"browseEndpoint,omitempty"`
	WatchEndpoint       *WatchEndpoint       `json:"watchEndpoint,omitempty"`
	ReelWatchEndpoint   *WatchEndpoint       `json:"reelWatchEndpoint,omitempty"`
	SearchEndpoint      *SearchEndpoint      `json:"searchEndpoint,omitempty"`
	URLEndpoint         *URLEndpoint         `json:"urlEndpoint,omitempty"`
	ContinuationCommand *ContinuationCommand `json:"continuationCommand,omitempty"`
	InnertubeCommand    *Endpoint            `json:"innertubeCommand,omitempty"`
}

// BrowseEndpoint targets a browse page: channel, playlist or feed.
type BrowseEndpoint struct {
	BrowseID         string `json:"browseId"`
	Params           string `json:"params,omitempty"`
	CanonicalBaseURL string `json:"canonicalBaseUrl,omitempty"`
}

// WatchEndpoint targets a video, optionally inside a playlist.
type WatchEndpoint struct {
	VideoID          string `json:"videoId"`
	PlaylistID       string `json:"playlistId,omitempty"`
	Index            int    `json:"index,omitempty"`
	Params           string `json:"params,omitempty"`
	StartTimeSeconds int    `json:"startTimeSeconds,omitempty"`
}

// SearchEndpoint targets a search query.
type SearchEndpoint struct {
	Query  string `json:"query"`
	Params string `json:"params,omitempty"`
}

// URLEndpoint targets an external URL.
type URLEndpoint struct {
	URL string `json:"url"`
}

// ContinuationCommand carries a continuation token.
type ContinuationCommand struct {
	Token   string `json:"token"`
	Request string `json:"request,omitempty"`
}

// Resolve follows innertubeCommand indirection used by view models.
func (e *Endpoint) Resolve() *Endpoint {
	for e != nil && e.InnertubeCommand != nil {
		e = e.InnertubeCommand
	}
	return e
}

// BrowseID returns the browse id of the endpoint, if it is a browse target.
func (e *Endpoint) BrowseID() string {
	if e = e.Resolve(); e == nil || e.BrowseEndpoint == nil {
		return ""
	}
	return e.BrowseEndpoint.BrowseID
}

// VideoID returns the video id of a watch or reel endpoint.
func (e *Endpoint) VideoID() string {
	e = e.Resolve()
	switch {
	case e == nil:
		return ""
	case e.WatchEndpoint != nil:
		return e.WatchEndpoint.VideoID
	case e.ReelWatchEndpoint != nil:
		return e.ReelWatchEndpoint.VideoID
	}
	return ""
}

// Token returns the continuation token of the endpoint, if any.
func (e *Endpoint) Token() string {
	if e = e.Resolve(); e == nil || e.ContinuationCommand == nil {
		return ""
	}
	return e.ContinuationCommand.Token
}

// Handle returns the "@handle" part of a channel's canonical URL.
func (e *Endpoint) Handle() string {
	if e = e.Resolve(); e == nil || e.BrowseEndpoint == nil {
		return ""
	}
	base := e.BrowseEndpoint.CanonicalBaseURL
	if i := strings.Index(base, "/@"); i >= 0 {
		return base[i+1:]
	}
	return ""
}

// Badge is a metadataBadgeRenderer payload.
type Badge struct {
	Style   string `json:"style,omitempty"`
	Label   string `json:"label,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
	Icon    *Icon  `json:"icon,omitempty"`
}

// Icon names a built-in icon.
type Icon struct {
	IconType string `json:"iconType"`
}

// TimeStatusOverlay is a thumbnailOverlayTimeStatusRenderer payload.
type TimeStatusOverlay struct {
	Text  Text   `json:"text"`
	Style string `json:"style,omitempty"`
}
