package renderer

import (
	"strconv"
	"strings"
	"time"

	"ytkit/innertube"
	"ytkit/locale"
)

// thumbs returns the renditions of t, never nil.
func thumbs(t *innertube.Thumbnails) []innertube.Thumbnail {
	if t == nil {
		return []innertube.Thumbnail{}
	}
	return append([]innertube.Thumbnail{}, t.Thumbnails...)
}

func sources(s innertube.ImageSources) []innertube.Thumbnail {
	return append([]innertube.Thumbnail{}, s.Sources...)
}

// firstText returns the first non-empty text of ts.
func firstText(ts ...*innertube.Text) string {
	for _, t := range ts {
		if s := strings.TrimSpace(t.String()); s != "" {
			return s
		}
	}
	return ""
}

// byline builds a channel reference from a linked byline text.
func byline(ts ...*innertube.Text) ChannelRef {
	for _, t := range ts {
		name := strings.TrimSpace(t.String())
		if name == "" {
			continue
		}
		ref := ChannelRef{Name: name, Thumbnails: []innertube.Thumbnail{}}
		if e := t.FirstEndpoint(); e != nil {
			ref.ID = e.BrowseID()
			ref.Handle = e.Handle()
		}
		return ref
	}
	return ChannelRef{Thumbnails: []innertube.Thumbnail{}}
}

// parseDuration reads "1:02:03", "2:03" or "45" as a duration.
func parseDuration(text string) time.Duration {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	var total int64
	for _, part := range strings.Split(text, ":") {
		n, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return time.Duration(total) * time.Second
}

func secondsDuration(s string) time.Duration {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

// count applies fn to text, returning the sentinel for empty text.
func count(text string, fn func(string) int64) int64 {
	if strings.TrimSpace(text) == "" {
		return locale.InvalidCount
	}
	return fn(text)
}

// badgeInfo is what the badge lists of a tile tell about it.
type badgeInfo struct {
	labels   []string
	verified bool
	live     bool
	upcoming bool
	short    bool
	duration string
}

func (c *Converter) badges(lists ...[]innertube.Node) badgeInfo {
	info := badgeInfo{labels: []string{}}
	for _, list := range lists {
		for _, n := range list {
			switch n.Kind {
			case "metadataBadgeRenderer":
				var b innertube.Badge
				if n.Decode(&b) != nil {
					continue
				}
				switch b.Style {
				case "BADGE_STYLE_TYPE_VERIFIED", "BADGE_STYLE_TYPE_VERIFIED_ARTIST":
					info.verified = true
				case "BADGE_STYLE_TYPE_LIVE_NOW":
					info.live = true
				}
				label := b.Label
				if label == "" {
					label = b.Tooltip
				}
				if label != "" {
					info.labels = append(info.labels, label)
				}
			case "thumbnailOverlayTimeStatusRenderer":
				var o innertube.TimeStatusOverlay
				if n.Decode(&o) != nil {
					continue
				}
				switch o.Style {
				case "LIVE":
					info.live = true
				case "UPCOMING":
					info.upcoming = true
				case "SHORTS":
					info.short = true
				default:
					info.duration = o.Text.String()
				}
			case "thumbnailOverlayBadgeViewModel":
				var o struct {
					ThumbnailBadges []struct {
						ThumbnailBadgeViewModel innertube.ThumbnailBadgeViewModel `json:"thumbnailBadgeViewModel"`
					} `json:"thumbnailBadges"`
				}
				if n.Decode(&o) != nil {
					continue
				}
				for _, b := range o.ThumbnailBadges {
					switch b.ThumbnailBadgeViewModel.BadgeStyle {
					case "THUMBNAIL_OVERLAY_BADGE_STYLE_LIVE":
						info.live = true
					default:
						if info.duration == "" {
							info.duration = b.ThumbnailBadgeViewModel.Text
						}
					}
				}
			}
		}
	}
	return info
}

// applyPublished fills the published fields of v from a date text, which
// may be relative ("2 hours ago") or absolute ("Jan 3, 2024").
func (c *Converter) applyPublished(v *Video, text string) {
	v.PublishedText = strings.TrimSpace(text)
	v.Published = locale.InvalidDelta
	if v.PublishedText == "" {
		return
	}
	v.Published = c.parser.ParseRelativeDate(v.PublishedText)
	if v.Published == locale.InvalidDelta {
		v.PublishedDate = c.parser.ParseFullDate(v.PublishedText)
	}
	v.UploadType = c.parser.ParseUploadType(v.PublishedText)
}

func (c *Converter) applyViews(v *Video, text string) {
	v.ViewCountText = strings.TrimSpace(text)
	v.ViewCount = count(v.ViewCountText, c.parser.ParseViewCount)
}

// unixTime reads an upcoming event start time given in epoch seconds.
func unixTime(s string) time.Time {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return time.Time{}
	}
	return time.Unix(n, 0).UTC()
}

// splitInfo splits a "1.2M views • 2 years ago" line on its separator.
func splitInfo(text string) []string {
	var out []string
	for _, part := range strings.Split(text, "•") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
