package renderer

import (
	"strings"

	"ytkit/innertube"
	"ytkit/locale"
)

func init() {
	register(convertPlaylist,
		"playlistRenderer",
		"compactPlaylistRenderer",
		"gridPlaylistRenderer",
		"radioRenderer",
		"compactRadioRenderer",
		"endScreenPlaylistRenderer",
	)
}

func newPlaylist(id string) Playlist {
	return Playlist{
		ID:         id,
		Thumbnails: []innertube.Thumbnail{},
		Channel:    ChannelRef{Thumbnails: []innertube.Thumbnail{}},
		VideoCount: locale.InvalidCount,
		Videos:     []Container{},
	}
}

func convertPlaylist(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.PlaylistRenderer](n)
	if err != nil {
		return Container{}, err
	}
	p := newPlaylist(r.PlaylistID)
	p.Title = firstText(r.Title)
	p.Channel = byline(r.LongBylineText, r.ShortBylineText)
	p.Channel.Verified = c.badges(r.OwnerBadges).verified
	p.Mix = strings.Contains(strings.ToLower(n.Kind), "radio") || strings.HasPrefix(r.PlaylistID, "RD")

	switch {
	case r.Thumbnail != nil:
		p.Thumbnails = thumbs(r.Thumbnail)
	case len(r.Thumbnails) > 0:
		p.Thumbnails = thumbs(&r.Thumbnails[0])
	}

	p.VideoCountText = firstText(r.VideoCountText, r.VideoCountShortText, r.ThumbnailText)
	switch {
	case r.VideoCount != "":
		p.VideoCount = c.parser.ParseVideoCount(r.VideoCount)
	default:
		p.VideoCount = count(p.VideoCountText, c.parser.ParseVideoCount)
	}

	p.UpdatedText = firstText(r.PublishedTimeText)
	if p.UpdatedText != "" {
		p.Updated = c.parser.ParseLastUpdated(p.UpdatedText)
	}

	p.Videos = c.ConvertAll(r.Videos)
	return newContainer(n.Kind, p), nil
}
