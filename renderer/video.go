package renderer

import (
	"strconv"
	"strings"

	"ytkit/innertube"
	"ytkit/locale"
)

func init() {
	register(convertVideoRenderer, "videoRenderer")
	register(convertCompactVideo, "compactVideoRenderer")
	register(convertGridVideo, "gridVideoRenderer")
	register(convertPlaylistVideo, "playlistVideoRenderer")
	register(convertPlaylistPanelVideo, "playlistPanelVideoRenderer")
	register(convertVideoWithContext, "videoWithContextRenderer")
	register(convertEndScreenVideo, "endScreenVideoRenderer")
	register(convertChildVideo, "childVideoRenderer")
	register(convertMovie, "movieRenderer", "compactMovieRenderer")
	register(convertChannelVideoPlayer, "channelVideoPlayerRenderer")
	register(convertWatchCardCompactVideo, "watchCardCompactVideoRenderer")
	register(convertReelItem, "reelItemRenderer")
	register(convertShortsLockup, "shortsLockupViewModel")
	register(convertLockup, "lockupViewModel")
	register(convertVideoPrimaryInfo, "videoPrimaryInfoRenderer")
}

// newVideo returns a video with every field set to its empty value.
func newVideo(id string) Video {
	return Video{
		ID:         id,
		Thumbnails: []innertube.Thumbnail{},
		Channel:    ChannelRef{Thumbnails: []innertube.Thumbnail{}},
		ViewCount:  locale.InvalidCount,
		Published:  locale.InvalidDelta,
		Badges:     []string{},
	}
}

// applyTile fills the fields shared by the classic video tiles.
func (c *Converter) applyTile(v *Video, r *innertube.VideoRenderer) {
	v.Thumbnails = thumbs(r.Thumbnail)
	if r.ChannelThumbnail != nil {
		v.Channel.Thumbnails = thumbs(&r.ChannelThumbnail.ChannelThumbnailWithLinkRenderer.Thumbnail)
	}

	info := c.badges(r.Badges, r.OwnerBadges, r.ThumbnailOverlays)
	v.Badges = info.labels
	v.Channel.Verified = info.verified
	v.Live = info.live
	v.Upcoming = info.upcoming || r.UpcomingEventData != nil
	v.Short = info.short

	v.DurationText = firstText(r.LengthText)
	if v.DurationText == "" {
		v.DurationText = info.duration
	}
	v.Duration = parseDuration(v.DurationText)
	if v.Duration == 0 && r.LengthSeconds != "" {
		v.Duration = secondsDuration(r.LengthSeconds)
	}

	if r.UpcomingEventData != nil {
		v.ScheduledAt = unixTime(r.UpcomingEventData.StartTime)
		v.UploadType = locale.UploadScheduled
	}
	if we := r.NavigationEndpoint.Resolve(); we != nil && we.WatchEndpoint != nil {
		v.PlaylistID = we.WatchEndpoint.PlaylistID
		v.Index = we.WatchEndpoint.Index
	}
}

func convertVideoRenderer(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)

	var snippets []string
	for _, s := range r.DetailedMetadataSnippets {
		snippets = append(snippets, s.SnippetText.String())
	}
	v.Description = strings.Join(snippets, "\n")
	if v.Description == "" {
		v.Description = firstText(r.DescriptionSnippet)
	}

	v.Channel = byline(r.OwnerText, r.LongBylineText, r.ShortBylineText)
	c.applyTile(&v, r)
	c.applyViews(&v, firstText(r.ViewCountText, r.ShortViewCountText))
	if !v.Upcoming {
		c.applyPublished(&v, firstText(r.PublishedTimeText))
	}
	return newContainer(n.Kind, v), nil
}

func convertCompactVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Channel = byline(r.LongBylineText, r.ShortBylineText)
	c.applyTile(&v, r)
	c.applyViews(&v, firstText(r.ViewCountText, r.ShortViewCountText))
	if !v.Upcoming {
		c.applyPublished(&v, firstText(r.PublishedTimeText))
	}
	return newContainer(n.Kind, v), nil
}

func convertGridVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Channel = byline(r.ShortBylineText)
	c.applyTile(&v, r)
	c.applyViews(&v, firstText(r.ViewCountText, r.ShortViewCountText))
	if !v.Upcoming {
		c.applyPublished(&v, firstText(r.PublishedTimeText))
	}
	return newContainer(n.Kind, v), nil
}

// convertPlaylistVideo handles playlist page entries, whose view count and
// date come as one "views • date" info line.
func convertPlaylistVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Channel = byline(r.ShortBylineText)
	c.applyTile(&v, r)
	if idx, err := strconv.Atoi(firstText(r.Index)); err == nil {
		v.Index = idx
	}

	parts := splitInfo(firstText(r.VideoInfo))
	if len(parts) > 0 {
		c.applyViews(&v, parts[0])
	}
	if len(parts) > 1 {
		c.applyPublished(&v, parts[len(parts)-1])
	}
	return newContainer(n.Kind, v), nil
}

func convertPlaylistPanelVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Channel = byline(r.LongBylineText, r.ShortBylineText)
	c.applyTile(&v, r)
	if idx, err := strconv.Atoi(firstText(r.IndexText)); err == nil {
		v.Index = idx
	}
	return newContainer(n.Kind, v), nil
}

func convertVideoWithContext(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Headline)
	v.Channel = byline(r.ShortBylineText)
	c.applyTile(&v, r)
	c.applyViews(&v, firstText(r.ShortViewCountText))
	c.applyPublished(&v, firstText(r.PublishedTimeText))
	return newContainer(n.Kind, v), nil
}

func convertEndScreenVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Channel = byline(r.ShortBylineText)
	c.applyTile(&v, r)
	if v.Duration == 0 && r.LengthInSeconds > 0 {
		v.Duration = secondsDuration(strconv.Itoa(r.LengthInSeconds))
	}
	c.applyViews(&v, firstText(r.ShortViewCountText))
	c.applyPublished(&v, firstText(r.PublishedTimeText))
	return newContainer(n.Kind, v), nil
}

func convertChildVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	c.applyTile(&v, r)
	return newContainer(n.Kind, v), nil
}

func convertMovie(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Description = firstText(r.DescriptionSnippet)
	v.Channel = byline(r.LongBylineText, r.ShortBylineText)
	c.applyTile(&v, r)
	return newContainer(n.Kind, v), nil
}

// convertChannelVideoPlayer handles the featured video of a channel home.
func convertChannelVideoPlayer(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Title)
	v.Description = firstText(r.Description)
	c.applyTile(&v, r)
	c.applyViews(&v, firstText(r.ViewCountText))
	c.applyPublished(&v, firstText(r.PublishedTimeText))
	return newContainer(n.Kind, v), nil
}

// convertWatchCardCompactVideo handles the rows of a search sidebar card,
// whose subtitle is a "views • date" line.
func convertWatchCardCompactVideo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.NavigationEndpoint.VideoID())
	v.Title = firstText(r.Title)
	v.Channel = byline(r.Byline)
	c.applyTile(&v, r)
	parts := splitInfo(firstText(r.Subtitle))
	if len(parts) > 0 {
		c.applyViews(&v, parts[0])
	}
	if len(parts) > 1 {
		c.applyPublished(&v, parts[len(parts)-1])
	}
	return newContainer(n.Kind, v), nil
}

func convertReelItem(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ReelItemRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo(r.VideoID)
	v.Title = firstText(r.Headline)
	v.Thumbnails = thumbs(r.Thumbnail)
	v.Short = true
	c.applyViews(&v, firstText(r.ViewCountText))
	return newContainer(n.Kind, v), nil
}

func convertShortsLockup(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ShortsLockupViewModel](n)
	if err != nil {
		return Container{}, err
	}
	id := r.OnTap.InnertubeCommand.VideoID()
	if id == "" {
		id = strings.TrimPrefix(r.EntityID, "shorts-shelf-item-")
	}
	v := newVideo(id)
	v.Title = strings.TrimSpace(r.OverlayMetadata.PrimaryText.Content)
	v.Thumbnails = sources(r.Thumbnail)
	v.Short = true
	c.applyViews(&v, r.OverlayMetadata.SecondaryText.Content)
	return newContainer(n.Kind, v), nil
}

// convertLockup handles the view model tile, which is either a video or a
// playlist depending on its content type.
func convertLockup(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.LockupViewModel](n)
	if err != nil {
		return Container{}, err
	}
	parts := r.Metadata.LockupMetadataViewModel.Metadata.ContentMetadataViewModel.Parts()
	title := strings.TrimSpace(r.Metadata.LockupMetadataViewModel.Title.Content)

	var image *innertube.ThumbnailViewModel
	if r.ContentImage.ThumbnailViewModel != nil {
		image = r.ContentImage.ThumbnailViewModel
	} else if r.ContentImage.CollectionThumbnailViewModel != nil {
		image = &r.ContentImage.CollectionThumbnailViewModel.PrimaryThumbnail.ThumbnailViewModel
	}
	var overlays []innertube.Node
	thumbnails := []innertube.Thumbnail{}
	if image != nil {
		overlays = image.Overlays
		thumbnails = sources(image.Image)
	}
	info := c.badges(overlays)

	switch r.ContentType {
	case "LOCKUP_CONTENT_TYPE_PLAYLIST", "LOCKUP_CONTENT_TYPE_PODCAST":
		p := newPlaylist(r.ContentID)
		p.Title = title
		p.Thumbnails = thumbnails
		p.VideoCountText = info.duration
		p.VideoCount = count(p.VideoCountText, c.parser.ParseVideoCount)
		p.Mix = strings.HasPrefix(r.ContentID, "RD")
		if len(parts) > 0 {
			p.Channel.Name = parts[0]
		}
		if len(parts) > 1 {
			p.UpdatedText = parts[len(parts)-1]
			p.Updated = c.parser.ParseLastUpdated(p.UpdatedText)
		}
		return newContainer(n.Kind, p), nil
	}

	v := newVideo(r.ContentID)
	v.Title = title
	v.Thumbnails = thumbnails
	v.Badges = info.labels
	v.Live = info.live
	v.DurationText = info.duration
	v.Duration = parseDuration(info.duration)
	if ep := r.RendererContext.CommandContext.OnTap.InnertubeCommand; ep != nil && v.ID == "" {
		v.ID = ep.VideoID()
	}
	switch len(parts) {
	case 0:
	case 1:
		v.Channel.Name = parts[0]
	default:
		v.Channel.Name = parts[0]
		c.applyViews(&v, parts[1])
		if len(parts) > 2 {
			c.applyPublished(&v, parts[len(parts)-1])
		}
	}
	return newContainer(n.Kind, v), nil
}

// convertVideoPrimaryInfo handles the title block of a watch page. The
// video id is not part of the block.
func convertVideoPrimaryInfo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoPrimaryInfoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	v := newVideo("")
	v.Title = firstText(r.Title)
	if r.ViewCount != nil {
		vc := r.ViewCount.VideoViewCountRenderer
		c.applyViews(&v, firstText(vc.ViewCount, vc.ShortViewCount))
		v.Live = vc.IsLive
	}
	c.applyPublished(&v, firstText(r.DateText, r.RelativeDateText))
	return newContainer(n.Kind, v), nil
}
