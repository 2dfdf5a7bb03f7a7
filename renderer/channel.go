package renderer

import (
	"strings"

	"ytkit/innertube"
	"ytkit/locale"
)

func init() {
	register(convertChannel, "channelRenderer", "gridChannelRenderer")
	register(convertC4Header, "c4TabbedHeaderRenderer")
	register(convertPageHeader, "pageHeaderRenderer")
	register(convertAboutChannel, "aboutChannelViewModel")
	register(convertVideoSecondaryInfo, "videoSecondaryInfoRenderer")
	register(convertWatchCardHeader, "watchCardRichHeaderRenderer")
}

func newChannel(id string) Channel {
	return Channel{
		ID:              id,
		Thumbnails:      []innertube.Thumbnail{},
		Banner:          []innertube.Thumbnail{},
		SubscriberCount: locale.InvalidCount,
		VideoCount:      locale.InvalidCount,
		ViewCount:       locale.InvalidCount,
		Badges:          []string{},
	}
}

func (c *Converter) applySubscribers(ch *Channel, text string) {
	ch.SubscriberCountText = strings.TrimSpace(text)
	ch.SubscriberCount = count(ch.SubscriberCountText, c.parser.ParseSubscriberCount)
}

func (c *Converter) applyVideoCount(ch *Channel, text string) {
	ch.VideoCountText = strings.TrimSpace(text)
	ch.VideoCount = count(ch.VideoCountText, c.parser.ParseVideoCount)
}

func convertChannel(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ChannelRenderer](n)
	if err != nil {
		return Container{}, err
	}
	ch := newChannel(r.ChannelID)
	ch.Name = firstText(r.Title)
	ch.Description = firstText(r.DescriptionSnippet)
	ch.Thumbnails = thumbs(r.Thumbnail)
	ch.Handle = r.NavigationEndpoint.Handle()

	info := c.badges(r.OwnerBadges)
	ch.Verified = info.verified
	ch.Badges = info.labels

	// Search results put the handle where the subscriber count used to be
	// and move the count into videoCountText.
	subs := firstText(r.SubscriberCountText)
	videos := firstText(r.VideoCountText)
	if strings.HasPrefix(subs, "@") {
		if ch.Handle == "" {
			ch.Handle = subs
		}
		subs, videos = videos, ""
	}
	if ch.Handle == "" {
		if h := firstText(r.ShortBylineText); strings.HasPrefix(h, "@") {
			ch.Handle = h
		}
	}
	c.applySubscribers(&ch, subs)
	c.applyVideoCount(&ch, videos)
	return newContainer(n.Kind, ch), nil
}

func convertC4Header(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.C4TabbedHeaderRenderer](n)
	if err != nil {
		return Container{}, err
	}
	ch := newChannel(r.ChannelID)
	ch.Name = strings.TrimSpace(r.Title)
	ch.Thumbnails = thumbs(r.Avatar)
	ch.Banner = thumbs(r.Banner)
	ch.Handle = firstText(r.ChannelHandleText)
	if ch.Handle == "" {
		ch.Handle = r.NavigationEndpoint.Handle()
	}
	info := c.badges(r.Badges)
	ch.Verified = info.verified
	ch.Badges = info.labels
	c.applySubscribers(&ch, firstText(r.SubscriberCountText))
	c.applyVideoCount(&ch, firstText(r.VideosCountText))
	return newContainer(n.Kind, ch), nil
}

// convertPageHeader handles the view model channel header, whose metadata
// rows hold the handle, the subscriber count and the video count in order.
func convertPageHeader(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.PageHeaderRenderer](n)
	if err != nil {
		return Container{}, err
	}
	vm := r.Content.PageHeaderViewModel
	ch := newChannel("")
	ch.Name = strings.TrimSpace(vm.Title.DynamicTextViewModel.Text.Content)
	if ch.Name == "" {
		ch.Name = strings.TrimSpace(r.PageTitle)
	}
	ch.Description = vm.Description.DescriptionPreviewViewModel.Description.Content
	ch.Thumbnails = sources(vm.Image.DecoratedAvatarViewModel.Avatar.AvatarViewModel.Image)
	ch.Banner = sources(vm.Banner.ImageBannerViewModel.Image)

	for _, part := range vm.Metadata.ContentMetadataViewModel.Parts() {
		part = strings.TrimSpace(part)
		switch {
		case strings.HasPrefix(part, "@"):
			ch.Handle = part
		case ch.SubscriberCountText == "":
			c.applySubscribers(&ch, part)
		case ch.VideoCountText == "":
			c.applyVideoCount(&ch, part)
		}
	}
	return newContainer(n.Kind, ch), nil
}

func convertAboutChannel(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.AboutChannelViewModel](n)
	if err != nil {
		return Container{}, err
	}
	ch := newChannel(r.ChannelID)
	ch.Description = r.Description
	ch.Country = r.Country
	if i := strings.Index(r.CanonicalChannelURL, "/@"); i >= 0 {
		ch.Handle = r.CanonicalChannelURL[i+1:]
	}
	c.applySubscribers(&ch, r.SubscriberCountText)
	c.applyVideoCount(&ch, r.VideoCountText)
	ch.ViewCountText = strings.TrimSpace(r.ViewCountText)
	ch.ViewCount = count(ch.ViewCountText, c.parser.ParseViewCount)
	ch.JoinedText = strings.TrimSpace(r.JoinedDateText.Content)
	if ch.JoinedText != "" {
		ch.Joined = c.parser.ParseFullDate(ch.JoinedText)
	}
	return newContainer(n.Kind, ch), nil
}

// convertVideoSecondaryInfo handles the owner block of a watch page.
func convertVideoSecondaryInfo(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.VideoSecondaryInfoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	ch := newChannel("")
	if r.AttributedDescription != nil {
		ch.Description = r.AttributedDescription.Content
	}
	if r.Owner != nil {
		o := r.Owner.VideoOwnerRenderer
		ref := byline(o.Title)
		ch.ID = ref.ID
		if ch.ID == "" {
			ch.ID = o.NavigationEndpoint.BrowseID()
		}
		ch.Name = ref.Name
		ch.Handle = ref.Handle
		ch.Thumbnails = thumbs(o.Thumbnail)
		info := c.badges(o.Badges)
		ch.Verified = info.verified
		ch.Badges = info.labels
		c.applySubscribers(&ch, firstText(o.SubscriberCountText))
	}
	return newContainer(n.Kind, ch), nil
}

func convertWatchCardHeader(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.WatchCardRichHeaderRenderer](n)
	if err != nil {
		return Container{}, err
	}
	ch := newChannel(r.TitleNavigationEndpoint.BrowseID())
	ch.Name = firstText(r.Title)
	ch.Handle = r.TitleNavigationEndpoint.Handle()
	ch.Thumbnails = thumbs(r.Avatar)
	c.applySubscribers(&ch, firstText(r.Subtitle))
	return newContainer(n.Kind, ch), nil
}
