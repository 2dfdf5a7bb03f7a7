package renderer

import (
	"strings"

	"ytkit/innertube"
	"ytkit/locale"
)

func init() {
	register(convertContinuationItem, "continuationItemRenderer")
	register(convertContinuationData, "nextContinuationData", "reloadContinuationData")
	register(convertMessage,
		"messageRenderer",
		"backgroundPromoRenderer",
		"clarificationRenderer",
		"emergencyOneboxRenderer",
		"showingResultsForRenderer",
		"didYouMeanRenderer",
		"commentsHeaderRenderer",
	)
	register(convertChip, "chipCloudChipRenderer")
	register(convertPost, "backstagePostRenderer", "postRenderer")
	register(convertSharedPost, "sharedPostRenderer")
	register(convertImage, "backstageImageRenderer")
	register(convertMultiImage, "postMultiImageRenderer")
	register(convertUniversalWatchCard, "universalWatchCardRenderer")
	register(convertHeroVideo, "watchCardHeroVideoRenderer")
	register(convertRefinementCard, "searchRefinementCardRenderer")
	register(convertRecognitionShelf, "recognitionShelfRenderer")
	register(convertCommentThread, "commentThreadRenderer")
	register(convertComment, "commentRenderer")
}

func convertContinuationItem(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ContinuationItemRenderer](n)
	if err != nil {
		return Container{}, err
	}
	return newContainer(n.Kind, Continuation{Token: r.Token(), Trigger: r.Trigger}), nil
}

func convertContinuationData(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ContinuationData](n)
	if err != nil {
		return Container{}, err
	}
	return newContainer(n.Kind, Continuation{Token: r.Continuation}), nil
}

// convertMessage handles informational banners. Each variant keeps its
// heading and body in differently named fields.
func convertMessage(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.MessageRenderer](n)
	if err != nil {
		return Container{}, err
	}
	var m Message
	switch n.Kind {
	case "showingResultsForRenderer":
		m.Title = firstText(r.ShowingResultsFor)
		m.Text = firstText(r.CorrectedQuery)
	case "didYouMeanRenderer":
		m.Title = firstText(r.DidYouMean)
		m.Text = firstText(r.CorrectedQuery)
	case "clarificationRenderer":
		m.Title = firstText(r.ContentTitle)
		m.Text = firstText(r.Text, r.Source)
	case "commentsHeaderRenderer":
		m.Title = firstText(r.Title)
		m.Text = firstText(r.CountText)
	default:
		m.Title = firstText(r.Title)
		m.Text = firstText(r.Text, r.BodyText, r.Subtext)
	}
	return newContainer(n.Kind, m), nil
}

func convertChip(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ChipRenderer](n)
	if err != nil {
		return Container{}, err
	}
	ch := Chip{Text: firstText(r.Text), Selected: r.IsSelected}
	if e := r.NavigationEndpoint.Resolve(); e != nil {
		ch.Token = e.Token()
		if e.SearchEndpoint != nil {
			ch.Query = e.SearchEndpoint.Query
			ch.Params = e.SearchEndpoint.Params
		}
		if e.BrowseEndpoint != nil {
			ch.BrowseID = e.BrowseEndpoint.BrowseID
			ch.Params = e.BrowseEndpoint.Params
		}
	}
	return newContainer(n.Kind, ch), nil
}

func newPost(id string) CommunityPost {
	return CommunityPost{
		ID:           id,
		Channel:      ChannelRef{Thumbnails: []innertube.Thumbnail{}},
		Published:    locale.InvalidDelta,
		LikeCount:    locale.InvalidCount,
		CommentCount: locale.InvalidCount,
	}
}

func (c *Converter) applyPostDate(p *CommunityPost, text string) {
	p.PublishedText = strings.TrimSpace(text)
	if p.PublishedText != "" {
		p.Published = c.parser.ParseRelativeDate(p.PublishedText)
	}
}

func convertPost(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.PostRenderer](n)
	if err != nil {
		return Container{}, err
	}
	p := newPost(r.PostID)
	p.Channel = byline(r.AuthorText)
	if p.Channel.ID == "" {
		p.Channel.ID = r.AuthorEndpoint.BrowseID()
		p.Channel.Handle = r.AuthorEndpoint.Handle()
	}
	p.Channel.Thumbnails = thumbs(r.AuthorThumbnail)
	p.Text = r.ContentText.String()
	c.applyPostDate(&p, firstText(r.PublishedTimeText))

	p.LikeCountText = firstText(r.VoteCount)
	p.LikeCount = count(p.LikeCountText, c.parser.ParseLikeCount)
	if r.ActionButtons != nil && r.ActionButtons.CommentActionButtonsRenderer.ReplyButton != nil {
		p.CommentCountText = firstText(r.ActionButtons.CommentActionButtonsRenderer.ReplyButton.ButtonRenderer.Text)
		p.CommentCount = count(p.CommentCountText, c.parser.ParseLikeCount)
	}
	p.Attachment = c.convertOne(r.Attachment)
	return newContainer(n.Kind, p), nil
}

func convertSharedPost(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.SharedPostRenderer](n)
	if err != nil {
		return Container{}, err
	}
	p := newPost(r.PostID)
	p.Channel = byline(r.DisplayName)
	if p.Channel.ID == "" {
		p.Channel.ID = r.Endpoint.BrowseID()
	}
	p.Channel.Thumbnails = thumbs(r.Thumbnail)
	p.Text = r.Content.String()
	c.applyPostDate(&p, firstText(r.PublishedTimeText))
	p.Shared = c.convertOne(r.OriginalPost)
	return newContainer(n.Kind, p), nil
}

func convertImage(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.ImageRenderer](n)
	if err != nil {
		return Container{}, err
	}
	return newContainer(n.Kind, CommunityPostImage{
		Images: [][]innertube.Thumbnail{thumbs(&r.Image)},
	}), nil
}

func convertMultiImage(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.MultiImageRenderer](n)
	if err != nil {
		return Container{}, err
	}
	img := CommunityPostImage{Images: [][]innertube.Thumbnail{}}
	for _, child := range r.Images {
		one, err := decode[innertube.ImageRenderer](child)
		if err != nil {
			return Container{}, err
		}
		img.Images = append(img.Images, thumbs(&one.Image))
	}
	return newContainer(n.Kind, img), nil
}

// convertUniversalWatchCard handles the search sidebar card. The header
// names the channel or topic and the call to action holds the hero video.
func convertUniversalWatchCard(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.UniversalWatchCardRenderer](n)
	if err != nil {
		return Container{}, err
	}
	sb := SearchSidebar{
		Channel:  ChannelRef{Thumbnails: []innertube.Thumbnail{}},
		Sections: c.ConvertAll(r.Sections),
	}
	if r.Header != nil {
		if h, err := decode[innertube.WatchCardRichHeaderRenderer](*r.Header); err == nil {
			sb.Title = firstText(h.Title)
			sb.Subtitle = firstText(h.Subtitle)
			sb.Channel = ChannelRef{
				ID:         h.TitleNavigationEndpoint.BrowseID(),
				Name:       sb.Title,
				Handle:     h.TitleNavigationEndpoint.Handle(),
				Thumbnails: thumbs(h.Avatar),
			}
		}
	}
	if r.CallToAction != nil {
		sb.Hero = c.convertOne(callToActionHero(*r.CallToAction))
	}
	return newContainer(n.Kind, sb), nil
}

// callToActionHero unwraps the watchCardHeroVideoRenderer that a
// call-to-action button renderer holds, if any.
func callToActionHero(n innertube.Node) *innertube.Node {
	if n.Kind == "watchCardHeroVideoRenderer" {
		return &n
	}
	var cta struct {
		VideoRenderer *innertube.Node `json:"videoRenderer,omitempty"`
	}
	if n.Decode(&cta) == nil && cta.VideoRenderer != nil {
		return cta.VideoRenderer
	}
	return &n
}

func convertHeroVideo(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.WatchCardHeroVideoRenderer](n)
	if err != nil {
		return Container{}, err
	}
	h := HeroVideo{
		VideoID:      r.NavigationEndpoint.VideoID(),
		Title:        firstText(r.Title),
		Subtitle:     firstText(r.Subtitle),
		DurationText: firstText(r.LengthText),
		Thumbnails:   []innertube.Thumbnail{},
	}
	h.Duration = parseDuration(h.DurationText)
	if r.HeroImage != nil {
		img, err := decode[innertube.HeroImage](*r.HeroImage)
		if err != nil {
			return Container{}, err
		}
		if img.Thumbnail != nil {
			h.Thumbnails = thumbs(img.Thumbnail)
		} else {
			h.Thumbnails = thumbs(img.LeftThumbnail)
		}
	}
	return newContainer(n.Kind, h), nil
}

func convertRefinementCard(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.SearchRefinementCardRenderer](n)
	if err != nil {
		return Container{}, err
	}
	card := SearchRefinementCard{
		Query:      firstText(r.Query),
		Thumbnails: thumbs(r.Thumbnail),
	}
	if e := r.SearchEndpoint.Resolve(); e != nil {
		if e.SearchEndpoint != nil {
			card.Query = e.SearchEndpoint.Query
			card.Params = e.SearchEndpoint.Params
		}
		if e.WatchEndpoint != nil {
			card.PlaylistID = e.WatchEndpoint.PlaylistID
		}
	}
	return newContainer(n.Kind, card), nil
}

func convertRecognitionShelf(_ *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.RecognitionShelfRenderer](n)
	if err != nil {
		return Container{}, err
	}
	shelf := RecognitionShelf{
		Title:    firstText(r.Title),
		Subtitle: firstText(r.Subtitle),
		Avatars:  [][]innertube.Thumbnail{},
	}
	for i := range r.Avatars {
		shelf.Avatars = append(shelf.Avatars, thumbs(&r.Avatars[i]))
	}
	return newContainer(n.Kind, shelf), nil
}

// convertCommentThread returns the thread's top comment, carrying the
// token that loads its replies.
func convertCommentThread(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.CommentThreadRenderer](n)
	if err != nil {
		return Container{}, err
	}
	top := c.convertOne(r.Comment)
	if top == nil {
		return Container{}, errMissingComment
	}
	cm, ok := top.Data.(Comment)
	if !ok {
		return *top, nil
	}
	if r.Replies != nil {
		for _, child := range r.Replies.CommentRepliesRenderer.Contents {
			if child.Kind != "continuationItemRenderer" {
				continue
			}
			if ci, err := decode[innertube.ContinuationItemRenderer](child); err == nil {
				cm.RepliesToken = ci.Token()
				break
			}
		}
	}
	return newContainer(n.Kind, cm), nil
}

func convertComment(c *Converter, n innertube.Node) (Container, error) {
	r, err := decode[innertube.CommentRenderer](n)
	if err != nil {
		return Container{}, err
	}
	cm := Comment{
		ID:         r.CommentID,
		Text:       r.ContentText.String(),
		Author:     byline(r.AuthorText),
		Published:  locale.InvalidDelta,
		ReplyCount: int64(r.ReplyCount),
		Pinned:     r.PinnedCommentBadge != nil && !r.PinnedCommentBadge.IsZero(),
		ByOwner:    r.AuthorIsChannelOwner,
	}
	if cm.Author.ID == "" {
		cm.Author.ID = r.AuthorEndpoint.BrowseID()
		cm.Author.Handle = r.AuthorEndpoint.Handle()
	}
	cm.Author.Thumbnails = thumbs(r.AuthorThumbnail)
	cm.PublishedText = firstText(r.PublishedTimeText)
	if cm.PublishedText != "" {
		cm.Published = c.parser.ParseRelativeDate(cm.PublishedText)
	}
	cm.LikeCountText = firstText(r.VoteCount)
	cm.LikeCount = count(cm.LikeCountText, c.parser.ParseLikeCount)
	return newContainer(n.Kind, cm), nil
}
