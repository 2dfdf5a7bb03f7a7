package innertube

// VideoRenderer covers the video tile family: videoRenderer,
// compactVideoRenderer, gridVideoRenderer, playlistVideoRenderer,
// playlistPanelVideoRenderer, videoWithContextRenderer, childVideoRenderer,
// endScreenVideoRenderer, movieRenderer, compactMovieRenderer,
// channelVideoPlayerRenderer and
// watchCardCompactVideoRenderer. Each variant fills a different subset.
type VideoRenderer struct {
	VideoID                  string                    `json:"videoId"`
	Title                    *Text                     `json:"title,omitempty"`
	Headline                 *Text                     `json:"headline,omitempty"`
	DescriptionSnippet       *Text                     `json:"descriptionSnippet,omitempty"`
	DetailedMetadataSnippets []DetailedMetadataSnippet `json:"detailedMetadataSnippets,omitempty"`
	Thumbnail                *Thumbnails               `json:"thumbnail,omitempty"`
	LengthText               *Text                     `json:"lengthText,omitempty"`
	LengthSeconds            string                    `json:"lengthSeconds,omitempty"`
	ViewCountText            *Text                     `json:"viewCountText,omitempty"`
	ShortViewCountText       *Text                     `json:"shortViewCountText,omitempty"`
	PublishedTimeText        *Text                     `json:"publishedTimeText,omitempty"`
	OwnerText                *Text                     `json:"ownerText,omitempty"`
	LongBylineText           *Text                     `json:"longBylineText,omitempty"`
	ShortBylineText          *Text                     `json:"shortBylineText,omitempty"`
	Subtitle                 *Text                     `json:"subtitle,omitempty"`
	Byline                   *Text                     `json:"byline,omitempty"`
	VideoInfo                *Text                     `json:"videoInfo,omitempty"`
	Index                    *Text                     `json:"index,omitempty"`
	IndexText                *Text                     `json:"indexText,omitempty"`
	Description              *Text                     `json:"description,omitempty"`
	LengthInSeconds          int                       `json:"lengthInSeconds,omitempty"`
	ChannelThumbnail         *ChannelThumbnail         `json:"channelThumbnailSupportedRenderers,omitempty"`
	Badges                   []Node                    `json:"badges,omitempty"`
	OwnerBadges              []Node                    `json:"ownerBadges,omitempty"`
	ThumbnailOverlays        []Node                    `json:"thumbnailOverlays,omitempty"`
	UpcomingEventData        *UpcomingEventData        `json:"upcomingEventData,omitempty"`
	NavigationEndpoint       *Endpoint                 `json:"navigationEndpoint,omitempty"`
	IsPlayable               *bool                     `json:"isPlayable,omitempty"`
}

// DetailedMetadataSnippet is the search result description excerpt.
type DetailedMetadataSnippet struct {
	SnippetText Text `json:"snippetText"`
}

// ChannelThumbnail wraps the owner avatar of a video tile.
type ChannelThumbnail struct {
	ChannelThumbnailWithLinkRenderer struct {
		Thumbnail          Thumbnails `json:"thumbnail"`
		NavigationEndpoint *Endpoint  `json:"navigationEndpoint,omitempty"`
	} `json:"channelThumbnailWithLinkRenderer"`
}

// UpcomingEventData is present on scheduled streams and premieres.
type UpcomingEventData struct {
	StartTime string `json:"startTime"`
}

// ReelItemRenderer is a short-form video tile.
type ReelItemRenderer struct {
	VideoID            string      `json:"videoId"`
	Headline           *Text       `json:"headline,omitempty"`
	Thumbnail          *Thumbnails `json:"thumbnail,omitempty"`
	ViewCountText      *Text       `json:"viewCountText,omitempty"`
	NavigationEndpoint *Endpoint   `json:"navigationEndpoint,omitempty"`
}

// ShortsLockupViewModel is the view model form of a short-form video tile.
type ShortsLockupViewModel struct {
	EntityID  string       `json:"entityId"`
	Thumbnail ImageSources `json:"thumbnail"`
	OnTap     struct {
		InnertubeCommand *Endpoint `json:"innertubeCommand,omitempty"`
	} `json:"onTap"`
	OverlayMetadata struct {
		PrimaryText   DynamicText `json:"primaryText"`
		SecondaryText DynamicText `json:"secondaryText"`
	} `json:"overlayMetadata"`
	AccessibilityText string `json:"accessibilityText,omitempty"`
}

// LockupViewModel is the generic view model tile used for videos and
// playlists. ContentType tells them apart.
type LockupViewModel struct {
	ContentID    string `json:"contentId"`
	ContentType  string `json:"contentType"`
	ContentImage struct {
		ThumbnailViewModel           *ThumbnailViewModel `json:"thumbnailViewModel,omitempty"`
		CollectionThumbnailViewModel *struct {
			PrimaryThumbnail struct {
				ThumbnailViewModel ThumbnailViewModel `json:"thumbnailViewModel"`
			} `json:"primaryThumbnail"`
		} `json:"collectionThumbnailViewModel,omitempty"`
	} `json:"contentImage"`
	Metadata struct {
		LockupMetadataViewModel struct {
			Title    DynamicText `json:"title"`
			Metadata struct {
				ContentMetadataViewModel ContentMetadata `json:"contentMetadataViewModel"`
			} `json:"metadata"`
		} `json:"lockupMetadataViewModel"`
	} `json:"metadata"`
	RendererContext struct {
		CommandContext struct {
			OnTap struct {
				InnertubeCommand *Endpoint `json:"innertubeCommand,omitempty"`
			} `json:"onTap"`
		} `json:"commandContext"`
	} `json:"rendererContext"`
}

// ThumbnailViewModel is an image plus overlay badges.
type ThumbnailViewModel struct {
	Image    ImageSources `json:"image"`
	Overlays []Node       `json:"overlays,omitempty"`
}

// ContentMetadata is the rows-of-parts metadata block of view models.
type ContentMetadata struct {
	MetadataRows []struct {
		MetadataParts []struct {
			Text DynamicText `json:"text"`
		} `json:"metadataParts"`
	} `json:"metadataRows"`
}

// Parts flattens the metadata rows into their text parts.
func (m ContentMetadata) Parts() []string {
	var parts []string
	for _, row := range m.MetadataRows {
		for _, p := range row.MetadataParts {
			if p.Text.Content != "" {
				parts = append(parts, p.Text.Content)
			}
		}
	}
	return parts
}

// ThumbnailBadgeViewModel is the overlay badge of a view model thumbnail.
type ThumbnailBadgeViewModel struct {
	Text       string `json:"text"`
	BadgeStyle string `json:"badgeStyle,omitempty"`
}

// PlaylistRenderer covers playlistRenderer, compactPlaylistRenderer,
// gridPlaylistRenderer, radioRenderer, compactRadioRenderer and
// endScreenPlaylistRenderer.
type PlaylistRenderer struct {
	PlaylistID          string       `json:"playlistId"`
	Title               *Text        `json:"title,omitempty"`
	Thumbnail           *Thumbnails  `json:"thumbnail,omitempty"`
	Thumbnails          []Thumbnails `json:"thumbnails,omitempty"`
	VideoCount          string       `json:"videoCount,omitempty"`
	VideoCountText      *Text        `json:"videoCountText,omitempty"`
	VideoCountShortText *Text        `json:"videoCountShortText,omitempty"`
	ThumbnailText       *Text        `json:"thumbnailText,omitempty"`
	ShortBylineText     *Text        `json:"shortBylineText,omitempty"`
	LongBylineText      *Text        `json:"longBylineText,omitempty"`
	PublishedTimeText   *Text        `json:"publishedTimeText,omitempty"`
	Videos              []Node       `json:"videos,omitempty"`
	OwnerBadges         []Node       `json:"ownerBadges,omitempty"`
	NavigationEndpoint  *Endpoint    `json:"navigationEndpoint,omitempty"`
}

// ChannelRenderer covers channelRenderer and gridChannelRenderer.
type ChannelRenderer struct {
	ChannelID           string      `json:"channelId"`
	Title               *Text       `json:"title,omitempty"`
	Thumbnail           *Thumbnails `json:"thumbnail,omitempty"`
	DescriptionSnippet  *Text       `json:"descriptionSnippet,omitempty"`
	ShortBylineText     *Text       `json:"shortBylineText,omitempty"`
	VideoCountText      *Text       `json:"videoCountText,omitempty"`
	SubscriberCountText *Text       `json:"subscriberCountText,omitempty"`
	OwnerBadges         []Node      `json:"ownerBadges,omitempty"`
	NavigationEndpoint  *Endpoint   `json:"navigationEndpoint,omitempty"`
}

// C4TabbedHeaderRenderer is the legacy channel page header.
type C4TabbedHeaderRenderer struct {
	ChannelID           string      `json:"channelId"`
	Title               string      `json:"title"`
	Avatar              *Thumbnails `json:"avatar,omitempty"`
	Banner              *Thumbnails `json:"banner,omitempty"`
	ChannelHandleText   *Text       `json:"channelHandleText,omitempty"`
	SubscriberCountText *Text       `json:"subscriberCountText,omitempty"`
	VideosCountText     *Text       `json:"videosCountText,omitempty"`
	Badges              []Node      `json:"badges,omitempty"`
	NavigationEndpoint  *Endpoint   `json:"navigationEndpoint,omitempty"`
}

// PageHeaderRenderer is the view model channel page header.
type PageHeaderRenderer struct {
	PageTitle string `json:"pageTitle"`
	Content   struct {
		PageHeaderViewModel struct {
			Title struct {
				DynamicTextViewModel struct {
					Text DynamicText `json:"text"`
				} `json:"dynamicTextViewModel"`
			} `json:"title"`
			Image struct {
				DecoratedAvatarViewModel struct {
					Avatar struct {
						AvatarViewModel struct {
							Image ImageSources `json:"image"`
						} `json:"avatarViewModel"`
					} `json:"avatar"`
				} `json:"decoratedAvatarViewModel"`
			} `json:"image"`
			Metadata struct {
				ContentMetadataViewModel ContentMetadata `json:"contentMetadataViewModel"`
			} `json:"metadata"`
			Banner struct {
				ImageBannerViewModel struct {
					Image ImageSources `json:"image"`
				} `json:"imageBannerViewModel"`
			} `json:"banner"`
			Description struct {
				DescriptionPreviewViewModel struct {
					Description DynamicText `json:"description"`
				} `json:"descriptionPreviewViewModel"`
			} `json:"description"`
		} `json:"pageHeaderViewModel"`
	} `json:"content"`
}

// AboutChannelViewModel is the channel about panel.
type AboutChannelViewModel struct {
	ChannelID           string      `json:"channelId"`
	Description         string      `json:"description"`
	CanonicalChannelURL string      `json:"canonicalChannelUrl,omitempty"`
	Country             string      `json:"country,omitempty"`
	SubscriberCountText string      `json:"subscriberCountText,omitempty"`
	ViewCountText       string      `json:"viewCountText,omitempty"`
	VideoCountText      string      `json:"videoCountText,omitempty"`
	JoinedDateText      DynamicText `json:"joinedDateText"`
}

// ListRenderer covers the Text-titled list containers: shelfRenderer,
// reelShelfRenderer, richShelfRenderer, horizontalListRenderer,
// verticalListRenderer, expandedShelfContentsRenderer, gridRenderer,
// horizontalCardListRenderer, itemSectionRenderer, sectionListRenderer,
// richGridRenderer, playlistVideoListRenderer, chipCloudRenderer,
// feedFilterChipBarRenderer, secondarySearchContainerRenderer,
// watchCardSectionSequenceRenderer and compactAutoplayRenderer.
type ListRenderer struct {
	Title             *Text     `json:"title,omitempty"`
	Header            *Node     `json:"header,omitempty"`
	Content           *Node     `json:"content,omitempty"`
	Contents          []Node    `json:"contents,omitempty"`
	Items             []Node    `json:"items,omitempty"`
	Cards             []Node    `json:"cards,omitempty"`
	Chips             []Node    `json:"chips,omitempty"`
	Lists             []Node    `json:"lists,omitempty"`
	Continuations     []Node    `json:"continuations,omitempty"`
	Endpoint          *Endpoint `json:"endpoint,omitempty"`
	SectionIdentifier string    `json:"sectionIdentifier,omitempty"`
	PlaylistID        string    `json:"playlistId,omitempty"`
	TargetID          string    `json:"targetId,omitempty"`
}

// Children returns every child list in wire order.
func (l *ListRenderer) Children() []Node {
	var out []Node
	if l.Content != nil {
		out = append(out, *l.Content)
	}
	out = append(out, l.Contents...)
	out = append(out, l.Items...)
	out = append(out, l.Cards...)
	out = append(out, l.Chips...)
	out = append(out, l.Lists...)
	out = append(out, l.Continuations...)
	return out
}

// TabRenderer covers tabRenderer and expandableTabRenderer.
type TabRenderer struct {
	Title    string    `json:"title"`
	Selected bool      `json:"selected"`
	Content  *Node     `json:"content,omitempty"`
	Endpoint *Endpoint `json:"endpoint,omitempty"`
}

// PlaylistPanelRenderer is the watch page playlist panel.
type PlaylistPanelRenderer struct {
	Title         string `json:"title"`
	PlaylistID    string `json:"playlistId"`
	CurrentIndex  int    `json:"currentIndex"`
	Contents      []Node `json:"contents,omitempty"`
	Continuations []Node `json:"continuations,omitempty"`
}

// ContinuationItemRenderer is the trailing "load more" marker.
type ContinuationItemRenderer struct {
	Trigger              string    `json:"trigger,omitempty"`
	ContinuationEndpoint *Endpoint `json:"continuationEndpoint,omitempty"`
	Button               *struct {
		ButtonRenderer struct {
			Text    *Text     `json:"text,omitempty"`
			Command *Endpoint `json:"command,omitempty"`
		} `json:"buttonRenderer"`
	} `json:"button,omitempty"`
}

// Token returns the continuation token from the endpoint or the button.
func (c *ContinuationItemRenderer) Token() string {
	if tok := c.ContinuationEndpoint.Token(); tok != "" {
		return tok
	}
	if c.Button != nil {
		return c.Button.ButtonRenderer.Command.Token()
	}
	return ""
}

// ContinuationData covers the legacy nextContinuationData and
// reloadContinuationData markers.
type ContinuationData struct {
	Continuation string `json:"continuation"`
}

// MessageRenderer covers messageRenderer, backgroundPromoRenderer,
// clarificationRenderer, emergencyOneboxRenderer,
// showingResultsForRenderer, didYouMeanRenderer and commentsHeaderRenderer.
type MessageRenderer struct {
	Title             *Text `json:"title,omitempty"`
	Text              *Text `json:"text,omitempty"`
	Subtext           *Text `json:"subtext,omitempty"`
	BodyText          *Text `json:"bodyText,omitempty"`
	ContentTitle      *Text `json:"contentTitle,omitempty"`
	Source            *Text `json:"source,omitempty"`
	ShowingResultsFor *Text `json:"showingResultsFor,omitempty"`
	DidYouMean        *Text `json:"didYouMean,omitempty"`
	CorrectedQuery    *Text `json:"correctedQuery,omitempty"`
	OriginalQuery     *Text `json:"originalQuery,omitempty"`
	CountText         *Text `json:"countText,omitempty"`
}

// ChipRenderer is a chipCloudChipRenderer payload.
type ChipRenderer struct {
	Text               *Text     `json:"text,omitempty"`
	IsSelected         bool      `json:"isSelected"`
	NavigationEndpoint *Endpoint `json:"navigationEndpoint,omitempty"`
	TargetID           string    `json:"targetId,omitempty"`
}

// PostRenderer covers backstagePostRenderer and postRenderer.
type PostRenderer struct {
	PostID            string      `json:"postId"`
	AuthorText        *Text       `json:"authorText,omitempty"`
	AuthorThumbnail   *Thumbnails `json:"authorThumbnail,omitempty"`
	AuthorEndpoint    *Endpoint   `json:"authorEndpoint,omitempty"`
	ContentText       *Text       `json:"contentText,omitempty"`
	PublishedTimeText *Text       `json:"publishedTimeText,omitempty"`
	VoteCount         *Text       `json:"voteCount,omitempty"`
	Attachment        *Node       `json:"backstageAttachment,omitempty"`
	ActionButtons     *struct {
		CommentActionButtonsRenderer struct {
			ReplyButton *struct {
				ButtonRenderer struct {
					Text *Text `json:"text,omitempty"`
				} `json:"buttonRenderer"`
			} `json:"replyButton,omitempty"`
		} `json:"commentActionButtonsRenderer"`
	} `json:"actionButtons,omitempty"`
}

// SharedPostRenderer is a repost of another community post.
type SharedPostRenderer struct {
	PostID            string      `json:"postId"`
	DisplayName       *Text       `json:"displayName,omitempty"`
	Thumbnail         *Thumbnails `json:"thumbnail,omitempty"`
	Content           *Text       `json:"content,omitempty"`
	PublishedTimeText *Text       `json:"publishedTimeText,omitempty"`
	OriginalPost      *Node       `json:"originalPost,omitempty"`
	Endpoint          *Endpoint   `json:"endpoint,omitempty"`
}

// ImageRenderer is a backstageImageRenderer payload.
type ImageRenderer struct {
	Image Thumbnails `json:"image"`
}

// MultiImageRenderer is a postMultiImageRenderer payload.
type MultiImageRenderer struct {
	Images []Node `json:"images"`
}

// UniversalWatchCardRenderer is the search sidebar card.
type UniversalWatchCardRenderer struct {
	Header       *Node  `json:"header,omitempty"`
	CallToAction *Node  `json:"callToAction,omitempty"`
	Sections     []Node `json:"sections,omitempty"`
}

// WatchCardRichHeaderRenderer is the sidebar card header.
type WatchCardRichHeaderRenderer struct {
	Title                   *Text       `json:"title,omitempty"`
	Subtitle                *Text       `json:"subtitle,omitempty"`
	Avatar                  *Thumbnails `json:"avatar,omitempty"`
	TitleNavigationEndpoint *Endpoint   `json:"titleNavigationEndpoint,omitempty"`
}

// WatchCardHeroVideoRenderer is the large video of a sidebar card.
type WatchCardHeroVideoRenderer struct {
	Title              *Text     `json:"title,omitempty"`
	Subtitle           *Text     `json:"subtitle,omitempty"`
	LengthText         *Text     `json:"lengthText,omitempty"`
	HeroImage          *Node     `json:"heroImage,omitempty"`
	NavigationEndpoint *Endpoint `json:"navigationEndpoint,omitempty"`
}

// HeroImage covers singleHeroImageRenderer and collageHeroImageRenderer.
type HeroImage struct {
	Thumbnail     *Thumbnails `json:"thumbnail,omitempty"`
	LeftThumbnail *Thumbnails `json:"leftThumbnail,omitempty"`
}

// SearchRefinementCardRenderer is a related query card.
type SearchRefinementCardRenderer struct {
	Query          *Text       `json:"query,omitempty"`
	Thumbnail      *Thumbnails `json:"thumbnail,omitempty"`
	SearchEndpoint *Endpoint   `json:"searchEndpoint,omitempty"`
}

// RecognitionShelfRenderer is the channel membership recognition shelf.
type RecognitionShelfRenderer struct {
	Title    *Text        `json:"title,omitempty"`
	Subtitle *Text        `json:"subtitle,omitempty"`
	Avatars  []Thumbnails `json:"avatars,omitempty"`
}

// CommentThreadRenderer is a top-level comment and its reply marker.
type CommentThreadRenderer struct {
	Comment *Node `json:"comment,omitempty"`
	Replies *struct {
		CommentRepliesRenderer struct {
			Contents []Node `json:"contents,omitempty"`
		} `json:"commentRepliesRenderer"`
	} `json:"replies,omitempty"`
}

// CommentRenderer is a single comment.
type CommentRenderer struct {
	CommentID            string      `json:"commentId"`
	ContentText          *Text       `json:"contentText,omitempty"`
	AuthorText           *Text       `json:"authorText,omitempty"`
	AuthorThumbnail      *Thumbnails `json:"authorThumbnail,omitempty"`
	AuthorEndpoint       *Endpoint   `json:"authorEndpoint,omitempty"`
	PublishedTimeText    *Text       `json:"publishedTimeText,omitempty"`
	VoteCount            *Text       `json:"voteCount,omitempty"`
	ReplyCount           int         `json:"replyCount,omitempty"`
	AuthorIsChannelOwner bool        `json:"authorIsChannelOwner,omitempty"`
	PinnedCommentBadge   *Node       `json:"pinnedCommentBadge,omitempty"`
}

// WrapperRenderer covers the single-child wrappers richItemRenderer,
// richSectionRenderer and backstagePostThreadRenderer.
type WrapperRenderer struct {
	Content *Node `json:"content,omitempty"`
	Post    *Node `json:"post,omitempty"`
}

// Child returns the wrapped node.
func (w *WrapperRenderer) Child() *Node {
	if w.Content != nil {
		return w.Content
	}
	return w.Post
}

// AdSlotRenderer wraps a fulfilled in-feed slot, which may hold content.
type AdSlotRenderer struct {
	FulfillmentContent struct {
		FulfilledLayout *Node `json:"fulfilledLayout,omitempty"`
	} `json:"fulfillmentContent"`
}

// FeaturedContentRenderer is channelFeaturedContentRenderer.
type FeaturedContentRenderer struct {
	Items []Node `json:"items,omitempty"`
}

// VideoPrimaryInfoRenderer is the title block of the watch page.
type VideoPrimaryInfoRenderer struct {
	Title     *Text `json:"title,omitempty"`
	ViewCount *struct {
		VideoViewCountRenderer struct {
			ViewCount      *Text `json:"viewCount,omitempty"`
			ShortViewCount *Text `json:"shortViewCount,omitempty"`
			IsLive         bool  `json:"isLive,omitempty"`
		} `json:"videoViewCountRenderer"`
	} `json:"viewCount,omitempty"`
	DateText         *Text `json:"dateText,omitempty"`
	RelativeDateText *Text `json:"relativeDateText,omitempty"`
}

// VideoSecondaryInfoRenderer is the owner block of the watch page.
type VideoSecondaryInfoRenderer struct {
	Owner *struct {
		VideoOwnerRenderer struct {
			Title               *Text       `json:"title,omitempty"`
			Thumbnail           *Thumbnails `json:"thumbnail,omitempty"`
			SubscriberCountText *Text       `json:"subscriberCountText,omitempty"`
			NavigationEndpoint  *Endpoint   `json:"navigationEndpoint,omitempty"`
			Badges              []Node      `json:"badges,omitempty"`
		} `json:"videoOwnerRenderer"`
	} `json:"owner,omitempty"`
	AttributedDescription *DynamicText `json:"attributedDescription,omitempty"`
}
