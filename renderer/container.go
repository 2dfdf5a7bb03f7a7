package renderer

import (
	"encoding/json"
	"time"

	"ytkit/innertube"
	"ytkit/locale"
)

// Category is the closed set of normalized container kinds. Callers switch
// on it; new wire variants map onto an existing category or onto
// CategoryUnknown.
type Category string

const (
	CategoryVideo                Category = "video"
	CategoryPlaylist             Category = "playlist"
	CategoryChannel              Category = "channel"
	CategoryContainer            Category = "container"
	CategoryContinuation         Category = "continuation"
	CategoryMessage              Category = "message"
	CategoryChip                 Category = "chip"
	CategoryCommunityPost        Category = "communityPost"
	CategoryCommunityPostImage   Category = "communityPostImage"
	CategorySearchSidebar        Category = "searchSidebar"
	CategoryHeroVideo            Category = "heroVideo"
	CategorySearchRefinementCard Category = "searchRefinementCard"
	CategoryRecognitionShelf     Category = "recognitionShelf"
	CategoryComment              Category = "comment"
	CategoryUnknown              Category = "unknown"
	CategoryException            Category = "exception"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryVideo, CategoryPlaylist, CategoryChannel, CategoryContainer,
	CategoryContinuation, CategoryMessage, CategoryChip, CategoryCommunityPost,
	CategoryCommunityPostImage, CategorySearchSidebar, CategoryHeroVideo,
	CategorySearchRefinementCard, CategoryRecognitionShelf, CategoryComment,
	CategoryUnknown, CategoryException,
}

// Container is the normalized form of one wire node.
type Container struct {
	Category Category `json:"category"`
	// OriginalVariant is the wire discriminant the container was built from.
	OriginalVariant string `json:"originalVariant"`
	Data            Shape  `json:"data"`
}

// Shape is implemented by the data types of the categories.
type Shape interface {
	category() Category
}

// ChannelRef identifies the channel that owns an item.
type ChannelRef struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Handle     string                `json:"handle"`
	Thumbnails []innertube.Thumbnail `json:"thumbnails"`
	Verified   bool                  `json:"verified"`
}

// Video is the shape of CategoryVideo.
type Video struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Thumbnails  []innertube.Thumbnail `json:"thumbnails"`
	Channel     ChannelRef            `json:"channel"`

	DurationText string `json:"durationText"`
	// Duration is zero when the text does not parse.
	Duration time.Duration `json:"duration"`

	ViewCountText string `json:"viewCountText"`
	// ViewCount is locale.InvalidCount when the text does not parse.
	ViewCount int64 `json:"viewCount"`

	PublishedText string `json:"publishedText"`
	// Published is a relative delta such as "-2h", or locale.InvalidDelta.
	Published string `json:"published"`
	// PublishedDate is set when PublishedText is an absolute date.
	PublishedDate time.Time           `json:"publishedDate"`
	UploadType    locale.UploadType   `json:"uploadType"`
	ScheduledAt   time.Time           `json:"scheduledAt"`
	Badges        []string            `json:"badges"`
	Live          bool                `json:"live"`
	Upcoming      bool                `json:"upcoming"`
	Short         bool                `json:"short"`
	PlaylistID    string              `json:"playlistId"`
	Index         int                 `json:"index"`
}

// Playlist is the shape of CategoryPlaylist.
type Playlist struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Thumbnails     []innertube.Thumbnail `json:"thumbnails"`
	Channel        ChannelRef            `json:"channel"`
	VideoCountText string                `json:"videoCountText"`
	VideoCount     int64                 `json:"videoCount"`
	UpdatedText    string                `json:"updatedText"`
	Updated        time.Time             `json:"updated"`
	// Mix is set for generated radio playlists.
	Mix    bool        `json:"mix"`
	Videos []Container `json:"videos"`
}

// Channel is the shape of CategoryChannel.
type Channel struct {
	ID                  string                `json:"id"`
	Name                string                `json:"name"`
	Handle              string                `json:"handle"`
	Description         string                `json:"description"`
	Thumbnails          []innertube.Thumbnail `json:"thumbnails"`
	Banner              []innertube.Thumbnail `json:"banner"`
	SubscriberCountText string                `json:"subscriberCountText"`
	SubscriberCount     int64                 `json:"subscriberCount"`
	VideoCountText      string                `json:"videoCountText"`
	VideoCount          int64                 `json:"videoCount"`
	ViewCountText       string                `json:"viewCountText"`
	ViewCount           int64                 `json:"viewCount"`
	JoinedText          string                `json:"joinedText"`
	Joined              time.Time             `json:"joined"`
	Country             string                `json:"country"`
	Verified            bool                  `json:"verified"`
	Badges              []string              `json:"badges"`
}

// Section is the shape of CategoryContainer: shelves, lists, grids and tabs.
type Section struct {
	Title string `json:"title"`
	// ID is the section identifier, target id or playlist id, if any.
	ID       string      `json:"id"`
	Selected bool        `json:"selected"`
	BrowseID string      `json:"browseId"`
	Params   string      `json:"params"`
	Items    []Container `json:"items"`
}

// Continuation is the shape of CategoryContinuation.
type Continuation struct {
	Token   string `json:"token"`
	Trigger string `json:"trigger"`
}

// Message is the shape of CategoryMessage.
type Message struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Chip is the shape of CategoryChip: a filter of a listing.
type Chip struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
	// Token reloads the listing with the filter applied.
	Token    string `json:"token"`
	Query    string `json:"query"`
	BrowseID string `json:"browseId"`
	Params   string `json:"params"`
}

// CommunityPost is the shape of CategoryCommunityPost.
type CommunityPost struct {
	ID               string     `json:"id"`
	Channel          ChannelRef `json:"channel"`
	Text             string     `json:"text"`
	PublishedText    string     `json:"publishedText"`
	Published        string     `json:"published"`
	LikeCountText    string     `json:"likeCountText"`
	LikeCount        int64      `json:"likeCount"`
	CommentCountText string     `json:"commentCountText"`
	CommentCount     int64      `json:"commentCount"`
	// Attachment is the normalized attached video, playlist or image.
	Attachment *Container `json:"attachment"`
	// Shared is the original post of a repost.
	Shared *Container `json:"shared"`
}

// CommunityPostImage is the shape of CategoryCommunityPostImage. A single
// image post has one entry.
type CommunityPostImage struct {
	Images [][]innertube.Thumbnail `json:"images"`
}

// SearchSidebar is the shape of CategorySearchSidebar.
type SearchSidebar struct {
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Channel  ChannelRef  `json:"channel"`
	Hero     *Container  `json:"hero"`
	Sections []Container `json:"sections"`
}

// HeroVideo is the shape of CategoryHeroVideo.
type HeroVideo struct {
	VideoID      string                `json:"videoId"`
	Title        string                `json:"title"`
	Subtitle     string                `json:"subtitle"`
	DurationText string                `json:"durationText"`
	Duration     time.Duration         `json:"duration"`
	Thumbnails   []innertube.Thumbnail `json:"thumbnails"`
}

// SearchRefinementCard is the shape of CategorySearchRefinementCard.
type SearchRefinementCard struct {
	Query      string                `json:"query"`
	Params     string                `json:"params"`
	PlaylistID string                `json:"playlistId"`
	Thumbnails []innertube.Thumbnail `json:"thumbnails"`
}

// RecognitionShelf is the shape of CategoryRecognitionShelf.
type RecognitionShelf struct {
	Title    string                  `json:"title"`
	Subtitle string                  `json:"subtitle"`
	Avatars  [][]innertube.Thumbnail `json:"avatars"`
}

// Comment is the shape of CategoryComment.
type Comment struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Author        ChannelRef `json:"author"`
	PublishedText string     `json:"publishedText"`
	Published     string     `json:"published"`
	LikeCountText string     `json:"likeCountText"`
	LikeCount     int64      `json:"likeCount"`
	ReplyCount    int64      `json:"replyCount"`
	Pinned        bool       `json:"pinned"`
	ByOwner       bool       `json:"byOwner"`
	// RepliesToken follows the reply thread, if it has one.
	RepliesToken string `json:"repliesToken"`
}

// Unknown is the shape of CategoryUnknown. Raw is the payload as received.
type Unknown struct {
	Raw json.RawMessage `json:"raw"`
}

// Exception is the shape of CategoryException.
type Exception struct {
	Message string `json:"message"`
	Variant string `json:"variant"`
}

func (Video) category() Category                { return CategoryVideo }
func (Playlist) category() Category             { return CategoryPlaylist }
func (Channel) category() Category              { return CategoryChannel }
func (Section) category() Category              { return CategoryContainer }
func (Continuation) category() Category         { return CategoryContinuation }
func (Message) category() Category              { return CategoryMessage }
func (Chip) category() Category                 { return CategoryChip }
func (CommunityPost) category() Category        { return CategoryCommunityPost }
func (CommunityPostImage) category() Category   { return CategoryCommunityPostImage }
func (SearchSidebar) category() Category        { return CategorySearchSidebar }
func (HeroVideo) category() Category            { return CategoryHeroVideo }
func (SearchRefinementCard) category() Category { return CategorySearchRefinementCard }
func (RecognitionShelf) category() Category     { return CategoryRecognitionShelf }
func (Comment) category() Category              { return CategoryComment }
func (Unknown) category() Category              { return CategoryUnknown }
func (Exception) category() Category            { return CategoryException }

// newContainer builds a container whose category follows its shape.
func newContainer(variant string, data Shape) Container {
	return Container{Category: data.category(), OriginalVariant: variant, Data: data}
}

// Children returns the nested containers of a section, or nil.
func (c Container) Children() []Container {
	if s, ok := c.Data.(Section); ok {
		return s.Items
	}
	return nil
}
