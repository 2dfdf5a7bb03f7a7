package innertube

import (
	"net/url"
	"strconv"
)

// PlayerResponse is the response of the player endpoint.
type PlayerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason,omitempty"`
	} `json:"playabilityStatus"`
	StreamingData *struct {
		ExpiresInSeconds string   `json:"expiresInSeconds,omitempty"`
		Formats          []Format `json:"formats,omitempty"`
		AdaptiveFormats  []Format `json:"adaptiveFormats,omitempty"`
		HLSManifestURL   string   `json:"hlsManifestUrl,omitempty"`
		DashManifestURL  string   `json:"dashManifestUrl,omitempty"`
	} `json:"streamingData,omitempty"`
	VideoDetails *struct {
		VideoID          string   `json:"videoId"`
		Title            string   `json:"title"`
		LengthSeconds    string   `json:"lengthSeconds"`
		ChannelID        string   `json:"channelId"`
		Author           string   `json:"author"`
		ViewCount        string   `json:"viewCount"`
		ShortDescription string   `json:"shortDescription"`
		Keywords         []string `json:"keywords,omitempty"`
		IsLiveContent    bool     `json:"isLiveContent"`
		IsLive           bool     `json:"isLive,omitempty"`
	} `json:"videoDetails,omitempty"`
}

// PlayabilityError maps a non-OK playability status to a NotPlayableError.
// A status of ERROR also matches ErrNotFound.
func (r *PlayerResponse) PlayabilityError(videoID string) error {
	switch r.PlayabilityStatus.Status {
	case "OK":
		return nil
	case "":
		return &NotPlayableError{VideoID: videoID, Status: "ERROR", Reason: "missing playability status"}
	}
	return &NotPlayableError{
		VideoID: videoID,
		Status:  r.PlayabilityStatus.Status,
		Reason:  r.PlayabilityStatus.Reason,
	}
}

// Formats returns the muxed formats followed by the adaptive ones.
func (r *PlayerResponse) Formats() []Format {
	if r == nil || r.StreamingData == nil {
		return nil
	}
	out := make([]Format, 0, len(r.StreamingData.Formats)+len(r.StreamingData.AdaptiveFormats))
	out = append(out, r.StreamingData.Formats...)
	return append(out, r.StreamingData.AdaptiveFormats...)
}

// Format is a playback rendition. Either URL or SignatureCipher is set.
type Format struct {
	Itag             int    `json:"itag"`
	URL              string `json:"url,omitempty"`
	SignatureCipher  string `json:"signatureCipher,omitempty"`
	Cipher           string `json:"cipher,omitempty"`
	MimeType         string `json:"mimeType"`
	Bitrate          int    `json:"bitrate,omitempty"`
	Width            int    `json:"width,omitempty"`
	Height           int    `json:"height,omitempty"`
	FPS              int    `json:"fps,omitempty"`
	ContentLength    string `json:"contentLength,omitempty"`
	Quality          string `json:"quality,omitempty"`
	QualityLabel     string `json:"qualityLabel,omitempty"`
	AudioQuality     string `json:"audioQuality,omitempty"`
	AudioSampleRate  string `json:"audioSampleRate,omitempty"`
	AudioChannels    int    `json:"audioChannels,omitempty"`
	ApproxDurationMs string `json:"approxDurationMs,omitempty"`
}

// CipherString returns the signature cipher under either of its names.
func (f Format) CipherString() string {
	if f.SignatureCipher != "" {
		return f.SignatureCipher
	}
	return f.Cipher
}

// Size returns the content length in bytes, or 0 when unknown.
func (f Format) Size() int64 {
	n, err := strconv.ParseInt(f.ContentLength, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Cipher is a parsed signature cipher.
type Cipher struct {
	// Signature is the scrambled signature value.
	Signature string
	// Param is the query parameter that receives the descrambled value.
	Param string
	// URL is the base URL without the signature.
	URL string
}

// ParseCipher parses a signatureCipher query string. The target parameter
// defaults to "signature" when the cipher does not name one.
func ParseCipher(raw string) (Cipher, error) {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return Cipher{}, err
	}
	c := Cipher{
		Signature: q.Get("s"),
		Param:     q.Get("sp"),
		URL:       q.Get("url"),
	}
	if c.Param == "" {
		c.Param = "signature"
	}
	return c, nil
}
