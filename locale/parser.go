// Package locale converts text fragments that the upstream service has
// already localized into typed values: counts, calendar dates, relative
// time deltas and upload classifications.
//
// Every supported language is a strategy built from a lexicon of words and
// separators. Strategies are looked up by language tag through a Registry
// that is built once on first use and read-only afterwards.
//
// Parsing never fails with an error. Text that does not match the expected
// shape for a language yields a sentinel value (InvalidCount, InvalidDelta,
// the zero time.Time or UploadUnknown) so that one malformed fragment never
// fails an otherwise good response.
package locale

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrUnknownLocale is returned when a language tag has no registered parser.
var ErrUnknownLocale = errors.New("unknown locale")

// InvalidCount is returned by the count parsers for unrecognized text.
const InvalidCount int64 = -1

// InvalidDelta is returned by ParseRelativeDate for unrecognized text.
const InvalidDelta = ""

// UploadType classifies how a video was published.
type UploadType int

const (
	// UploadUnknown means the text could not be classified.
	UploadUnknown UploadType = iota
	// UploadPublished is a regular upload.
	UploadPublished
	// UploadPremiered is a premiere that already happened.
	UploadPremiered
	// UploadStreamingLive is a stream that is live right now.
	UploadStreamingLive
	// UploadStreamedLive is a finished live stream.
	UploadStreamedLive
	// UploadScheduled is an upcoming premiere or stream.
	UploadScheduled
)

// String returns the canonical name of the upload type.
func (u UploadType) String() string {
	switch u {
	case UploadPublished:
		return "published"
	case UploadPremiered:
		return "premiered"
	case UploadStreamingLive:
		return "streaming_live"
	case UploadStreamedLive:
		return "streamed_live"
	case UploadScheduled:
		return "scheduled"
	default:
		return "unknown"
	}
}

// Parser is the set of text parsers for one display language.
// Implementations are pure and safe for concurrent use.
type Parser interface {
	// Language returns the tag the parser was registered under.
	Language() string

	// ParseRelativeDate converts "2 hours ago" style text into a canonical
	// delta such as "-2h". Units are s, m, h, D, W, M and Y.
	ParseRelativeDate(text string) string
	// ParseFullDate parses a calendar date, ignoring any surrounding words.
	ParseFullDate(text string) time.Time
	// ParseUploadType classifies a publish-time caption.
	ParseUploadType(text string) UploadType
	// ParseLastUpdated parses a playlist "last updated" caption, which may
	// be absolute or relative to the parser's clock.
	ParseLastUpdated(text string) time.Time

	ParseSubscriberCount(text string) int64
	ParseLikeCount(text string) int64
	ParseViewCount(text string) int64
	ParseVideoCount(text string) int64
}

// ResolveDelta applies a canonical delta produced by ParseRelativeDate to
// now. It reports false when delta is not canonical.
func ResolveDelta(delta string, now time.Time) (time.Time, bool) {
	if len(delta) < 3 || delta[0] != '-' {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(delta[1 : len(delta)-1])
	if err != nil || n < 0 {
		return time.Time{}, false
	}
	switch delta[len(delta)-1] {
	case 's':
		return now.Add(-time.Duration(n) * time.Second), true
	case 'm':
		return now.Add(-time.Duration(n) * time.Minute), true
	case 'h':
		return now.Add(-time.Duration(n) * time.Hour), true
	case 'D':
		return now.AddDate(0, 0, -n), true
	case 'W':
		return now.AddDate(0, 0, -7*n), true
	case 'M':
		return now.AddDate(0, -n, 0), true
	case 'Y':
		return now.AddDate(-n, 0, 0), true
	}
	return time.Time{}, false
}

func formatDelta(n int64, unit byte) string {
	return fmt.Sprintf("-%d%c", n, unit)
}
