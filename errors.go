package ytkit

import (
	"ytkit/continuation"
	ythttp "ytkit/http"
	"ytkit/innertube"
	"ytkit/locale"
	"ytkit/signature"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytkit.ErrNotFound) {
//		fmt.Println("video, channel or continuation does not exist")
//	}
//
// Using errors.As() for typed errors:
//
//	var np *ytkit.NotPlayableError
//	if errors.As(err, &np) {
//		fmt.Printf("%s: %s\n", np.Status, np.Reason)
//	}

// Type aliases for convenient error handling.
type (
	// NotPlayableError reports a video the player refuses to play.
	NotPlayableError = innertube.NotPlayableError
	// PatternError reports a player bundle the descrambler could not read.
	PatternError = signature.PatternError
	// HTTPError is a non-2xx response that is not a rate limit.
	HTTPError = ythttp.HTTPError
	// RateLimitError is a 429 or 503 response.
	RateLimitError = ythttp.RateLimitError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrNotFound indicates a missing entity, a missing response root or
	// an expired continuation.
	ErrNotFound = innertube.ErrNotFound
	// ErrBadRequest indicates a rejected request, typically a malformed
	// continuation token.
	ErrBadRequest = innertube.ErrBadRequest

	// ErrPatternNotFound indicates the player bundle changed shape.
	ErrPatternNotFound = signature.ErrPatternNotFound
	// ErrScriptTimeout indicates a descrambler call ran too long.
	ErrScriptTimeout = signature.ErrScriptTimeout

	// ErrUnknownLocale indicates an unregistered language tag.
	ErrUnknownLocale = locale.ErrUnknownLocale

	// ErrInvalidToken indicates a continuation token that cannot be used.
	ErrInvalidToken = continuation.ErrInvalidToken
	// ErrInvalidOffset indicates a negative playlist offset.
	ErrInvalidOffset = continuation.ErrInvalidOffset
)
