// Package ytkit is a client for YouTube's internal web API.
//
// It turns the versioned, loosely structured responses of the search,
// browse, next and player endpoints into a small typed surface.
//
// Overview
//
// A Client covers the common operations:
//
//   - Search, Browse, Playlist: first page of a listing
//   - Continue, Walk: follow continuation tokens to later pages
//   - PlaylistAt: jump to any offset of a playlist
//   - Watch, Comments: the watch page and its comment threads
//   - Player: playback formats with directly fetchable URLs
//
// Quick Start
//
//	c, err := ytkit.New(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	page, err := c.Search(ctx, "golang", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for page.HasNext() {
//		page, err = c.Continue(ctx, page.Next)
//		...
//	}
//
// Every listing item is a renderer.Container whose Category is drawn from
// a closed set (video, playlist, channel, container, continuation, message,
// chip, ...). Items the client does not recognize become "unknown"
// containers holding the raw payload, and items that fail to convert
// become "exception" containers, so one malformed entry never fails a page.
//
// Configuration
//
// config.Load reads, in order of priority:
//
//   1. Environment variables (YTKIT_LANGUAGE, YTKIT_REGION, YTKIT_TIMEOUT, ...)
//   2. Config file (ytkit.json or ~/.config/ytkit/ytkit.json)
//   3. Default values
//
// The language selects both the response language and the parser for
// counts and dates in the response text.
//
// Sub-packages
//
//   - innertube: wire schema and endpoint client
//   - renderer: normalization of wire nodes into containers
//   - continuation: continuation tokens, playlist offsets and walks
//   - signature: player bundle descrambling
//   - locale: per-language count and date parsers
//   - http: rate limited, retrying transport
//   - config: configuration management
package ytkit
