// Package continuation locates, follows and synthesizes the opaque cursors
// that page through innertube listings.
//
// Server-issued tokens are passed through verbatim. The only tokens this
// package builds itself are playlist offset tokens (PackOffset), which use
// the same browse envelope the server issues for that position.
package continuation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is returned when a token does not decode as a browse
	// continuation.
	ErrInvalidToken = errors.New("invalid continuation token")

	// ErrInvalidOffset is returned by PackOffset for a negative offset.
	ErrInvalidOffset = errors.New("invalid playlist offset")
)

// Family is a listing family. Each family keeps its pagination marker at a
// different place in its responses and is continued through a different
// endpoint.
type Family int

const (
	FamilySearch Family = iota + 1
	FamilyBrowse
	FamilyPlaylist
	FamilyComments
)

func (f Family) String() string {
	switch f {
	case FamilySearch:
		return "search"
	case FamilyBrowse:
		return "browse"
	case FamilyPlaylist:
		return "playlist"
	case FamilyComments:
		return "comments"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// ParseFamily returns the family with the given name.
func ParseFamily(name string) (Family, error) {
	for _, f := range []Family{FamilySearch, FamilyBrowse, FamilyPlaylist, FamilyComments} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown listing family %q", name)
}

// Token is a continuation cursor tagged with the family it pages.
type Token struct {
	Family Family `json:"family"`
	Value  string `json:"value"`
	// Synthesized marks tokens built by PackOffset rather than issued by
	// the server.
	Synthesized bool `json:"synthesized,omitempty"`
}

// IsZero reports whether the token is exhausted.
func (t Token) IsZero() bool {
	return t.Value == ""
}
