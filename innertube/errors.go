package innertube

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity, or the expected content
	// root of a response, does not exist. Expired continuation tokens
	// surface as ErrNotFound too.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest indicates the endpoint rejected the request, typically
	// because of a malformed or foreign continuation token.
	ErrBadRequest = errors.New("bad request")
)

// NotPlayableError reports a video the player endpoint refuses to play.
type NotPlayableError struct {
	VideoID string
	// Status is the upstream playability status, e.g. LOGIN_REQUIRED.
	Status string
	// Reason is the upstream human readable reason.
	Reason string
}

func (e *NotPlayableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("video %s not playable: %s", e.VideoID, e.Status)
	}
	return fmt.Sprintf("video %s not playable: %s: %s", e.VideoID, e.Status, e.Reason)
}

// Unwrap lets errors.Is(err, ErrNotFound) match videos that do not exist.
func (e *NotPlayableError) Unwrap() error {
	if e.Status == "ERROR" {
		return ErrNotFound
	}
	return nil
}
