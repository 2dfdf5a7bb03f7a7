package signature

import (
	"errors"
	"fmt"
)

var (
	// ErrPatternNotFound is matched by every PatternError.
	ErrPatternNotFound = errors.New("descrambler pattern not found")

	// ErrScriptTimeout is returned when a descrambler call exceeds the
	// host's time limit.
	ErrScriptTimeout = errors.New("descrambler script timed out")

	// ErrNoURL is returned for a format that carries neither a URL nor a
	// signature cipher.
	ErrNoURL = errors.New("format has no url")

	// ErrDescramble is returned when a descrambler ran but produced an
	// unusable value.
	ErrDescramble = errors.New("descrambler returned an unusable value")
)

// PatternError reports a structural pattern that did not match a player
// bundle. It is fatal for that bundle identity.
type PatternError struct {
	Pattern  string
	Identity string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s not found in player bundle %s", e.Pattern, e.Identity)
}

func (e *PatternError) Unwrap() error {
	return ErrPatternNotFound
}
