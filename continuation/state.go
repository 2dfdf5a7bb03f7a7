package continuation

import (
	"encoding/json"
	"time"
)

// DefaultTokenTTL is how long a server token is assumed to stay valid.
// Tokens typically expire within two to four hours.
const DefaultTokenTTL = 2 * time.Hour

// State is the resumable position of a walk over one listing.
type State struct {
	Token Token `json:"token"`

	// Retrieved counts the items returned so far.
	Retrieved int `json:"retrieved"`

	// Pages counts the pages followed so far.
	Pages int `json:"pages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ExpiresAt is zero for synthesized tokens, which do not expire.
	ExpiresAt time.Time `json:"expires_at,omitempty"`

	now func() time.Time
}

// NewState starts a walk at tok.
func NewState(tok Token) *State {
	s := &State{now: time.Now}
	s.CreatedAt = s.now()
	s.setToken(tok)
	return s
}

func (s *State) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func (s *State) setToken(tok Token) {
	s.Token = tok
	s.UpdatedAt = s.clock()
	if tok.IsZero() || tok.Synthesized {
		s.ExpiresAt = time.Time{}
		return
	}
	s.ExpiresAt = s.UpdatedAt.Add(DefaultTokenTTL)
}

// Advance records a followed page and moves to its next token.
func (s *State) Advance(p *Page) {
	s.Pages++
	s.Retrieved += len(p.Items)
	next := p.Next
	if next.Family == 0 {
		next.Family = s.Token.Family
	}
	s.setToken(next)
}

// HasMore reports whether there are more pages to follow.
func (s *State) HasMore() bool {
	return !s.Token.IsZero()
}

// IsExpired reports whether the current token is past its assumed lifetime.
func (s *State) IsExpired() bool {
	if s.Token.IsZero() || s.ExpiresAt.IsZero() {
		return false
	}
	return s.clock().After(s.ExpiresAt)
}

// MarshalText encodes the state as JSON for storage.
func (s *State) MarshalText() ([]byte, error) {
	type plain State
	return json.Marshal((*plain)(s))
}

// UnmarshalText decodes a state written by MarshalText.
func (s *State) UnmarshalText(data []byte) error {
	type plain State
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = State(p)
	s.now = time.Now
	return nil
}
