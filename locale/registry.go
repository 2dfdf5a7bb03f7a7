package locale

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Registry maps language tags to parsers. The table is built once, on the
// first lookup, and is read-only afterwards.
type Registry struct {
	once    sync.Once
	now     func() time.Time
	parsers map[string]Parser
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used to resolve relative "last updated" text.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// NewRegistry creates a registry. Parsers are not built until first use.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var lexicons = []lexicon{
	english, englishIndia,
	german, spanish, french, italian, portuguese, turkish, russian,
	hindi, japanese, korean, chinese,
}

var aliases = map[string]string{
	"zh":      "zh-cn",
	"zh-hans": "zh-cn",
	"pt-br":   "pt",
	"es-419":  "es",
}

func (r *Registry) build() {
	r.parsers = make(map[string]Parser, len(lexicons))
	for _, lex := range lexicons {
		r.parsers[strings.ToLower(lex.tag)] = newStrategy(lex, r.now)
	}
}

// Get returns the parser for tag. Lookup is case-insensitive and falls back
// from a regional tag ("fr-CA") to its base language ("fr").
func (r *Registry) Get(tag string) (Parser, error) {
	r.once.Do(r.build)

	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if p, ok := r.parsers[key]; ok {
		return p, nil
	}
	if base, _, found := strings.Cut(key, "-"); found {
		if p, ok := r.parsers[base]; ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
}

// Languages returns the registered tags in sorted order.
func (r *Registry) Languages() []string {
	r.once.Do(r.build)
	tags := make([]string, 0, len(r.parsers))
	for _, p := range r.parsers {
		tags = append(tags, p.Language())
	}
	sort.Strings(tags)
	return tags
}

var defaultRegistry = NewRegistry()

// Get returns the parser for tag from the process-wide registry.
func Get(tag string) (Parser, error) {
	return defaultRegistry.Get(tag)
}
