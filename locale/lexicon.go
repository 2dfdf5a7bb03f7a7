package locale

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

type dateOrder int

const (
	orderDMY dateOrder = iota
	orderMDY
	orderYMD
)

// magnitude is a multiplier word following a number, e.g. "K" or "lakh".
type magnitude struct {
	word   string
	factor int64
}

// unit maps a time word prefix to its canonical delta unit.
type unit struct {
	word string
	code byte
}

type monthWord struct {
	word  string
	month time.Month
}

// uploadRule classifies an upload caption containing phrase.
type uploadRule struct {
	phrase string
	kind   UploadType
}

// lexicon holds everything language specific. The parsing algorithms in
// this file are shared by all languages.
type lexicon struct {
	tag string

	decimal rune
	groups  string

	magnitudes []magnitude
	units      []unit
	months     []monthWord
	order      dateOrder

	// compact languages write units and magnitudes without spaces, so
	// matching is by substring instead of by word prefix.
	compact bool

	// ago lists markers a relative date must contain, so that dates such
	// as "2024年1月3日" or "Premieres in 2 hours" are not read as a delta.
	ago []string

	// none lists phrases meaning a zero count, e.g. "no views".
	none []string

	uploads   []uploadRule
	today     []string
	yesterday []string
}

// strategy implements Parser over a lexicon.
type strategy struct {
	lex *lexicon
	now func() time.Time
}

func newStrategy(lex lexicon, now func() time.Time) *strategy {
	l := lex
	l.magnitudes = append([]magnitude(nil), lex.magnitudes...)
	sort.SliceStable(l.magnitudes, func(i, j int) bool {
		return utf8.RuneCountInString(l.magnitudes[i].word) > utf8.RuneCountInString(l.magnitudes[j].word)
	})
	l.units = append([]unit(nil), lex.units...)
	sort.SliceStable(l.units, func(i, j int) bool {
		return utf8.RuneCountInString(l.units[i].word) > utf8.RuneCountInString(l.units[j].word)
	})
	l.months = append([]monthWord(nil), lex.months...)
	sort.SliceStable(l.months, func(i, j int) bool {
		return utf8.RuneCountInString(l.months[i].word) > utf8.RuneCountInString(l.months[j].word)
	})
	return &strategy{lex: &l, now: now}
}

func (s *strategy) Language() string { return s.lex.tag }

var (
	countPattern = regexp.MustCompile(`\d(?:[\d.,'\x{00a0}\x{202f} ]*\d)?`)
	digitsRun    = regexp.MustCompile(`\d+`)
)

// normalize lower-cases text and folds the various space characters used
// as group separators into a plain space.
func normalize(text string) string {
	text = strings.Map(func(r rune) rune {
		switch r {
		case '\u00a0', '\u202f', '\u2009':
			return ' '
		}
		return r
	}, text)
	return strings.ToLower(strings.TrimSpace(text))
}

func tokens(text string) []string {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	out := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (s *strategy) parseCount(text string) int64 {
	t := normalize(text)
	if t == "" {
		return InvalidCount
	}
	loc := countPattern.FindStringIndex(t)
	if loc == nil {
		for _, phrase := range s.lex.none {
			if strings.Contains(t, phrase) {
				return 0
			}
		}
		return InvalidCount
	}

	mantissa, scale, ok := s.parseDecimal(t[loc[0]:loc[1]])
	if !ok {
		return InvalidCount
	}

	factor := s.magnitudeAfter(strings.TrimLeft(t[loc[1]:], " "))
	if mantissa > 0 && factor > (1<<63-1)/mantissa {
		return InvalidCount
	}
	value := mantissa * factor
	for ; scale > 0; scale-- {
		value /= 10
	}
	return value
}

// parseDecimal reads a localized number into an integer mantissa and the
// count of fractional digits, so that truncation after applying a
// magnitude is exact.
func (s *strategy) parseDecimal(num string) (mantissa int64, scale int, ok bool) {
	var digits strings.Builder
	seenDecimal := false
	for _, r := range num {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
			if seenDecimal {
				scale++
			}
		case r == s.lex.decimal:
			if seenDecimal {
				return 0, 0, false
			}
			seenDecimal = true
		case r == ' ' || strings.ContainsRune(s.lex.groups, r):
		default:
			return 0, 0, false
		}
	}
	if digits.Len() == 0 || digits.Len() > 18 {
		return 0, 0, false
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return n, scale, true
}

func (s *strategy) magnitudeAfter(rest string) int64 {
	for _, m := range s.lex.magnitudes {
		if !strings.HasPrefix(rest, m.word) {
			continue
		}
		if s.lex.compact || wordBoundary(rest[len(m.word):]) {
			return m.factor
		}
	}
	return 1
}

func wordBoundary(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	return rest == "" || !(unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r))
}

func (s *strategy) ParseSubscriberCount(text string) int64 { return s.parseCount(text) }
func (s *strategy) ParseLikeCount(text string) int64       { return s.parseCount(text) }
func (s *strategy) ParseViewCount(text string) int64       { return s.parseCount(text) }
func (s *strategy) ParseVideoCount(text string) int64      { return s.parseCount(text) }

func (s *strategy) ParseRelativeDate(text string) string {
	t := normalize(text)
	if len(s.lex.ago) > 0 && !containsAny(t, s.lex.ago) {
		return InvalidDelta
	}
	num := digitsRun.FindString(t)
	if num == "" {
		return InvalidDelta
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return InvalidDelta
	}
	code, ok := s.findUnit(t)
	if !ok {
		return InvalidDelta
	}
	return formatDelta(n, code)
}

func containsAny(t string, words []string) bool {
	for _, w := range words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

func (s *strategy) findUnit(t string) (byte, bool) {
	if s.lex.compact {
		for _, u := range s.lex.units {
			if strings.Contains(t, u.word) {
				return u.code, true
			}
		}
		return 0, false
	}
	for _, tok := range tokens(t) {
		for _, u := range s.lex.units {
			if strings.HasPrefix(tok, u.word) {
				return u.code, true
			}
		}
	}
	return 0, false
}

func (s *strategy) findMonth(t string) (time.Month, bool) {
	if s.lex.compact {
		for _, m := range s.lex.months {
			if strings.Contains(t, m.word) {
				return m.month, true
			}
		}
		return 0, false
	}
	for _, tok := range tokens(t) {
		for _, m := range s.lex.months {
			if strings.HasPrefix(tok, m.word) {
				return m.month, true
			}
		}
	}
	return 0, false
}

func (s *strategy) ParseFullDate(text string) time.Time {
	t := normalize(text)
	runs := digitsRun.FindAllString(t, -1)
	nums := make([]int, 0, len(runs))
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			return time.Time{}
		}
		nums = append(nums, n)
	}

	if month, ok := s.findMonth(t); ok {
		year, day := -1, -1
		for i, r := range runs {
			switch {
			case len(r) == 4 && year < 0:
				year = nums[i]
			case day < 0 && len(r) <= 2:
				day = nums[i]
			}
		}
		return makeDate(year, int(month), day)
	}

	if len(nums) < 3 {
		return time.Time{}
	}
	a, b, c := nums[0], nums[1], nums[2]
	switch s.lex.order {
	case orderMDY:
		return makeDate(c, a, b)
	case orderYMD:
		return makeDate(a, b, c)
	default:
		return makeDate(c, b, a)
	}
}

func makeDate(year, month, day int) time.Time {
	if year < 1900 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day {
		return time.Time{}
	}
	return d
}

func (s *strategy) ParseUploadType(text string) UploadType {
	t := normalize(text)
	if t == "" {
		return UploadUnknown
	}
	for _, rule := range s.lex.uploads {
		if strings.Contains(t, rule.phrase) {
			return rule.kind
		}
	}
	if !s.ParseFullDate(t).IsZero() || s.ParseRelativeDate(t) != InvalidDelta {
		return UploadPublished
	}
	return UploadUnknown
}

func (s *strategy) ParseLastUpdated(text string) time.Time {
	t := normalize(text)
	if t == "" {
		return time.Time{}
	}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, w := range s.lex.yesterday {
		if strings.Contains(t, w) {
			return today.AddDate(0, 0, -1)
		}
	}
	for _, w := range s.lex.today {
		if strings.Contains(t, w) {
			return today
		}
	}
	if d := s.ParseFullDate(t); !d.IsZero() {
		return d
	}
	if at, ok := ResolveDelta(s.ParseRelativeDate(t), now); ok {
		return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}
