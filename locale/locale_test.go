package locale

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func mustParser(t *testing.T, tag string) Parser {
	t.Helper()
	p, err := NewRegistry(WithClock(func() time.Time { return fixedNow })).Get(tag)
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseRelativeDate(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		want string
	}{
		{"en", "2 hours ago", "-2h"},
		{"en", "1 month ago", "-1M"},
		{"en", "5 minutes ago", "-5m"},
		{"en", "3 weeks ago", "-3W"},
		{"en", "10 seconds ago", "-10s"},
		{"en", "1 day ago", "-1D"},
		{"en", "Streamed 2 years ago", "-2Y"},
		{"fr", "3 ans", "-3Y"},
		{"fr", "il y a 2 heures", "-2h"},
		{"fr", "il y a 1 mois", "-1M"},
		{"de", "vor 3 Tagen", "-3D"},
		{"de", "vor 10 Minuten", "-10m"},
		{"es", "hace 2 semanas", "-2W"},
		{"pt", "há 5 meses", "-5M"},
		{"it", "3 giorni fa", "-3D"},
		{"tr", "3 saat önce", "-3h"},
		{"ru", "2 часа назад", "-2h"},
		{"ru", "5 дней назад", "-5D"},
		{"hi", "2 घंटे पहले", "-2h"},
		{"ja", "2 時間前", "-2h"},
		{"ja", "1 か月前", "-1M"},
		{"ko", "3일 전", "-3D"},
		{"ko", "최초 공개: 3시간 전", "-3h"},
		{"zh-CN", "3天前", "-3D"},
		{"zh-CN", "2个月前", "-2M"},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParser(t, tt.tag).ParseRelativeDate(tt.text))
		})
	}
}

func TestCompactAbsoluteDateIsNotRelative(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		want time.Time
	}{
		{"zh-CN", "2024年1月3日", date(2024, time.January, 3)},
		{"zh-CN", "首播时间：2024年1月3日", date(2024, time.January, 3)},
		{"zh-CN", "直播时间：2023年12月5日", date(2023, time.December, 5)},
		{"ja", "2024年1月3日", date(2024, time.January, 3)},
		{"ja", "2024/01/03 にプレミア公開", date(2024, time.January, 3)},
		{"ko", "2024. 1. 3.", date(2024, time.January, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.text, func(t *testing.T) {
			p := mustParser(t, tt.tag)
			assert.Equal(t, InvalidDelta, p.ParseRelativeDate(tt.text))
			assert.Equal(t, tt.want, p.ParseFullDate(tt.text))
		})
	}
}

func TestFutureTimeIsNotRelative(t *testing.T) {
	for _, tag := range []string{"en", "en-IN"} {
		p := mustParser(t, tag)
		assert.Equal(t, InvalidDelta, p.ParseRelativeDate("Premieres in 2 hours"), tag)
		assert.Equal(t, InvalidDelta, p.ParseRelativeDate("Scheduled for 3 days from now"), tag)
		assert.Equal(t, "-2h", p.ParseRelativeDate("Premiered 2 hours ago"), tag)
	}
}

func TestParseCounts(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		want int64
	}{
		{"en", "1.2M subscribers", 1200000},
		{"en", "1,234,567 views", 1234567},
		{"en", "12K", 12000},
		{"en", "3.5B views", 3500000000},
		{"en", "1.25K likes", 1250},
		{"en", "No views", 0},
		{"en", "1 video", 1},
		{"en-IN", "12 lakh subscribers", 1200000},
		{"en-IN", "1.5 crore views", 15000000},
		{"en-IN", "2.5 lakh", 250000},
		{"fr", "1,2 k abonnés", 1200},
		{"fr", "12 345 vues", 12345},
		{"fr", "Aucune vue", 0},
		{"de", "1,2 Mio. Abonnenten", 1200000},
		{"de", "12.345 Aufrufe", 12345},
		{"de", "Keine Aufrufe", 0},
		{"es", "1,2 M de suscriptores", 1200000},
		{"es", "12 mil visualizaciones", 12000},
		{"es", "1,5 mil M de visualizaciones", 1500000000},
		{"pt", "1,2 mi de inscritos", 1200000},
		{"pt", "12 mil visualizações", 12000},
		{"it", "1,2 Mln di iscritti", 1200000},
		{"tr", "1,2 Mn abone", 1200000},
		{"tr", "12 B görüntüleme", 12000},
		{"ru", "1,2 млн подписчиков", 1200000},
		{"ru", "12 тыс. просмотров", 12000},
		{"hi", "12 लाख सब्सक्राइबर", 1200000},
		{"hi", "1.5 करोड़ व्यूज़", 15000000},
		{"ja", "チャンネル登録者数 120万人", 1200000},
		{"ja", "1.2億 回視聴", 120000000},
		{"ko", "구독자 120만명", 1200000},
		{"ko", "조회수 1.5천회", 1500},
		{"zh-CN", "120万位订阅者", 1200000},
		{"zh-CN", "1.2亿次观看", 120000000},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.text, func(t *testing.T) {
			p := mustParser(t, tt.tag)
			assert.Equal(t, tt.want, p.ParseSubscriberCount(tt.text))
			assert.Equal(t, tt.want, p.ParseViewCount(tt.text))
			assert.Equal(t, tt.want, p.ParseLikeCount(tt.text))
			assert.Equal(t, tt.want, p.ParseVideoCount(tt.text))
		})
	}
}

func TestParseFullDate(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		want time.Time
	}{
		{"en", "Jan 3, 2024", date(2024, time.January, 3)},
		{"en", "Premiered Mar 15, 2023", date(2023, time.March, 15)},
		{"en", "Joined Dec 31, 2010", date(2010, time.December, 31)},
		{"en-IN", "3 Jan 2024", date(2024, time.January, 3)},
		{"fr", "3 janv. 2024", date(2024, time.January, 3)},
		{"de", "03.01.2024", date(2024, time.January, 3)},
		{"de", "Premiere am 03.01.2024", date(2024, time.January, 3)},
		{"es", "3 ene 2024", date(2024, time.January, 3)},
		{"pt", "3 de jan. de 2024", date(2024, time.January, 3)},
		{"it", "3 gen 2024", date(2024, time.January, 3)},
		{"tr", "3 Oca 2024", date(2024, time.January, 3)},
		{"ru", "3 янв. 2024 г.", date(2024, time.January, 3)},
		{"hi", "3 जन॰ 2024", date(2024, time.January, 3)},
		{"ja", "2024/01/03", date(2024, time.January, 3)},
		{"ko", "2024. 1. 3.", date(2024, time.January, 3)},
		{"zh-CN", "2024年1月3日", date(2024, time.January, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParser(t, tt.tag).ParseFullDate(tt.text))
		})
	}
}

func TestParseUploadType(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		want UploadType
	}{
		{"en", "Premiered Jan 3, 2024", UploadPremiered},
		{"en", "Premieres in 2 hours", UploadScheduled},
		{"en", "Scheduled for 1/20/24", UploadScheduled},
		{"en", "Started streaming 3 hours ago", UploadStreamingLive},
		{"en", "Streamed live on Jan 3, 2024", UploadStreamedLive},
		{"en", "Streamed 2 days ago", UploadStreamedLive},
		{"en", "3 days ago", UploadPublished},
		{"en", "Jan 3, 2024", UploadPublished},
		{"en", "gibberish", UploadUnknown},
		{"de", "Premiere am 03.01.2024", UploadPremiered},
		{"fr", "Diffusé en direct le 3 janv. 2024", UploadStreamedLive},
		{"ja", "2024/01/03 にプレミア公開", UploadPremiered},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, mustParser(t, tt.tag).ParseUploadType(tt.text))
		})
	}
}

func TestParseLastUpdated(t *testing.T) {
	p := mustParser(t, "en")
	assert.Equal(t, date(2024, time.June, 15), p.ParseLastUpdated("Updated today"))
	assert.Equal(t, date(2024, time.June, 14), p.ParseLastUpdated("Updated yesterday"))
	assert.Equal(t, date(2024, time.January, 3), p.ParseLastUpdated("Last updated on Jan 3, 2024"))
	assert.Equal(t, date(2024, time.June, 12), p.ParseLastUpdated("Updated 3 days ago"))
	assert.True(t, p.ParseLastUpdated("whenever").IsZero())

	de := mustParser(t, "de")
	assert.Equal(t, date(2024, time.June, 15), de.ParseLastUpdated("Heute aktualisiert"))
}

func TestMalformedInputReturnsSentinel(t *testing.T) {
	inputs := []string{"", "   ", "abc", "n/a", "--", "¥¥¥", " ", "99999999999999999999 views"}
	for _, tag := range NewRegistry().Languages() {
		p := mustParser(t, tag)
		for _, in := range inputs {
			assert.NotPanics(t, func() {
				assert.Equal(t, InvalidDelta, p.ParseRelativeDate(in), "%s %q", tag, in)
				assert.True(t, p.ParseFullDate(in).IsZero(), "%s %q", tag, in)
				assert.Equal(t, UploadUnknown, p.ParseUploadType(in), "%s %q", tag, in)
				assert.Equal(t, InvalidCount, p.ParseViewCount(in), "%s %q", tag, in)
			})
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	p, err := r.Get("en-US")
	require.NoError(t, err)
	assert.Equal(t, "en", p.Language())

	p, err = r.Get("fr_CA")
	require.NoError(t, err)
	assert.Equal(t, "fr", p.Language())

	p, err = r.Get("zh")
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", p.Language())

	p, err = r.Get("EN-in")
	require.NoError(t, err)
	assert.Equal(t, "en-IN", p.Language())

	_, err = r.Get("xx")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestRegistryConcurrentFirstUse(t *testing.T) {
	r := NewRegistry()
	const n = 32
	got := make([]Parser, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := r.Get("en")
			if err == nil {
				got[i] = p
			}
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}

func TestResolveDelta(t *testing.T) {
	at, ok := ResolveDelta("-2h", fixedNow)
	require.True(t, ok)
	assert.Equal(t, fixedNow.Add(-2*time.Hour), at)

	at, ok = ResolveDelta("-1Y", fixedNow)
	require.True(t, ok)
	assert.Equal(t, 2023, at.Year())

	_, ok = ResolveDelta("", fixedNow)
	assert.False(t, ok)
	_, ok = ResolveDelta("-3x", fixedNow)
	assert.False(t, ok)
}

func TestUploadTypeString(t *testing.T) {
	assert.Equal(t, "streamed_live", UploadStreamedLive.String())
	assert.Equal(t, "unknown", UploadType(42).String())
}
