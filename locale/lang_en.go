package locale

import "time"

var englishMonths = []monthWord{
	{"jan", time.January}, {"feb", time.February}, {"mar", time.March},
	{"apr", time.April}, {"may", time.May}, {"jun", time.June},
	{"jul", time.July}, {"aug", time.August}, {"sep", time.September},
	{"oct", time.October}, {"nov", time.November}, {"dec", time.December},
}

var englishUnits = []unit{
	{"second", 's'}, {"sec", 's'},
	{"minute", 'm'}, {"min", 'm'},
	{"hour", 'h'},
	{"day", 'D'},
	{"week", 'W'},
	{"month", 'M'},
	{"year", 'Y'},
}

var english = lexicon{
	tag:     "en",
	decimal: '.',
	groups:  ",",
	magnitudes: []magnitude{
		{"k", 1e3}, {"m", 1e6}, {"b", 1e9},
		{"thousand", 1e3}, {"million", 1e6}, {"billion", 1e9},
	},
	units:  englishUnits,
	ago:    []string{"ago"},
	months: englishMonths,
	order:  orderMDY,
	none:   []string{"no views", "no likes", "no subscribers", "no videos", "no comments", "no "},
	uploads: []uploadRule{
		{"premieres", UploadScheduled},
		{"scheduled for", UploadScheduled},
		{"premiered", UploadPremiered},
		{"started streaming", UploadStreamingLive},
		{"streaming now", UploadStreamingLive},
		{"watching now", UploadStreamingLive},
		{"streamed live", UploadStreamedLive},
		{"streamed", UploadStreamedLive},
	},
	today:     []string{"today"},
	yesterday: []string{"yesterday"},
}

// englishIndia is English as rendered for India, which groups large
// numbers in lakhs and crores.
var englishIndia = func() lexicon {
	l := english
	l.tag = "en-IN"
	l.order = orderDMY
	l.magnitudes = []magnitude{
		{"k", 1e3}, {"thousand", 1e3},
		{"lakh", 1e5}, {"lac", 1e5},
		{"crore", 1e7}, {"cr", 1e7},
		{"m", 1e6}, {"b", 1e9},
	}
	return l
}()
