package locale

import "time"

var japanese = lexicon{
	tag:     "ja",
	decimal: '.',
	groups:  ",",
	compact: true,
	magnitudes: []magnitude{
		{"千", 1e3}, {"万", 1e4}, {"億", 1e8},
	},
	units: []unit{
		{"秒", 's'}, {"分", 'm'}, {"時間", 'h'}, {"日", 'D'},
		{"週間", 'W'}, {"か月", 'M'}, {"ヶ月", 'M'}, {"年", 'Y'},
	},
	ago:   []string{"前"},
	order: orderYMD,
	none:  []string{"なし", "ありません"},
	uploads: []uploadRule{
		{"公開予定", UploadScheduled},
		{"プレミア公開", UploadPremiered},
		{"ライブ配信開始", UploadStreamingLive},
		{"視聴中", UploadStreamingLive},
		{"ライブ配信済み", UploadStreamedLive},
		{"配信済み", UploadStreamedLive},
	},
	today:     []string{"今日"},
	yesterday: []string{"昨日"},
}

// korean writes "3일 전" with the unit glued to the number, but prefixes
// such as "최초" contain unit characters, so units carry the trailing word.
var korean = lexicon{
	tag:     "ko",
	decimal: '.',
	groups:  ",",
	compact: true,
	magnitudes: []magnitude{
		{"천", 1e3}, {"만", 1e4}, {"억", 1e8},
	},
	units: []unit{
		{"초 전", 's'}, {"분 전", 'm'}, {"시간 전", 'h'}, {"일 전", 'D'},
		{"주 전", 'W'}, {"개월 전", 'M'}, {"년 전", 'Y'},
	},
	ago:   []string{"전"},
	order: orderYMD,
	none:  []string{"없음"},
	uploads: []uploadRule{
		{"최초 공개 예정", UploadScheduled},
		{"예정일", UploadScheduled},
		{"최초 공개", UploadPremiered},
		{"스트리밍 시작", UploadStreamingLive},
		{"시청 중", UploadStreamingLive},
		{"스트리밍 시간", UploadStreamedLive},
	},
	today:     []string{"오늘"},
	yesterday: []string{"어제"},
}

var chinese = lexicon{
	tag:     "zh-CN",
	decimal: '.',
	groups:  ",",
	compact: true,
	magnitudes: []magnitude{
		{"千", 1e3}, {"万", 1e4}, {"亿", 1e8},
	},
	units: []unit{
		{"秒", 's'}, {"分钟", 'm'}, {"小时", 'h'}, {"天", 'D'},
		{"周", 'W'}, {"个月", 'M'}, {"年", 'Y'},
	},
	ago:   []string{"前"},
	order: orderYMD,
	none:  []string{"无", "没有"},
	uploads: []uploadRule{
		{"预定发布时间", UploadScheduled},
		{"首播时间", UploadPremiered},
		{"首播于", UploadPremiered},
		{"开始直播", UploadStreamingLive},
		{"正在观看", UploadStreamingLive},
		{"直播时间", UploadStreamedLive},
		{"直播于", UploadStreamedLive},
	},
	today:     []string{"今天"},
	yesterday: []string{"昨天"},
}

var hindi = lexicon{
	tag:     "hi",
	decimal: '.',
	groups:  ",",
	magnitudes: []magnitude{
		{"हज़ार", 1e3}, {"हजार", 1e3},
		{"लाख", 1e5},
		{"करोड़", 1e7}, {"क", 1e7},
		{"अरब", 1e9},
	},
	units: []unit{
		{"सेकंड", 's'}, {"मिनट", 'm'}, {"घंटा", 'h'}, {"घंटे", 'h'},
		{"दिन", 'D'}, {"सप्ताह", 'W'}, {"हफ़्ते", 'W'}, {"हफ्ते", 'W'},
		{"महीना", 'M'}, {"महीने", 'M'}, {"वर्ष", 'Y'}, {"साल", 'Y'},
	},
	months: []monthWord{
		{"जन", time.January}, {"फ़र", time.February}, {"फर", time.February},
		{"मार्च", time.March}, {"अप्रैल", time.April}, {"मई", time.May},
		{"जून", time.June}, {"जुल", time.July}, {"अग", time.August},
		{"सित", time.September}, {"अक्तू", time.October}, {"अक्टू", time.October},
		{"नव", time.November}, {"दिस", time.December},
	},
	order: orderDMY,
	none:  []string{"कोई"},
	uploads: []uploadRule{
		{"शेड्यूल", UploadScheduled},
		{"प्रीमियर होगा", UploadScheduled},
		{"प्रीमियर", UploadPremiered},
		{"स्ट्रीमिंग शुरू", UploadStreamingLive},
		{"लाइव स्ट्रीम किया", UploadStreamedLive},
		{"स्ट्रीम किया", UploadStreamedLive},
	},
	today:     []string{"आज"},
	yesterday: []string{"कल"},
}
