package locale

import "time"

var german = lexicon{
	tag:     "de",
	decimal: ',',
	groups:  ".",
	magnitudes: []magnitude{
		{"tsd", 1e3}, {"mio", 1e6}, {"mrd", 1e9},
	},
	units: []unit{
		{"sekunde", 's'}, {"minute", 'm'}, {"stunde", 'h'}, {"tag", 'D'},
		{"woche", 'W'}, {"monat", 'M'}, {"jahr", 'Y'},
	},
	months: []monthWord{
		{"jan", time.January}, {"feb", time.February}, {"mär", time.March},
		{"apr", time.April}, {"mai", time.May}, {"jun", time.June},
		{"jul", time.July}, {"aug", time.August}, {"sep", time.September},
		{"okt", time.October}, {"nov", time.November}, {"dez", time.December},
	},
	order: orderDMY,
	none:  []string{"keine"},
	uploads: []uploadRule{
		{"geplant für", UploadScheduled},
		{"premiere am", UploadPremiered},
		{"premiere vor", UploadPremiered},
		{"live seit", UploadStreamingLive},
		{"zuschauer", UploadStreamingLive},
		{"live übertragen", UploadStreamedLive},
		{"gestreamt", UploadStreamedLive},
	},
	today:     []string{"heute"},
	yesterday: []string{"gestern"},
}

var spanish = lexicon{
	tag:     "es",
	decimal: ',',
	groups:  ".",
	magnitudes: []magnitude{
		{"mil m", 1e9}, {"mil", 1e3}, {"m", 1e6},
	},
	units: []unit{
		{"segundo", 's'}, {"minuto", 'm'}, {"hora", 'h'}, {"día", 'D'}, {"dia", 'D'},
		{"semana", 'W'}, {"mes", 'M'}, {"año", 'Y'},
	},
	months: []monthWord{
		{"ene", time.January}, {"feb", time.February}, {"mar", time.March},
		{"abr", time.April}, {"may", time.May}, {"jun", time.June},
		{"jul", time.July}, {"ago", time.August}, {"sep", time.September},
		{"oct", time.October}, {"nov", time.November}, {"dic", time.December},
	},
	order: orderDMY,
	none:  []string{"ninguna", "sin "},
	uploads: []uploadRule{
		{"programado para", UploadScheduled},
		{"se estrenará", UploadScheduled},
		{"estrenado", UploadPremiered},
		{"se estrenó", UploadPremiered},
		{"comenzó a transmitir", UploadStreamingLive},
		{"en vivo ahora", UploadStreamingLive},
		{"transmitido", UploadStreamedLive},
		{"se transmitió", UploadStreamedLive},
	},
	today:     []string{"hoy"},
	yesterday: []string{"ayer"},
}

var french = lexicon{
	tag:     "fr",
	decimal: ',',
	groups:  ".",
	magnitudes: []magnitude{
		{"k", 1e3}, {"m", 1e6}, {"md", 1e9}, {"mrd", 1e9},
	},
	units: []unit{
		{"seconde", 's'}, {"minute", 'm'}, {"heure", 'h'}, {"jour", 'D'},
		{"semaine", 'W'}, {"mois", 'M'}, {"an", 'Y'},
	},
	months: []monthWord{
		{"janv", time.January}, {"févr", time.February}, {"mars", time.March},
		{"avr", time.April}, {"mai", time.May}, {"juin", time.June},
		{"juil", time.July}, {"août", time.August}, {"sept", time.September},
		{"oct", time.October}, {"nov", time.November}, {"déc", time.December},
	},
	order: orderDMY,
	none:  []string{"aucun"},
	uploads: []uploadRule{
		{"prévue le", UploadScheduled},
		{"programmé", UploadScheduled},
		{"première diffusion", UploadPremiered},
		{"diffusé en avant-première", UploadPremiered},
		{"a commencé", UploadStreamingLive},
		{"en direct maintenant", UploadStreamingLive},
		{"diffusé en direct", UploadStreamedLive},
		{"diffusé", UploadStreamedLive},
	},
	today:     []string{"aujourd'hui", "aujourd’hui"},
	yesterday: []string{"hier"},
}

var italian = lexicon{
	tag:     "it",
	decimal: ',',
	groups:  ".",
	magnitudes: []magnitude{
		{"mln", 1e6}, {"mld", 1e9}, {"mila", 1e3}, {"k", 1e3},
	},
	units: []unit{
		{"second", 's'}, {"minut", 'm'}, {"ora", 'h'}, {"ore", 'h'}, {"giorn", 'D'},
		{"settiman", 'W'}, {"mes", 'M'}, {"ann", 'Y'},
	},
	months: []monthWord{
		{"gen", time.January}, {"feb", time.February}, {"mar", time.March},
		{"apr", time.April}, {"mag", time.May}, {"giu", time.June},
		{"lug", time.July}, {"ago", time.August}, {"set", time.September},
		{"ott", time.October}, {"nov", time.November}, {"dic", time.December},
	},
	order: orderDMY,
	none:  []string{"nessun"},
	uploads: []uploadRule{
		{"programmato per", UploadScheduled},
		{"presentato in anteprima", UploadPremiered},
		{"in live streaming da", UploadStreamingLive},
		{"in diretta ora", UploadStreamingLive},
		{"trasmesso in live streaming", UploadStreamedLive},
		{"trasmesso", UploadStreamedLive},
	},
	today:     []string{"oggi"},
	yesterday: []string{"ieri"},
}

var portuguese = lexicon{
	tag:     "pt",
	decimal: ',',
	groups:  ".",
	magnitudes: []magnitude{
		{"mil", 1e3}, {"mi", 1e6}, {"bi", 1e9},
	},
	units: []unit{
		{"segundo", 's'}, {"minuto", 'm'}, {"hora", 'h'}, {"dia", 'D'},
		{"semana", 'W'}, {"mês", 'M'}, {"mes", 'M'}, {"ano", 'Y'},
	},
	months: []monthWord{
		{"jan", time.January}, {"fev", time.February}, {"mar", time.March},
		{"abr", time.April}, {"mai", time.May}, {"jun", time.June},
		{"jul", time.July}, {"ago", time.August}, {"set", time.September},
		{"out", time.October}, {"nov", time.November}, {"dez", time.December},
	},
	order: orderDMY,
	none:  []string{"nenhum", "nenhuma", "sem "},
	uploads: []uploadRule{
		{"programado para", UploadScheduled},
		{"estreia em", UploadScheduled},
		{"estreou", UploadPremiered},
		{"transmissão iniciada", UploadStreamingLive},
		{"ao vivo agora", UploadStreamingLive},
		{"transmitido", UploadStreamedLive},
	},
	today:     []string{"hoje"},
	yesterday: []string{"ontem"},
}

var turkish = lexicon{
	tag:     "tr",
	decimal: ',',
	groups:  ".",
	magnitudes: []magnitude{
		{"b", 1e3}, {"bin", 1e3}, {"mn", 1e6}, {"mr", 1e9}, {"milyar", 1e9}, {"milyon", 1e6},
	},
	units: []unit{
		{"saniye", 's'}, {"dakika", 'm'}, {"saat", 'h'}, {"gün", 'D'},
		{"hafta", 'W'}, {"ay", 'M'}, {"yıl", 'Y'},
	},
	months: []monthWord{
		{"oca", time.January}, {"şub", time.February}, {"mar", time.March},
		{"nis", time.April}, {"may", time.May}, {"haz", time.June},
		{"tem", time.July}, {"ağu", time.August}, {"eyl", time.September},
		{"eki", time.October}, {"kas", time.November}, {"ara", time.December},
	},
	order: orderDMY,
	none:  []string{"hiç"},
	uploads: []uploadRule{
		{"planlandı", UploadScheduled},
		{"gösterim tarihi", UploadPremiered},
		{"canlı yayın başladı", UploadStreamingLive},
		{"şu anda canlı", UploadStreamingLive},
		{"canlı yayınlandı", UploadStreamedLive},
		{"yayınlandı", UploadStreamedLive},
	},
	today:     []string{"bugün"},
	yesterday: []string{"dün"},
}

var russian = lexicon{
	tag:     "ru",
	decimal: ',',
	groups:  "",
	magnitudes: []magnitude{
		{"тыс", 1e3}, {"млн", 1e6}, {"млрд", 1e9},
	},
	units: []unit{
		{"секунд", 's'}, {"минут", 'm'}, {"час", 'h'}, {"дн", 'D'}, {"день", 'D'},
		{"недел", 'W'}, {"месяц", 'M'}, {"год", 'Y'}, {"лет", 'Y'},
	},
	months: []monthWord{
		{"янв", time.January}, {"фев", time.February}, {"мар", time.March},
		{"апр", time.April}, {"мая", time.May}, {"май", time.May}, {"июн", time.June},
		{"июл", time.July}, {"авг", time.August}, {"сен", time.September},
		{"окт", time.October}, {"ноя", time.November}, {"дек", time.December},
	},
	order: orderDMY,
	none:  []string{"нет "},
	uploads: []uploadRule{
		{"запланировано на", UploadScheduled},
		{"премьера состоится", UploadScheduled},
		{"дата премьеры", UploadPremiered},
		{"премьера состоялась", UploadPremiered},
		{"трансляция началась", UploadStreamingLive},
		{"в эфире", UploadStreamingLive},
		{"трансляция закончилась", UploadStreamedLive},
		{"прямой эфир", UploadStreamedLive},
	},
	today:     []string{"сегодня"},
	yesterday: []string{"вчера"},
}
