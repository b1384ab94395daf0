package relative

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/intl/pkg/plural"
)

type fields struct {
	future   map[string]string
	past     map[string]string
	relative map[int]string
}

type localeData map[string]fields

// forms maps plural categories to patterns: one, other, then optionally
// few and many.
func forms(one, other string, fewMany ...string) map[string]string {
	m := map[string]string{plural.One: one, plural.Other: other}
	if len(fewMany) == 2 {
		m[plural.Few] = fewMany[0]
		m[plural.Many] = fewMany[1]
	}
	return m
}

var english = localeData{
	Second: {
		future:   forms("in {0} second", "in {0} seconds"),
		past:     forms("{0} second ago", "{0} seconds ago"),
		relative: map[int]string{0: "now"},
	},
	Minute: {
		future:   forms("in {0} minute", "in {0} minutes"),
		past:     forms("{0} minute ago", "{0} minutes ago"),
		relative: map[int]string{0: "this minute"},
	},
	Hour: {
		future:   forms("in {0} hour", "in {0} hours"),
		past:     forms("{0} hour ago", "{0} hours ago"),
		relative: map[int]string{0: "this hour"},
	},
	Day: {
		future:   forms("in {0} day", "in {0} days"),
		past:     forms("{0} day ago", "{0} days ago"),
		relative: map[int]string{-1: "yesterday", 0: "today", 1: "tomorrow"},
	},
	Month: {
		future:   forms("in {0} month", "in {0} months"),
		past:     forms("{0} month ago", "{0} months ago"),
		relative: map[int]string{-1: "last month", 0: "this month", 1: "next month"},
	},
	Year: {
		future:   forms("in {0} year", "in {0} years"),
		past:     forms("{0} year ago", "{0} years ago"),
		relative: map[int]string{-1: "last year", 0: "this year", 1: "next year"},
	},
}

var german = localeData{
	Second: {
		future:   forms("in {0} Sekunde", "in {0} Sekunden"),
		past:     forms("vor {0} Sekunde", "vor {0} Sekunden"),
		relative: map[int]string{0: "jetzt"},
	},
	Minute: {
		future:   forms("in {0} Minute", "in {0} Minuten"),
		past:     forms("vor {0} Minute", "vor {0} Minuten"),
		relative: map[int]string{0: "in dieser Minute"},
	},
	Hour: {
		future:   forms("in {0} Stunde", "in {0} Stunden"),
		past:     forms("vor {0} Stunde", "vor {0} Stunden"),
		relative: map[int]string{0: "in dieser Stunde"},
	},
	Day: {
		future:   forms("in {0} Tag", "in {0} Tagen"),
		past:     forms("vor {0} Tag", "vor {0} Tagen"),
		relative: map[int]string{-2: "vorgestern", -1: "gestern", 0: "heute", 1: "morgen", 2: "übermorgen"},
	},
	Month: {
		future:   forms("in {0} Monat", "in {0} Monaten"),
		past:     forms("vor {0} Monat", "vor {0} Monaten"),
		relative: map[int]string{-1: "letzten Monat", 0: "diesen Monat", 1: "nächsten Monat"},
	},
	Year: {
		future:   forms("in {0} Jahr", "in {0} Jahren"),
		past:     forms("vor {0} Jahr", "vor {0} Jahren"),
		relative: map[int]string{-1: "letztes Jahr", 0: "dieses Jahr", 1: "nächstes Jahr"},
	},
}

var french = localeData{
	Second: {
		future:   forms("dans {0} seconde", "dans {0} secondes"),
		past:     forms("il y a {0} seconde", "il y a {0} secondes"),
		relative: map[int]string{0: "maintenant"},
	},
	Minute: {
		future:   forms("dans {0} minute", "dans {0} minutes"),
		past:     forms("il y a {0} minute", "il y a {0} minutes"),
		relative: map[int]string{0: "cette minute-ci"},
	},
	Hour: {
		future:   forms("dans {0} heure", "dans {0} heures"),
		past:     forms("il y a {0} heure", "il y a {0} heures"),
		relative: map[int]string{0: "cette heure-ci"},
	},
	Day: {
		future:   forms("dans {0} jour", "dans {0} jours"),
		past:     forms("il y a {0} jour", "il y a {0} jours"),
		relative: map[int]string{-2: "avant-hier", -1: "hier", 0: "aujourd’hui", 1: "demain", 2: "après-demain"},
	},
	Month: {
		future:   forms("dans {0} mois", "dans {0} mois"),
		past:     forms("il y a {0} mois", "il y a {0} mois"),
		relative: map[int]string{-1: "le mois dernier", 0: "ce mois-ci", 1: "le mois prochain"},
	},
	Year: {
		future:   forms("dans {0} an", "dans {0} ans"),
		past:     forms("il y a {0} an", "il y a {0} ans"),
		relative: map[int]string{-1: "l’année dernière", 0: "cette année", 1: "l’année prochaine"},
	},
}

var spanish = localeData{
	Second: {
		future:   forms("dentro de {0} segundo", "dentro de {0} segundos"),
		past:     forms("hace {0} segundo", "hace {0} segundos"),
		relative: map[int]string{0: "ahora"},
	},
	Minute: {
		future:   forms("dentro de {0} minuto", "dentro de {0} minutos"),
		past:     forms("hace {0} minuto", "hace {0} minutos"),
		relative: map[int]string{0: "este minuto"},
	},
	Hour: {
		future:   forms("dentro de {0} hora", "dentro de {0} horas"),
		past:     forms("hace {0} hora", "hace {0} horas"),
		relative: map[int]string{0: "esta hora"},
	},
	Day: {
		future:   forms("dentro de {0} día", "dentro de {0} días"),
		past:     forms("hace {0} día", "hace {0} días"),
		relative: map[int]string{-2: "anteayer", -1: "ayer", 0: "hoy", 1: "mañana", 2: "pasado mañana"},
	},
	Month: {
		future:   forms("dentro de {0} mes", "dentro de {0} meses"),
		past:     forms("hace {0} mes", "hace {0} meses"),
		relative: map[int]string{-1: "el mes pasado", 0: "este mes", 1: "el próximo mes"},
	},
	Year: {
		future:   forms("dentro de {0} año", "dentro de {0} años"),
		past:     forms("hace {0} año", "hace {0} años"),
		relative: map[int]string{-1: "el año pasado", 0: "este año", 1: "el próximo año"},
	},
}

var russian = localeData{
	Second: {
		future:   forms("через {0} секунду", "через {0} секунды", "через {0} секунды", "через {0} секунд"),
		past:     forms("{0} секунду назад", "{0} секунды назад", "{0} секунды назад", "{0} секунд назад"),
		relative: map[int]string{0: "сейчас"},
	},
	Minute: {
		future:   forms("через {0} минуту", "через {0} минуты", "через {0} минуты", "через {0} минут"),
		past:     forms("{0} минуту назад", "{0} минуты назад", "{0} минуты назад", "{0} минут назад"),
		relative: map[int]string{0: "в эту минуту"},
	},
	Hour: {
		future:   forms("через {0} час", "через {0} часа", "через {0} часа", "через {0} часов"),
		past:     forms("{0} час назад", "{0} часа назад", "{0} часа назад", "{0} часов назад"),
		relative: map[int]string{0: "в этот час"},
	},
	Day: {
		future:   forms("через {0} день", "через {0} дня", "через {0} дня", "через {0} дней"),
		past:     forms("{0} день назад", "{0} дня назад", "{0} дня назад", "{0} дней назад"),
		relative: map[int]string{-2: "позавчера", -1: "вчера", 0: "сегодня", 1: "завтра", 2: "послезавтра"},
	},
	Month: {
		future:   forms("через {0} месяц", "через {0} месяца", "через {0} месяца", "через {0} месяцев"),
		past:     forms("{0} месяц назад", "{0} месяца назад", "{0} месяца назад", "{0} месяцев назад"),
		relative: map[int]string{-1: "в прошлом месяце", 0: "в этом месяце", 1: "в следующем месяце"},
	},
	Year: {
		future:   forms("через {0} год", "через {0} года", "через {0} года", "через {0} лет"),
		past:     forms("{0} год назад", "{0} года назад", "{0} года назад", "{0} лет назад"),
		relative: map[int]string{-1: "в прошлом году", 0: "в этом году", 1: "в следующем году"},
	},
}

var japanese = localeData{
	Second: {
		future:   forms("{0} 秒後", "{0} 秒後"),
		past:     forms("{0} 秒前", "{0} 秒前"),
		relative: map[int]string{0: "今"},
	},
	Minute: {
		future:   forms("{0} 分後", "{0} 分後"),
		past:     forms("{0} 分前", "{0} 分前"),
		relative: map[int]string{0: "1 分以内"},
	},
	Hour: {
		future:   forms("{0} 時間後", "{0} 時間後"),
		past:     forms("{0} 時間前", "{0} 時間前"),
		relative: map[int]string{0: "1 時間以内"},
	},
	Day: {
		future:   forms("{0} 日後", "{0} 日後"),
		past:     forms("{0} 日前", "{0} 日前"),
		relative: map[int]string{-2: "一昨日", -1: "昨日", 0: "今日", 1: "明日", 2: "明後日"},
	},
	Month: {
		future:   forms("{0} か月後", "{0} か月後"),
		past:     forms("{0} か月前", "{0} か月前"),
		relative: map[int]string{-1: "先月", 0: "今月", 1: "来月"},
	},
	Year: {
		future:   forms("{0} 年後", "{0} 年後"),
		past:     forms("{0} 年前", "{0} 年前"),
		relative: map[int]string{-1: "昨年", 0: "今年", 1: "来年"},
	},
}

var locales = map[string]localeData{
	"en": english,
	"de": german,
	"fr": french,
	"es": spanish,
	"ru": russian,
	"ja": japanese,
}

// lookupLocale resolves the base language, falling back to English.
func lookupLocale(tag language.Tag) localeData {
	base, _ := tag.Base()
	if d, ok := locales[base.String()]; ok {
		return d
	}
	return english
}
