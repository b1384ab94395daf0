package datetime

import (
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// localeData is the subset of CLDR calendar data the formatter needs.
// Weekday arrays start on Sunday to line up with time.Weekday.
type localeData struct {
	monthsLong    [12]string
	monthsShort   [12]string
	monthsNarrow  [12]string
	monthsWithDay [12]string // format context, used next to a day number; empty = monthsLong
	weekdaysLong  [7]string
	weekdaysShort [7]string
	weekdaysNarr  [7]string
	erasLong      [2]string
	erasShort     [2]string
	erasNarrow    [2]string
	dayPeriods    [2]string

	// textual date patterns keyed by the components present:
	// "dmy", "dm", "my", "m".
	textPatterns map[string]string

	weekdayPattern string // {weekday} and {date}
	periodPattern  string // {time} and {period}
	numericOrder   string // "mdy", "dmy" or "ymd"
	numericSep     string
	numericDayEnd  string // appended to a numeric day-month without year
	timeSep        string
	hourSuffix     string // 24h clock, hour shown alone
	dateTimeSep    string
	hour12         bool
	pad24          bool // pad the hour on a 24h clock when minutes follow
	padDate        bool // pad day and month in numeric dates (dd/MM)
}

var english = localeData{
	monthsLong:    [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	monthsShort:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	monthsNarrow:  [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	weekdaysLong:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	weekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	weekdaysNarr:  [7]string{"S", "M", "T", "W", "T", "F", "S"},
	erasLong:      [2]string{"Before Christ", "Anno Domini"},
	erasShort:     [2]string{"BC", "AD"},
	erasNarrow:    [2]string{"B", "A"},
	dayPeriods:    [2]string{"AM", "PM"},
	textPatterns: map[string]string{
		"dmy": "{month} {day}, {year}",
		"dm":  "{month} {day}",
		"my":  "{month} {year}",
		"m":   "{month}",
	},
	weekdayPattern: "{weekday}, {date}",
	periodPattern:  "{time} {period}",
	numericOrder:   "mdy",
	numericSep:     "/",
	timeSep:        ":",
	dateTimeSep:    ", ",
	hour12:         true,
}

var britishEnglish = func() localeData {
	d := english
	d.textPatterns = map[string]string{
		"dmy": "{day} {month} {year}",
		"dm":  "{day} {month}",
		"my":  "{month} {year}",
		"m":   "{month}",
	}
	d.weekdayPattern = "{weekday} {date}"
	d.numericOrder = "dmy"
	d.dayPeriods = [2]string{"am", "pm"}
	d.hour12 = false
	d.pad24 = true
	d.padDate = true
	return d
}()

var german = localeData{
	monthsLong:    [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	monthsShort:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	monthsNarrow:  [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	weekdaysLong:  [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	weekdaysShort: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	weekdaysNarr:  [7]string{"S", "M", "D", "M", "D", "F", "S"},
	erasLong:      [2]string{"v. Chr.", "n. Chr."},
	erasShort:     [2]string{"v. Chr.", "n. Chr."},
	erasNarrow:    [2]string{"v. Chr.", "n. Chr."},
	dayPeriods:    [2]string{"AM", "PM"},
	textPatterns: map[string]string{
		"dmy": "{day}. {month} {year}",
		"dm":  "{day}. {month}",
		"my":  "{month} {year}",
		"m":   "{month}",
	},
	weekdayPattern: "{weekday}, {date}",
	periodPattern:  "{time} {period}",
	numericOrder:   "dmy",
	numericSep:     ".",
	numericDayEnd:  ".",
	timeSep:        ":",
	hourSuffix:     " Uhr",
	dateTimeSep:    ", ",
	pad24:          true,
}

var french = localeData{
	monthsLong:    [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	monthsShort:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	monthsNarrow:  [12]string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	weekdaysLong:  [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	weekdaysShort: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	weekdaysNarr:  [7]string{"D", "L", "M", "M", "J", "V", "S"},
	erasLong:      [2]string{"avant Jésus-Christ", "après Jésus-Christ"},
	erasShort:     [2]string{"av. J.-C.", "ap. J.-C."},
	erasNarrow:    [2]string{"av. J.-C.", "ap. J.-C."},
	dayPeriods:    [2]string{"AM", "PM"},
	textPatterns: map[string]string{
		"dmy": "{day} {month} {year}",
		"dm":  "{day} {month}",
		"my":  "{month} {year}",
		"m":   "{month}",
	},
	weekdayPattern: "{weekday} {date}",
	periodPattern:  "{time} {period}",
	numericOrder:   "dmy",
	numericSep:     "/",
	timeSep:        ":",
	hourSuffix:     " h",
	dateTimeSep:    " ",
	pad24:          true,
	padDate:        true,
}

var spanish = localeData{
	monthsLong:    [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	monthsShort:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	monthsNarrow:  [12]string{"E", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
	weekdaysLong:  [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	weekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	weekdaysNarr:  [7]string{"D", "L", "M", "X", "J", "V", "S"},
	erasLong:      [2]string{"antes de Cristo", "después de Cristo"},
	erasShort:     [2]string{"a. C.", "d. C."},
	erasNarrow:    [2]string{"a. C.", "d. C."},
	dayPeriods:    [2]string{"a. m.", "p. m."},
	textPatterns: map[string]string{
		"dmy": "{day} de {month} de {year}",
		"dm":  "{day} de {month}",
		"my":  "{month} de {year}",
		"m":   "{month}",
	},
	weekdayPattern: "{weekday}, {date}",
	periodPattern:  "{time} {period}",
	numericOrder:   "dmy",
	numericSep:     "/",
	timeSep:        ":",
	dateTimeSep:    ", ",
}

var russian = localeData{
	monthsLong:    [12]string{"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
	monthsShort:   [12]string{"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
	monthsNarrow:  [12]string{"Я", "Ф", "М", "А", "М", "И", "И", "А", "С", "О", "Н", "Д"},
	monthsWithDay: [12]string{"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
	weekdaysLong:  [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
	weekdaysShort: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
	weekdaysNarr:  [7]string{"В", "П", "В", "С", "Ч", "П", "С"},
	erasLong:      [2]string{"до Рождества Христова", "от Рождества Христова"},
	erasShort:     [2]string{"до н. э.", "н. э."},
	erasNarrow:    [2]string{"до н.э.", "н.э."},
	dayPeriods:    [2]string{"AM", "PM"},
	textPatterns: map[string]string{
		"dmy": "{day} {month} {year} г.",
		"dm":  "{day} {month}",
		"my":  "{month} {year} г.",
		"m":   "{month}",
	},
	weekdayPattern: "{weekday}, {date}",
	periodPattern:  "{time} {period}",
	numericOrder:   "dmy",
	numericSep:     ".",
	timeSep:        ":",
	dateTimeSep:    ", ",
	pad24:          true,
	padDate:        true,
}

var japanese = localeData{
	monthsLong:    [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	monthsShort:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
	monthsNarrow:  [12]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
	weekdaysLong:  [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	weekdaysShort: [7]string{"日", "月", "火", "水", "木", "金", "土"},
	weekdaysNarr:  [7]string{"日", "月", "火", "水", "木", "金", "土"},
	erasLong:      [2]string{"紀元前", "西暦"},
	erasShort:     [2]string{"紀元前", "西暦"},
	erasNarrow:    [2]string{"BC", "AD"},
	dayPeriods:    [2]string{"午前", "午後"},
	textPatterns: map[string]string{
		"dmy": "{year}年{month}{day}日",
		"dm":  "{month}{day}日",
		"my":  "{year}年{month}",
		"m":   "{month}",
	},
	weekdayPattern: "{date}{weekday}",
	periodPattern:  "{period}{time}",
	numericOrder:   "ymd",
	numericSep:     "/",
	timeSep:        ":",
	hourSuffix:     "時",
	dateTimeSep:    " ",
}

var locales = map[string]*localeData{
	"en":    &english,
	"en-GB": &britishEnglish,
	"de":    &german,
	"fr":    &french,
	"es":    &spanish,
	"ru":    &russian,
	"ja":    &japanese,
}

// lookupLocale finds data for the tag, trying the full tag, language and
// region, and the base language before falling back to English.
func lookupLocale(tag language.Tag) *localeData {
	if d, ok := locales[tag.String()]; ok {
		return d
	}
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if d, ok := locales[base.String()+"-"+region.String()]; ok {
			return d
		}
	}
	if d, ok := locales[base.String()]; ok {
		return d
	}
	return &english
}

// SupportedLocales lists the locales with dedicated calendar data.
func SupportedLocales() []string {
	return slices.Sorted(maps.Keys(locales))
}
