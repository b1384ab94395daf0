package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Format is a compiled date/time formatter bound to a locale and options.
// It is immutable and safe for concurrent use.
type Format struct {
	tag  language.Tag
	data *localeData
	loc  *time.Location
	opts Options
	h12  bool
}

// New compiles a formatter. It validates the locale, every option value
// and the time zone name.
func New(locale string, opts Options) (*Format, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	f := &Format{
		tag:  tag,
		data: lookupLocale(tag),
	}

	if opts.TimeZone != "" {
		loc, err := time.LoadLocation(opts.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, opts.TimeZone)
		}
		f.loc = loc
	}

	if !opts.HasDate() && !opts.HasTime() {
		opts.Year = Numeric
		opts.Month = Numeric
		opts.Day = Numeric
	}

	f.h12 = f.data.hour12
	if opts.Hour12 != nil {
		f.h12 = *opts.Hour12
	}

	f.opts = opts
	return f, nil
}

// Format renders t.
func (f *Format) Format(t time.Time) string {
	if f.loc != nil {
		t = t.In(f.loc)
	}

	date := f.formatDate(t)
	clock := f.formatTime(t)

	if zone := f.zoneName(t); zone != "" {
		if clock != "" {
			clock += " " + zone
		} else {
			date += " " + zone
		}
	}

	switch {
	case date == "":
		return clock
	case clock == "":
		return date
	default:
		return date + f.data.dateTimeSep + clock
	}
}

// ResolvedOptions returns the options in effect, including defaults.
func (f *Format) ResolvedOptions() Options {
	o := f.opts
	o.Hour12 = nil
	if o.HasTime() {
		o.Hour12 = Bool(f.h12)
	}
	return o
}

// Locale returns the canonical locale of the formatter.
func (f *Format) Locale() string {
	return f.tag.String()
}

func (f *Format) formatDate(t time.Time) string {
	o := f.opts
	d := f.data

	var date string
	switch o.Month {
	case Narrow, Short, Long:
		date = f.textualDate(t)
	default:
		date = f.numericDate(t)
	}

	if o.Weekday != "" {
		name := weekdayName(d, o.Weekday, t.Weekday())
		if date == "" {
			date = name
		} else {
			date = strings.NewReplacer("{weekday}", name, "{date}", date).Replace(d.weekdayPattern)
		}
	}

	if o.Era != "" {
		era := eraName(d, o.Era, t.Year())
		if date == "" {
			date = era
		} else {
			date += " " + era
		}
	}

	return date
}

func (f *Format) textualDate(t time.Time) string {
	o := f.opts
	d := f.data

	key := "m"
	if o.Day != "" {
		key = "d" + key
	}
	if o.Year != "" {
		key += "y"
	}

	pattern, ok := d.textPatterns[key]
	if !ok {
		pattern = d.textPatterns["m"]
	}

	month := monthName(d, o.Month, t.Month(), o.Day != "")
	return strings.NewReplacer(
		"{day}", numeric(t.Day(), o.Day),
		"{month}", month,
		"{year}", year(t.Year(), o.Year),
	).Replace(pattern)
}

func (f *Format) numericDate(t time.Time) string {
	o := f.opts
	d := f.data

	day, month := o.Day, o.Month
	if d.padDate {
		day, month = twoDigit(day), twoDigit(month)
	}

	parts := make([]string, 0, 3)
	for _, c := range d.numericOrder {
		switch c {
		case 'd':
			if day != "" {
				parts = append(parts, numeric(t.Day(), day))
			}
		case 'm':
			if month != "" {
				parts = append(parts, numeric(int(t.Month()), month))
			}
		case 'y':
			if o.Year != "" {
				parts = append(parts, year(t.Year(), o.Year))
			}
		}
	}

	date := strings.Join(parts, d.numericSep)
	if d.numericDayEnd != "" && o.Year == "" && o.Day != "" && o.Month != "" {
		date += d.numericDayEnd
	}
	return date
}

func (f *Format) formatTime(t time.Time) string {
	o := f.opts
	d := f.data
	if !o.HasTime() {
		return ""
	}

	parts := make([]string, 0, 3)
	if o.Hour != "" {
		h := t.Hour()
		if f.h12 {
			h %= 12
			if h == 0 {
				h = 12
			}
			parts = append(parts, numeric(h, o.Hour))
		} else if (d.pad24 || d.hour12) && (o.Minute != "" || o.Second != "") {
			// 12h locales switch to the HH pattern when forced onto a 24h clock.
			parts = append(parts, pad2(h))
		} else {
			parts = append(parts, numeric(h, o.Hour))
		}
	}
	if o.Minute != "" {
		if o.Hour != "" || o.Second != "" {
			parts = append(parts, pad2(t.Minute()))
		} else {
			parts = append(parts, numeric(t.Minute(), o.Minute))
		}
	}
	if o.Second != "" {
		if o.Hour != "" || o.Minute != "" {
			parts = append(parts, pad2(t.Second()))
		} else {
			parts = append(parts, numeric(t.Second(), o.Second))
		}
	}

	clock := strings.Join(parts, d.timeSep)

	if o.Hour == "" {
		return clock
	}
	if !f.h12 {
		if o.Minute == "" && o.Second == "" {
			clock += d.hourSuffix
		}
		return clock
	}

	period := d.dayPeriods[0]
	if t.Hour() >= 12 {
		period = d.dayPeriods[1]
	}
	return strings.NewReplacer("{time}", clock, "{period}", period).Replace(d.periodPattern)
}

func (f *Format) zoneName(t time.Time) string {
	switch f.opts.TimeZoneName {
	case Short:
		name, offset := t.Zone()
		if name == "" || strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-") {
			return gmtOffset(offset)
		}
		return name
	case Long:
		if name := t.Location().String(); name != "" && name != "Local" {
			return name
		}
		_, offset := t.Zone()
		return gmtOffset(offset)
	}
	return ""
}

func gmtOffset(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	h, m := offset/3600, (offset%3600)/60
	if m == 0 {
		return "GMT" + sign + strconv.Itoa(h)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, h, m)
}

func monthName(d *localeData, width string, m time.Month, withDay bool) string {
	switch width {
	case Narrow:
		return d.monthsNarrow[m-1]
	case Short:
		return d.monthsShort[m-1]
	default:
		if withDay && d.monthsWithDay[m-1] != "" {
			return d.monthsWithDay[m-1]
		}
		return d.monthsLong[m-1]
	}
}

func weekdayName(d *localeData, width string, wd time.Weekday) string {
	switch width {
	case Narrow:
		return d.weekdaysNarr[wd]
	case Short:
		return d.weekdaysShort[wd]
	default:
		return d.weekdaysLong[wd]
	}
}

func eraName(d *localeData, width string, y int) string {
	i := 1
	if y <= 0 {
		i = 0
	}
	switch width {
	case Narrow:
		return d.erasNarrow[i]
	case Long:
		return d.erasLong[i]
	default:
		return d.erasShort[i]
	}
}

func numeric(v int, width string) string {
	if width == TwoDigit {
		return pad2(v)
	}
	return strconv.Itoa(v)
}

// twoDigit widens a numeric width for locales whose short date pattern is
// dd/MM.
func twoDigit(width string) string {
	if width == Numeric {
		return TwoDigit
	}
	return width
}

func year(y int, width string) string {
	if y <= 0 {
		y = 1 - y
	}
	if width == TwoDigit {
		return pad2(y % 100)
	}
	return strconv.Itoa(y)
}

func pad2(v int) string {
	if v < 10 && v >= 0 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
