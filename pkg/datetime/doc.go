// Package datetime formats time values the way Intl.DateTimeFormat does.
//
// A Format is compiled once from a locale and an Options bag naming the
// components to show (weekday, era, year, month, day, hour, minute, second,
// time zone name) and how to show them. When no component is requested the
// formatter shows a numeric date.
//
//	f, err := datetime.New("en-US", datetime.Options{
//		Weekday: datetime.Long,
//		Month:   datetime.Long,
//		Day:     datetime.Numeric,
//		Year:    datetime.Numeric,
//	})
//	if err != nil {
//		return err
//	}
//	f.Format(t) // "Friday, October 16, 2026"
//
// Locale data ships for en, en-GB, de, fr, es, ru and ja. Other locales
// fall back to their base language and then to English; the locale tag is
// still validated, so malformed tags are rejected.
//
// Without a TimeZone option the time is rendered in its own location.
package datetime
