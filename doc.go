// Package intl formats dates, times, relative times, numbers, plural
// categories and ICU messages for a locale.
//
// The package-level functions take an immutable Config and a State. The
// State memoizes formatter construction, so repeated calls with the same
// locale and options reuse one compiled formatter:
//
//	state := intl.NewState()
//	defer state.Close()
//
//	cfg := intl.Config{
//		Locale:   "de",
//		Messages: map[string]string{"inbox": "Sie haben {count, plural, one {# Nachricht} other {# Nachrichten}}"},
//	}
//	intl.FormatMessage(cfg, state, intl.MessageDescriptor{ID: "inbox"}, intl.Values{"count": 3})
//	// Sie haben 3 Nachrichten
//
// Formatting never fails. Every function falls back to a plain rendition
// of its input and reports the problem to Config.Logger:
//
//   - messages: translated message, then default message, then the id
//   - dates, times and relative times: the date's string form
//   - numbers: the value's string form
//   - plural categories: "other"
//
// # Bound formatters
//
// Intl binds a Config and a State so handlers do not pass them around:
//
//	i := intl.New(intl.WithLocale("fr"), intl.WithTimeZone("Europe/Paris"))
//	i.FormatNumber(1234.5, intl.NumberOptions{}) // 1 234,5
//
// Provider hands out an Intl per locale from a catalog.Catalog or a
// reloadable catalog.Store and negotiates Accept-Language headers.
package intl
