// Package relative formats the distance between two instants as localized
// relative time, e.g. "3 hours ago", "in 2 days" or "yesterday".
//
// The unit is either fixed through Options.Units or chosen from a diff
// report using per-formatter thresholds: the smallest unit whose absolute
// value stays under its threshold wins, and years are the last resort.
// In the default "best fit" style the formatter prefers idiomatic phrases
// ("now", "tomorrow", "last month") when the locale has one for the exact
// distance; the "numeric" style always prints a number.
//
//	f, err := relative.New("en", relative.Options{})
//	if err != nil {
//		return err
//	}
//	f.Format(time.Now().Add(-3*time.Hour), time.Now()) // "3 hours ago"
//
// Counts are rendered with pkg/numfmt and pluralized with pkg/plural.
package relative
