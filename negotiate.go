package intl

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps the part of an Accept-Language header that
// is parsed.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the entry of available that best matches an
// Accept-Language header. Higher q-values win; at equal quality an exact
// tag beats a match on the base language only ("en-US" for "en"). Without
// any match, or for a malformed header, the first available locale is
// returned.
//
//	ParseAcceptLanguage("de-AT,en;q=0.8", []string{"en", "de"}) // "de"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndexByte(header, ','); i > 0 {
			header = header[:i]
		}
	}

	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return available[0]
	}

	best, bestQ, bestExact := "", float32(-1), false
	for _, avail := range available {
		want, err := language.Parse(strings.ReplaceAll(avail, "_", "-"))
		if err != nil {
			continue
		}
		q, exact, ok := matchScore(tags, weights, want)
		if !ok {
			continue
		}
		if q > bestQ || (q == bestQ && exact && !bestExact) {
			best, bestQ, bestExact = avail, q, exact
		}
	}

	if best == "" {
		return available[0]
	}
	return best
}

// matchScore returns the highest weight among the requested tags that
// match want, preferring an exact match at equal weight.
func matchScore(tags []language.Tag, weights []float32, want language.Tag) (q float32, exact, ok bool) {
	wantBase, _ := want.Base()
	for i, tag := range tags {
		isExact := tag == want
		if !isExact {
			if base, conf := tag.Base(); conf == language.No || base != wantBase {
				continue
			}
		}
		if !ok || weights[i] > q || (weights[i] == q && isExact && !exact) {
			q, exact, ok = weights[i], isExact, true
		}
	}
	return q, exact, ok
}

// MatchLocale returns the entry of available that fits the requested
// locale, exactly or by base language, and whether there was one.
func MatchLocale(requested string, available []string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(requested), "_", "-"))
	if err != nil {
		return "", false
	}
	best, bestExact := "", false
	for _, avail := range available {
		want, err := language.Parse(strings.ReplaceAll(avail, "_", "-"))
		if err != nil {
			continue
		}
		_, exact, ok := matchScore([]language.Tag{tag}, []float32{1}, want)
		if ok && (best == "" || exact && !bestExact) {
			best, bestExact = avail, exact
		}
	}
	return best, best != ""
}
