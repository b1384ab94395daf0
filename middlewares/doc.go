// Package middlewares provides net/http middleware for services that format
// output with intl. Every middleware has the func(http.Handler) http.Handler
// shape, so it plugs into chi or any other router.
//
// # Locale
//
// Locale resolves the request locale from the "lang" query parameter, the
// "lang" cookie and the Accept-Language header, in that order, and stores a
// ready *intl.Intl in the request context:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID, middlewares.Recover(log), middlewares.Locale(provider))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		i := middlewares.FromContext(r.Context())
//		fmt.Fprint(w, i.T("welcome", nil))
//	})
//
// The resolved locale is sent back in Content-Language and added to log
// records through logger.LocaleExtractor.
//
// # Request ID
//
// RequestID wraps chi's request id middleware and copies the id into the
// context value read by logger.RequestIDExtractor.
//
// # Recover
//
// Recover turns panics into 500 responses and logs them with a stack trace.
package middlewares
