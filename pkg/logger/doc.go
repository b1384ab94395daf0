// Package logger builds the slog loggers used across intl.
//
// Loggers write JSON (or text) records and pick up request-scoped values
// through context extractors. The locale and request id stored with
// WithLocale and WithRequestID are added to every record logged with that
// context:
//
//	log := logger.New(logger.Config{}, logger.LocaleExtractor(), logger.RequestIDExtractor())
//	ctx := logger.WithLocale(r.Context(), "de-AT")
//	log.ErrorContext(ctx, "cannot format message", slog.String("id", "greeting"))
//	// {"level":"ERROR","msg":"cannot format message","id":"greeting","locale":"de-AT"}
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a
// DSN is configured and falls back to stdout only otherwise. NewNope
// returns a logger that drops everything; formatters use it when no logger
// is configured.
package logger
