package logger

import (
	"context"
	"log/slog"
)

type (
	localeKey    struct{}
	requestIDKey struct{}
)

// WithLocale returns a copy of ctx carrying the resolved locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// Locale returns the locale stored with WithLocale, or "".
func Locale(ctx context.Context) string {
	v, _ := ctx.Value(localeKey{}).(string)
	return v
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored with WithRequestID, or "".
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// LocaleExtractor adds "locale" to records logged with a context from
// WithLocale.
func LocaleExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := Locale(ctx); v != "" {
			return slog.String("locale", v), true
		}
		return slog.Attr{}, false
	}
}

// RequestIDExtractor adds "request_id" to records logged with a context
// from WithRequestID.
func RequestIDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := RequestID(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}
