package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/pkg/logger"
)

// Defaults for LocaleConfig.
const (
	DefaultLocaleParam  = "lang"
	DefaultLocaleCookie = "lang"
)

type intlKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	QueryParam string        // query parameter checked first; empty disables it
	Cookie     string        // cookie checked second; empty disables it
	Remember   bool          // store a locale picked by query parameter in Cookie
	CookieTTL  time.Duration // lifetime of the remembered cookie
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleQueryParam sets the query parameter name.
func WithLocaleQueryParam(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.QueryParam = name
	}
}

// WithLocaleCookie sets the cookie name.
func WithLocaleCookie(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Cookie = name
	}
}

// WithLocaleRemember stores a locale chosen through the query parameter in
// the locale cookie for ttl.
func WithLocaleRemember(ttl time.Duration) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Remember = true
		cfg.CookieTTL = ttl
	}
}

// Locale returns middleware that resolves the request locale against the
// provider's catalog and stores the matching *intl.Intl in the context.
// Values that match no catalog locale are ignored; the Accept-Language
// header decides last and falls back to the default locale.
func Locale(p *intl.Provider, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{
		QueryParam: DefaultLocaleParam,
		Cookie:     DefaultLocaleCookie,
		CookieTTL:  365 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, fromQuery := resolveLocale(r, p, cfg)
			i := p.For(locale)

			if fromQuery && cfg.Remember && cfg.Cookie != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.Cookie,
					Value:    i.Locale(),
					Path:     "/",
					MaxAge:   int(cfg.CookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set("Content-Language", i.Locale())
			w.Header().Add("Vary", "Accept-Language")

			ctx := context.WithValue(r.Context(), intlKey{}, i)
			ctx = logger.WithLocale(ctx, i.Locale())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLocale(r *http.Request, p *intl.Provider, cfg *LocaleConfig) (string, bool) {
	if cfg.QueryParam != "" {
		if v := r.URL.Query().Get(cfg.QueryParam); v != "" {
			if locale, ok := p.Match(v); ok {
				return locale, true
			}
		}
	}
	if cfg.Cookie != "" {
		if c, err := r.Cookie(cfg.Cookie); err == nil {
			if locale, ok := p.Match(c.Value); ok {
				return locale, false
			}
		}
	}
	return p.Negotiate(r.Header.Get("Accept-Language")), false
}

// FromContext returns the *intl.Intl stored by Locale, or nil.
func FromContext(ctx context.Context) *intl.Intl {
	i, _ := ctx.Value(intlKey{}).(*intl.Intl)
	return i
}

// LocaleFromContext returns the locale resolved by Locale, or "".
func LocaleFromContext(ctx context.Context) string {
	if i := FromContext(ctx); i != nil {
		return i.Locale()
	}
	return ""
}
