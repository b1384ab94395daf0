package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/middlewares"
	"github.com/dmitrymomot/intl/pkg/catalog"
	"github.com/dmitrymomot/intl/pkg/logger"
)

func newProvider(t *testing.T) *intl.Provider {
	t.Helper()
	p := intl.NewProvider(catalog.New("en", catalog.Messages{
		"en":    {"welcome": "Welcome"},
		"de":    {"welcome": "Willkommen"},
		"de-AT": {"welcome": "Servus"},
		"fr":    {"welcome": "Bienvenue"},
	}))
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func newRouter(p *intl.Provider, opts ...middlewares.LocaleOption) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.Locale(p, opts...))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		i := middlewares.FromContext(r.Context())
		w.Header().Set("X-Log-Locale", logger.Locale(r.Context()))
		_, _ = w.Write([]byte(middlewares.LocaleFromContext(r.Context()) + ":" + i.T("welcome", nil)))
	})
	return r
}

func TestLocale(t *testing.T) {
	t.Parallel()

	p := newProvider(t)

	tests := []struct {
		name     string
		target   string
		cookie   string
		header   string
		expected string
	}{
		{"default locale", "/", "", "", "en:Welcome"},
		{"accept language", "/", "", "fr-CA,de;q=0.5", "fr:Bienvenue"},
		{"accept language exact region", "/", "", "de-AT", "de-AT:Servus"},
		{"cookie beats header", "/", "de", "fr", "de:Willkommen"},
		{"query beats cookie", "/?lang=fr", "de", "", "fr:Bienvenue"},
		{"query matches base language", "/?lang=de-CH", "", "", "de:Willkommen"},
		{"unknown query is ignored", "/?lang=ja", "", "de", "de:Willkommen"},
		{"invalid cookie is ignored", "/", "%%%", "fr", "fr:Bienvenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middlewares.DefaultLocaleCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()

			newRouter(p).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, rec.Body.String())

			locale := rec.Header().Get("Content-Language")
			assert.Equal(t, locale, rec.Header().Get("X-Log-Locale"))
			assert.Contains(t, rec.Header().Values("Vary"), "Accept-Language")
			assert.Empty(t, rec.Result().Cookies())
		})
	}

	t.Run("custom names", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?hl=de", nil)
		req.AddCookie(&http.Cookie{Name: "locale", Value: "fr"})
		rec := httptest.NewRecorder()

		newRouter(p, middlewares.WithLocaleQueryParam(""), middlewares.WithLocaleCookie("locale")).ServeHTTP(rec, req)
		assert.Equal(t, "fr:Bienvenue", rec.Body.String())
	})

	t.Run("remembers the query choice", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?lang=de_at", nil)
		rec := httptest.NewRecorder()

		newRouter(p, middlewares.WithLocaleRemember(time.Hour)).ServeHTTP(rec, req)
		assert.Equal(t, "de-AT:Servus", rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, middlewares.DefaultLocaleCookie, cookies[0].Name)
		assert.Equal(t, "de-AT", cookies[0].Value)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, middlewares.FromContext(req.Context()))
	assert.Empty(t, middlewares.LocaleFromContext(req.Context()))
}
