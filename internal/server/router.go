package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/middlewares"
	"github.com/dmitrymomot/intl/pkg/health"
)

const defaultMaxBodyBytes = 1 << 20

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Provider       *intl.Provider
	Logger         *slog.Logger
	Checks         health.Checks
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	LocaleOptions  []middlewares.LocaleOption
}

// NewRouter mounts the formatting API under /v1 and the probes under
// /health. Every /v1 request is bound to the locale resolved from the
// lang query parameter, the lang cookie or Accept-Language.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	h := &handlers{log: cfg.Logger, provider: cfg.Provider, maxBody: cfg.MaxBodyBytes}

	r := chi.NewRouter()
	r.Use(middlewares.RequestID)
	r.Use(middlewares.Recover(cfg.Logger))
	r.Use(middleware.CleanPath)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(cfg.Checks, health.WithLogger(cfg.Logger)))

	r.Route("/v1", func(r chi.Router) {
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}
		r.Use(middlewares.Locale(cfg.Provider, cfg.LocaleOptions...))

		r.Get("/locales", h.locales)
		r.Get("/messages", h.messages)
		r.Post("/message", h.message)
		r.Post("/html", h.html)
		r.Post("/date", h.date)
		r.Post("/time", h.time)
		r.Post("/relative", h.relative)
		r.Post("/number", h.number)
		r.Post("/plural", h.plural)
	})

	return r
}
