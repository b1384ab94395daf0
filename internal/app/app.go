// Package app wires configuration, connections and catalog sources into a
// ready Provider for the intlfmt commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/internal/config"
	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/catalog"
	"github.com/dmitrymomot/intl/pkg/db"
	"github.com/dmitrymomot/intl/pkg/health"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/redis"
	"github.com/dmitrymomot/intl/pkg/sanitizer"
)

const flushTimeout = 2 * time.Second

var ErrNoWriter = errors.New("app: catalog source is not writable")

// App owns every long lived dependency of a command.
type App struct {
	Config   config.Config
	Log      *slog.Logger
	Store    *catalog.Store
	Provider *intl.Provider
	Checks   health.Checks

	redis     goredis.UniversalClient
	pool      *pgxpool.Pool
	scheduler *catalog.Scheduler
	closers   []func(context.Context) error
}

// Option configures New.
type Option func(*App)

// WithLogger replaces the logger built from the configuration.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// New connects to the configured backends and loads the catalog. On error
// everything opened so far is closed again.
func New(ctx context.Context, cfg config.Config, opts ...Option) (_ *App, err error) {
	a := &App{Config: cfg, Checks: health.Checks{}}
	for _, opt := range opts {
		opt(a)
	}
	if a.Log == nil {
		a.Log = logger.NewWithSentry(cfg.Log, cfg.Sentry,
			logger.LocaleExtractor(),
			logger.RequestIDExtractor(),
		)
		a.closers = append(a.closers, func(context.Context) error {
			logger.Flush(flushTimeout)
			return nil
		})
	}

	defer func() {
		if err != nil {
			err = errors.Join(err, a.Close(context.WithoutCancel(ctx)))
		}
	}()

	if err := a.connect(ctx); err != nil {
		return nil, err
	}

	sources, err := a.sources()
	if err != nil {
		return nil, err
	}

	a.Store, err = catalog.NewStore(ctx, cfg.Catalog.DefaultLocale, sources,
		catalog.WithStoreLogger(a.Log.With(slog.String("component", "catalog"))),
	)
	if err != nil {
		return nil, err
	}

	intlOpts, err := a.intlOptions()
	if err != nil {
		return nil, err
	}
	a.Provider = intl.NewStoreProvider(a.Store, intlOpts...)
	a.closers = append(a.closers, func(context.Context) error {
		return a.Provider.Close()
	})

	if cfg.Catalog.Reload != "" {
		a.scheduler, err = catalog.NewScheduler(a.Store, cfg.Catalog.Reload, a.Log)
		if err != nil {
			return nil, err
		}
		a.Checks["catalog"] = health.CatalogAge(a.Store.LoadedAt, cfg.Catalog.MaxAge)
	}

	return a, nil
}

func (a *App) connect(ctx context.Context) error {
	cfg := a.Config

	if cfg.RedisURL != "" {
		client, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		a.redis = client
		a.Checks["redis"] = redis.Healthcheck(client)
		a.closers = append(a.closers, func(context.Context) error {
			return client.Close()
		})
	}

	if cfg.Database != nil {
		pool, err := db.Connect(ctx, *cfg.Database)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		a.pool = pool
		a.Checks["postgres"] = db.Healthcheck(pool)
		a.closers = append(a.closers, func(context.Context) error {
			pool.Close()
			return nil
		})

		if err := catalog.Migrate(ctx, pool, cfg.Database.MigrationsTable, a.Log); err != nil {
			return fmt.Errorf("migrating catalog table: %w", err)
		}
	}
	return nil
}

// sources builds the catalog sources in configuration order. An S3 source
// is cached in Redis when Redis is configured.
func (a *App) sources() ([]catalog.Source, error) {
	cfg := a.Config
	sources := make([]catalog.Source, 0, len(cfg.Catalog.Sources))

	for _, name := range cfg.Catalog.Sources {
		switch name {
		case config.SourceFS:
			sources = append(sources, catalog.NewFSSource(os.DirFS(cfg.Catalog.Dir)))

		case config.SourceS3:
			src, err := catalog.NewS3Source(cfg.S3)
			if err != nil {
				return nil, err
			}
			if a.redis == nil {
				sources = append(sources, src)
				continue
			}
			snapshots := cache.NewRedis[catalog.Messages](a.redis, cache.JSON[catalog.Messages]{}, cache.WithPrefix("intl:catalog"))
			key := "s3:" + cfg.S3.Bucket + "/" + cfg.S3.Prefix
			sources = append(sources, catalog.NewCachedSource(src, snapshots, key, cfg.Catalog.CacheTTL))

		case config.SourceRedis:
			sources = append(sources, catalog.NewRedisSource(a.redis, cfg.Catalog.RedisPrefix))

		case config.SourcePostgres:
			sources = append(sources, catalog.NewPostgresSource(a.pool))

		default:
			return nil, fmt.Errorf("%w: unknown catalog source %q", config.ErrInvalidConfig, name)
		}
	}
	return sources, nil
}

func (a *App) intlOptions() ([]intl.Option, error) {
	cfg := a.Config.Intl

	policy, err := sanitizer.Policy(cfg.HTMLPolicy)
	if err != nil {
		return nil, err
	}

	opts := []intl.Option{
		intl.WithState(intl.NewState(
			intl.WithMaxFormatters(cfg.MaxFormatters),
			intl.WithFormatterTTL(cfg.FormatterTTL),
		)),
		intl.WithTimeZone(cfg.TimeZone),
		intl.WithLogger(a.Log),
		intl.WithProduction(cfg.Production),
		intl.WithHTMLPolicy(policy),
	}

	if cfg.FormatsFile != "" {
		formats, err := LoadFormats(cfg.FormatsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, intl.WithFormats(formats))
	}
	return opts, nil
}

// LoadFormats reads named formats from a YAML or JSON file:
//
//	date:
//	  short: {year: numeric, month: short, day: numeric}
//	number:
//	  usd: {style: currency, currency: USD}
func LoadFormats(path string) (intl.Formats, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return intl.Formats{}, fmt.Errorf("reading formats: %w", err)
	}
	var formats intl.Formats
	if err := yaml.Unmarshal(data, &formats); err != nil {
		return intl.Formats{}, fmt.Errorf("decoding formats %q: %w", path, err)
	}
	return formats, nil
}

// Writer returns the backend messages can be synced to.
func (a *App) Writer(name string) (catalog.Writer, error) {
	switch name {
	case config.SourceRedis:
		if a.redis != nil {
			return catalog.NewRedisSource(a.redis, a.Config.Catalog.RedisPrefix), nil
		}
	case config.SourcePostgres:
		if a.pool != nil {
			return catalog.NewPostgresSource(a.pool), nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not configured for writing", ErrNoWriter, name)
}

// Start begins scheduled catalog reloads, if configured.
func (a *App) Start() {
	if a.scheduler != nil {
		a.scheduler.Start()
		a.Log.Info("catalog reloads scheduled",
			slog.String("schedule", a.Config.Catalog.Reload),
			slog.Time("next", a.scheduler.Next()),
		)
	}
}

// Close stops reloads and releases connections in reverse order.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.scheduler != nil {
		errs = append(errs, a.scheduler.Stop(ctx))
	}
	for _, fn := range slices.Backward(a.closers) {
		errs = append(errs, fn(ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}
