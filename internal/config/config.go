// Package config reads the intlfmt configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/intl/pkg/catalog"
	"github.com/dmitrymomot/intl/pkg/db"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/sanitizer"
)

// Catalog source names accepted in INTL_CATALOG_SOURCES.
const (
	SourceFS       = "fs"
	SourceS3       = "s3"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Catalog configures where messages come from. Sources are merged in order,
// later ones override earlier ones.
type Catalog struct {
	DefaultLocale string   `env:"INTL_DEFAULT_LOCALE" envDefault:"en"`
	Sources       []string `env:"INTL_CATALOG_SOURCES" envDefault:"fs" envSeparator:","`
	Dir           string   `env:"INTL_CATALOG_DIR" envDefault:"./locales"`
	RedisPrefix   string   `env:"INTL_CATALOG_REDIS_PREFIX" envDefault:"intl:messages"`

	// CacheTTL keeps S3 snapshots in Redis when both are configured.
	CacheTTL time.Duration `env:"INTL_CATALOG_CACHE_TTL" envDefault:"5m"`

	// Reload is a cron expression; empty disables scheduled reloads.
	Reload string        `env:"INTL_CATALOG_RELOAD" envDefault:"*/5 * * * *"`
	MaxAge time.Duration `env:"INTL_CATALOG_MAX_AGE" envDefault:"1h"`
}

// Intl holds the formatting defaults of every request.
type Intl struct {
	TimeZone    string `env:"INTL_TIME_ZONE"`
	FormatsFile string `env:"INTL_FORMATS_FILE"`
	HTMLPolicy  string `env:"INTL_HTML_POLICY" envDefault:"safe"`
	Production  bool   `env:"INTL_PRODUCTION"`

	MaxFormatters int           `env:"INTL_MAX_FORMATTERS" envDefault:"1000"`
	FormatterTTL  time.Duration `env:"INTL_FORMATTER_TTL" envDefault:"1h"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `env:"INTL_HTTP_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"INTL_HTTP_REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"INTL_HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes    int64         `env:"INTL_HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
	LocaleCookieTTL time.Duration `env:"INTL_HTTP_LOCALE_COOKIE_TTL" envDefault:"8760h"`
}

// Config is the complete configuration. Database is parsed only when
// INTL_DATABASE_URL is set or the postgres source is enabled.
type Config struct {
	Log     logger.Config
	Sentry  logger.SentryConfig
	Catalog Catalog
	Intl    Intl
	Server  Server
	S3      catalog.S3Config

	RedisURL string `env:"INTL_REDIS_URL"`
	Database *db.Config `env:"-"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	if _, ok := os.LookupEnv("INTL_DATABASE_URL"); ok || cfg.Uses(SourcePostgres) {
		dbCfg, err := env.ParseAs[db.Config]()
		if err != nil {
			return Config{}, errors.Join(ErrInvalidConfig, err)
		}
		cfg.Database = &dbCfg
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Uses reports whether the named catalog source is enabled.
func (c Config) Uses(source string) bool {
	return slices.Contains(c.Catalog.Sources, source)
}

// Validate checks the values env tags cannot express.
func (c Config) Validate() error {
	var errs []error

	if len(c.Catalog.Sources) == 0 {
		errs = append(errs, errors.New("at least one catalog source is required"))
	}
	for _, name := range c.Catalog.Sources {
		switch name {
		case SourceFS, SourceS3, SourceRedis, SourcePostgres:
		default:
			errs = append(errs, fmt.Errorf("unknown catalog source %q", name))
		}
	}
	if c.Uses(SourceRedis) && c.RedisURL == "" {
		errs = append(errs, errors.New("INTL_REDIS_URL is required by the redis source"))
	}
	if c.Uses(SourceS3) && c.S3.Bucket == "" {
		errs = append(errs, errors.New("INTL_S3_BUCKET is required by the s3 source"))
	}
	if c.Uses(SourcePostgres) && c.Database == nil {
		errs = append(errs, errors.New("INTL_DATABASE_URL is required by the postgres source"))
	}
	if c.Catalog.Reload != "" {
		if _, err := catalog.ParseSchedule(c.Catalog.Reload); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := sanitizer.Policy(c.Intl.HTMLPolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Intl.TimeZone != "" {
		if _, err := time.LoadLocation(c.Intl.TimeZone); err != nil {
			errs = append(errs, fmt.Errorf("INTL_TIME_ZONE: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
