package db

import "time"

// Config holds pool settings. Fields are read from the environment by the
// command line tool.
type Config struct {
	ConnectionString string `env:"INTL_DATABASE_URL,required"`

	MigrationsTable string `env:"INTL_DATABASE_MIGRATIONS_TABLE" envDefault:"intl_schema_migrations"`

	HealthCheckPeriod time.Duration `env:"INTL_DATABASE_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"INTL_DATABASE_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"INTL_DATABASE_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"INTL_DATABASE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"INTL_DATABASE_RETRY_INTERVAL" envDefault:"2s"`

	// Catalog reads are small and infrequent, a handful of connections is enough.
	MaxOpenConns int32 `env:"INTL_DATABASE_MAX_OPEN_CONNS" envDefault:"4"`
	MinConns     int32 `env:"INTL_DATABASE_MIN_CONNS" envDefault:"1"`
}
