package db

import "errors"

var (
	ErrFailedToParseDBConfig    = errors.New("db: failed to parse connection string")
	ErrFailedToOpenDBConnection = errors.New("db: failed to open connection pool")
	ErrHealthcheckFailed        = errors.New("db: healthcheck failed")
	ErrSetDialect               = errors.New("db: failed to set migration dialect")
	ErrApplyMigrations          = errors.New("db: failed to apply migrations")
)
