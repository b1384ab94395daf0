package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/intl/pkg/db"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates the intl_messages table.
func Migrate(ctx context.Context, pool *pgxpool.Pool, table string, log *slog.Logger) error {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	return db.Migrate(ctx, pool, sub, table, log)
}

// PostgresSource reads the intl_messages table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a source over a pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

type messageRow struct {
	Locale    string `db:"locale"`
	MessageID string `db:"message_id"`
	Message   string `db:"message"`
}

func (s *PostgresSource) Load(ctx context.Context) (Messages, error) {
	rows, err := s.pool.Query(ctx, `SELECT locale, message_id, message FROM intl_messages`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying messages: %v", ErrLoadFailed, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[messageRow])
	if err != nil {
		return nil, fmt.Errorf("%w: reading messages: %v", ErrLoadFailed, err)
	}

	set := make(Messages)
	for _, r := range records {
		locale := Canonical(r.Locale)
		if set[locale] == nil {
			set[locale] = make(map[string]string)
		}
		set[locale][r.MessageID] = r.Message
	}
	return set, nil
}

// Save replaces the stored messages of every locale in set in one
// transaction.
func (s *PostgresSource) Save(ctx context.Context, set Messages) error {
	return db.WithTx(ctx, s.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for locale, msgs := range set {
			locale = Canonical(locale)
			batch.Queue(`DELETE FROM intl_messages WHERE locale = $1`, locale)
			for id, msg := range msgs {
				batch.Queue(
					`INSERT INTO intl_messages (locale, message_id, message) VALUES ($1, $2, $3)`,
					locale, id, msg,
				)
			}
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("%w: saving messages: %v", ErrLoadFailed, err)
		}
		return nil
	})
}
