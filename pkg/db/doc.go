// Package db connects to PostgreSQL for the database-backed message
// catalog.
//
// [Connect] opens a pgx pool from [Config] and pings it, retrying while the
// server comes up. [Migrate] applies goose migrations from an embedded
// filesystem through the pgx stdlib bridge, and [WithTx] runs a function in
// a transaction that is rolled back on error or panic.
//
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := db.Migrate(ctx, pool, migrations, "intl_schema_migrations", logger); err != nil {
//		return err
//	}
package db
