// Package db is the service's PostgreSQL storage adapter.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool]: the pool is opened once at
// startup by [Connect] (with retries), handed explicitly to the repositories
// that need it, and closed by the [Shutdown] hook after the HTTP server stops.
//
// # Configuration
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 5)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 1)
//	DATABASE_HEALTHCHECK_PERIOD - Pool health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection attempts at startup (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//	DATABASE_MIGRATIONS_TABLE   - goose version table (default: schema_migrations)
//
// # Schema
//
// [Migrate] applies embedded goose migrations on startup using the pool
// through [github.com/jackc/pgx/v5/stdlib].
//
// # Transactions
//
// [WithTx] runs a function inside a transaction and rolls back on error or panic:
//
//	err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		_, err := tx.Exec(ctx, "UPDATE iframes SET content = $1 WHERE id = $2", content, id)
//		return err
//	})
//
// Errors are wrapped with [errors.Join] around the sentinels in this package.
package db
