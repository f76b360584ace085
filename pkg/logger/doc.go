// Package logger builds the service's structured loggers on top of log/slog.
//
// Every logger writes JSON to stdout. Context extractors add request-scoped
// attributes (the request id set by middlewares.RequestID) to each record at
// log time, so handlers only pass the request context:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "iframe deleted", slog.Int("id", 3))
//	// {"level":"INFO","msg":"iframe deleted","id":3,"request_id":"..."}
//
// # Sentry
//
// NewWithSentry fans records out to Sentry when SENTRY_DSN is set. Error
// records create Issues; records at or above SENTRY_MIN_LEVEL are stored as
// Sentry logs. Without a DSN it behaves like New, so the same code path runs
// in development. Register SentryFlush as a shutdown hook so buffered events
// are delivered before the process exits.
//
// # Configuration
//
//	LOG_LEVEL          - minimum stdout level (default: INFO)
//	SENTRY_DSN         - enables Sentry when set
//	SENTRY_ENVIRONMENT - Sentry environment tag (default: production)
//	SENTRY_MIN_LEVEL   - minimum level stored as Sentry logs (default: WARN)
package logger
