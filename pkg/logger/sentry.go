package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Config holds logger settings loaded from the environment.
type Config struct {
	SentryDSN         string     `env:"SENTRY_DSN"`
	SentryEnvironment string     `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Level             slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	// SentryMinLevel selects which records are stored in Sentry as logs.
	// Errors always create Issues.
	SentryMinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry creates a logger that writes to stdout and, when SentryDSN is set, to Sentry.
// Without a DSN, or if Sentry fails to initialize, only stdout is used.
func NewWithSentry(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	stdoutHandler := jsonHandler(os.Stdout, cfg.Level)

	if cfg.SentryDSN == "" {
		return slog.New(NewContextHandler(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdoutHandler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(stdoutHandler, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.SentryMinLevel),
	}.NewSentryHandler(context.Background())

	combined := fanout{stdoutHandler, sentryHandler}
	return slog.New(NewContextHandler(combined, extractors...))
}

// sentryLogLevels expands a minimum level into the explicit list sentryslog expects.
func sentryLogLevels(minLevel slog.Level) []slog.Level {
	all := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	levels := make([]slog.Level, 0, len(all))
	for _, l := range all {
		if l >= minLevel {
			levels = append(levels, l)
		}
	}
	return levels
}

// SentryFlush returns a shutdown hook that drains buffered Sentry events.
// It is a no-op when Sentry was never initialized.
//
//	mediacms.ShutdownHook(logger.SentryFlush())
func SentryFlush() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		timeout := 2 * time.Second
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		if sentry.CurrentHub().Client() == nil {
			return nil
		}
		if !sentry.Flush(timeout) {
			return ErrSentryFlushTimeout
		}
		return nil
	}
}
