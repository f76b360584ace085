// Command mediacms serves the media page API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/noorus/mediacms"
	"github.com/noorus/mediacms/handlers"
	"github.com/noorus/mediacms/middlewares"
	"github.com/noorus/mediacms/pkg/content"
	"github.com/noorus/mediacms/pkg/db"
	"github.com/noorus/mediacms/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("mediacms stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor()).With("component", "mediacms")
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if err := db.Migrate(ctx, pool, content.Migrations(), cfg.DB.MigrationsTable, log); err != nil {
		pool.Close()
		return err
	}

	repo := content.NewRepository(pool)
	media := handlers.NewMedia(
		content.NewIntros(repo, cfg.IntroPosition),
		content.NewIframes(repo),
		content.NewSections(repo),
		handlers.WithMountPath(cfg.MountPath),
		handlers.WithUploadOptions(middlewares.WithMaxBodySize(cfg.MaxUploadSize)),
	)

	opts := []mediacms.Option{
		mediacms.WithCustomLogger(log),
		mediacms.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		mediacms.WithErrorHandler(handlers.ErrorHandler),
		mediacms.WithHandlers(media),
		mediacms.WithHealthChecks(
			mediacms.WithReadinessCheck("db", db.Healthcheck(pool)),
		),
	}
	if cfg.StaticDir != "" {
		opts = append(opts, mediacms.WithStaticFiles("/static/", os.DirFS(cfg.StaticDir), "."))
	}

	return mediacms.New(opts...).Run(cfg.Addr,
		mediacms.Logger(log),
		mediacms.ShutdownTimeout(cfg.ShutdownTimeout),
		mediacms.ShutdownHook(db.Shutdown(pool)),
		mediacms.ShutdownHook(logger.SentryFlush()),
	)
}
