// Command seed fills an empty database with demo content for the media page.
//
// Kinds that already hold rows are left alone unless SEED_FORCE=true.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/noorus/mediacms/pkg/content"
	"github.com/noorus/mediacms/pkg/db"
	"github.com/noorus/mediacms/pkg/logger"
)

type config struct {
	Force bool `env:"SEED_FORCE" envDefault:"false"`

	DB  db.Config
	Log logger.Config
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		slog.Error("seed failed", slog.Any("error", fmt.Errorf("parse env: %w", err)))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Log).With("component", "seed")
	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("seed failed", slog.Any("error", err))
		_ = logger.SentryFlush()(context.Background())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, log *slog.Logger) error {
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool, content.Migrations(), cfg.DB.MigrationsTable, log); err != nil {
		return err
	}

	var opts []content.SeedOption
	if cfg.Force {
		opts = append(opts, content.WithForce())
	}

	n, err := content.Seed(ctx, content.NewRepository(pool), content.DefaultDemoData(), opts...)
	if err != nil {
		return err
	}

	log.Info("inserted into database", slog.Int("rows", n))
	return nil
}
