package content

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/noorus/mediacms/pkg/db"
)

// DemoData is the set of rows the seeder inserts, in order, per kind.
type DemoData map[Kind][]string

// DefaultDemoData fills every kind with placeholder rows.
// Four intros, so the default intro position exists.
func DefaultDemoData() DemoData {
	return DemoData{
		KindIntro: {
			"Welcome",
			"About the choir",
			"Conductors",
			"Media: recordings, videos and photos from our concerts.",
		},
		KindIframe: {
			`<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ"></iframe>`,
			`<iframe src="https://www.youtube.com/embed/9bZkp7q19f0"></iframe>`,
		},
		KindSection: {
			"<h2>Recordings</h2>",
			"<h2>Gallery</h2>",
		},
	}
}

type seedConfig struct {
	force bool
}

// SeedOption configures Seed.
type SeedOption func(*seedConfig)

// WithForce inserts rows even into kinds that already hold data.
func WithForce() SeedOption {
	return func(c *seedConfig) {
		c.force = true
	}
}

// Seed inserts data in a single transaction and returns the number of rows
// inserted. Kinds that already hold rows are skipped unless WithForce is set.
func Seed(ctx context.Context, repo *Repository, data DemoData, opts ...SeedOption) (int, error) {
	cfg := seedConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	inserted := 0
	err := db.WithTx(ctx, repo.db, func(tx pgx.Tx) error {
		txRepo := NewRepository(tx)
		for _, kind := range Kinds {
			rows := data[kind]
			if len(rows) == 0 {
				continue
			}
			if !cfg.force {
				n, err := txRepo.Count(ctx, kind)
				if err != nil {
					return err
				}
				if n > 0 {
					continue
				}
			}
			for _, c := range rows {
				if _, err := txRepo.Insert(ctx, kind, c); err != nil {
					return err
				}
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
