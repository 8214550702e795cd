package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	pkgdb "catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"
)

var (
	reset bool
	force bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the catalog with sample genres, authors and books",
	Long: `Applies the schema, then inserts a small sample catalog in one transaction.

Examples:
  seed              # refuses when the catalog already has genres
  seed --reset      # wipes books, authors and genres first
  seed --force      # adds the sample data next to existing rows`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&reset, "reset", false, "Delete existing catalog rows before seeding")
	rootCmd.Flags().BoolVar(&force, "force", false, "Seed even if the catalog is not empty")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}
	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db.Pool); err != nil {
		return err
	}

	summary, err := pkgdb.WithTransactionResult(ctx, db.Pool, func(tx pgx.Tx) (Summary, error) {
		if reset {
			if _, err := tx.Exec(ctx, `TRUNCATE book_genres, books, authors, genres`); err != nil {
				return Summary{}, fmt.Errorf("failed to reset catalog: %w", err)
			}
		} else if !force {
			var existing int
			if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&existing); err != nil {
				return Summary{}, err
			}
			if existing > 0 {
				return Summary{}, fmt.Errorf("catalog already has %d genres; use --reset or --force", existing)
			}
		}
		return Populate(ctx, tx)
	})
	if err != nil {
		return err
	}

	if cfg.Redis.Enabled {
		flushCache(ctx, cfg)
	}

	log.Info().
		Int("genres", summary.Genres).
		Int("authors", summary.Authors).
		Int("books", summary.Books).
		Msg("[SEED] Catalog populated")
	return nil
}

// flushCache drops cached genres and authors so pages reflect the new rows.
func flushCache(ctx context.Context, cfg *config.Config) {
	rc := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	defer rc.Close()

	for _, pattern := range []string{"genre:*", "author:*"} {
		if err := rc.DeletePattern(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("[SEED] Cache flush failed")
		}
	}
}
