// Command seeder populates the database with a deterministic demo dataset:
// a fixed user roster, two months of sections with feedback and likes, and
// a month of improvement ideas with likes and comments. Re-running replaces
// the demo content while keeping the roster accounts.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/adapter/postgres/feedback"
	ideastore "github.com/echospace/echospace-backend/internal/adapter/postgres/idea"
	sectionstore "github.com/echospace/echospace-backend/internal/adapter/postgres/section"
	"github.com/echospace/echospace-backend/internal/adapter/postgres/sectionlike"
	userstore "github.com/echospace/echospace-backend/internal/adapter/postgres/user"
	"github.com/echospace/echospace-backend/internal/app"
	"github.com/echospace/echospace-backend/internal/config"
	"github.com/echospace/echospace-backend/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			logger.Error("run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	txm := postgres.NewTxManager(pool)

	pipeline := seed.NewPipeline(
		logger,
		txm,
		userstore.New(pool),
		sectionstore.New(pool),
		feedback.New(pool),
		sectionlike.New(pool),
		ideastore.New(pool),
		ideastore.NewLikeRepo(pool),
		ideastore.NewCommentRepo(pool),
	)

	if err := pipeline.Run(ctx); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed successfully")
}
