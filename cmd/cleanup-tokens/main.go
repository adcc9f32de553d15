// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It reads the same configuration as the server, so it can run as a
// cron job next to the deployed binary.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/echospace/echospace-backend/internal/adapter/postgres"
	"github.com/echospace/echospace-backend/internal/adapter/postgres/token"
	"github.com/echospace/echospace-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	count, err := token.New(pool).DeleteExpired(ctx, time.Now())
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", count)
}
