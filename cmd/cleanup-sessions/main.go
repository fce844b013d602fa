// Command cleanup-sessions removes never-completed learning sessions
// older than the configured retention window. Intended to run from cron.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wordwell/backend/internal/adapter/postgres"
	sessionrepo "github.com/wordwell/backend/internal/adapter/postgres/session"
	"github.com/wordwell/backend/internal/app"
	"github.com/wordwell/backend/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	flag.Parse()

	if err := run(*dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log).With("cmd", "cleanup-sessions")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	retention := time.Duration(cfg.Study.StaleSessionRetentionDays) * 24 * time.Hour
	threshold := time.Now().Add(-retention)

	repo := sessionrepo.New(pool)

	if dryRun {
		count, err := repo.CountStale(ctx, threshold)
		if err != nil {
			return fmt.Errorf("count stale sessions: %w", err)
		}
		logger.Info("dry run",
			slog.Int64("stale_sessions", count),
			slog.Time("threshold", threshold))
		return nil
	}

	deleted, err := repo.DeleteStale(ctx, threshold)
	if err != nil {
		return fmt.Errorf("delete stale sessions: %w", err)
	}

	logger.Info("cleanup finished",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold))
	return nil
}
