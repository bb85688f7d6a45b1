// Command cleanup deletes study sessions idle longer than the configured
// retention period, along with their stored artifacts. It is intended to
// be invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hangyeol/codestudy-backend/internal/adapter/postgres"
	sessionrepo "github.com/hangyeol/codestudy-backend/internal/adapter/postgres/session"
	"github.com/hangyeol/codestudy-backend/internal/app"
	"github.com/hangyeol/codestudy-backend/internal/config"
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

	sessions := sessionrepo.New(pool)

	cutoff := time.Now().AddDate(0, 0, -cfg.Session.RetentionDays)

	deleted, err := sessions.DeleteIdleBefore(ctx, cutoff)
	if err != nil {
		logger.Error("session cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("session cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
