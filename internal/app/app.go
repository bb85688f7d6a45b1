package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hangyeol/codestudy-backend/internal/adapter/postgres"
	artifactrepo "github.com/hangyeol/codestudy-backend/internal/adapter/postgres/artifact"
	sessionrepo "github.com/hangyeol/codestudy-backend/internal/adapter/postgres/session"
	speechadapter "github.com/hangyeol/codestudy-backend/internal/adapter/speech"
	"github.com/hangyeol/codestudy-backend/internal/auth"
	"github.com/hangyeol/codestudy-backend/internal/config"
	"github.com/hangyeol/codestudy-backend/internal/generation"
	sessionservice "github.com/hangyeol/codestudy-backend/internal/service/session"
	speechservice "github.com/hangyeol/codestudy-backend/internal/service/speech"
	"github.com/hangyeol/codestudy-backend/internal/service/study"
	"github.com/hangyeol/codestudy-backend/internal/transport/middleware"
	"github.com/hangyeol/codestudy-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires the services and handlers, and serves HTTP
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	sessions := sessionrepo.New(pool)
	artifacts := artifactrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	tokens := auth.NewTokenManager(cfg.Session.TokenSecret, cfg.Session.TokenIssuer, cfg.Session.TokenTTL)
	generator := generation.NewClient(logger, cfg.Generation)

	studySvc := study.NewService(logger, generator, artifacts)
	sessionSvc := sessionservice.NewService(logger, sessions, txm, tokens, studySvc)

	// Keep the in-memory state table bounded: drop sessions idle past the
	// retention window; a revisit rehydrates from storage.
	retention := time.Duration(cfg.Session.RetentionDays) * 24 * time.Hour
	go studySvc.RunEviction(ctx, cfg.Session.EvictInterval, retention)

	var speechHandler *rest.SpeechHandler
	if cfg.Speech.Enabled {
		synth, err := speechadapter.NewGoogleSynthesizer(ctx, logger, cfg.Speech)
		if err != nil {
			return fmt.Errorf("init speech synthesizer: %w", err)
		}
		defer synth.Close() //nolint:errcheck
		speechSvc := speechservice.NewService(logger, synth, cfg.Speech)
		speechHandler = rest.NewSpeechHandler(speechSvc, logger)
	} else {
		logger.Info("speech synthesis disabled")
	}

	router := rest.NewRouter(
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewSessionHandler(sessionSvc, logger),
		rest.NewContentHandler(studySvc, logger),
		speechHandler,
		middleware.SessionAuth(tokens),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
