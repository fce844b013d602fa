// Package app wires configuration, storage, services, and transport
// together and owns the server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/wordwell/backend/internal/adapter/postgres"
	resultrepo "github.com/wordwell/backend/internal/adapter/postgres/result"
	sessionrepo "github.com/wordwell/backend/internal/adapter/postgres/session"
	userrepo "github.com/wordwell/backend/internal/adapter/postgres/user"
	wordrepo "github.com/wordwell/backend/internal/adapter/postgres/word"
	"github.com/wordwell/backend/internal/adapter/provider/translate"
	"github.com/wordwell/backend/internal/auth"
	"github.com/wordwell/backend/internal/config"
	authsvc "github.com/wordwell/backend/internal/service/auth"
	sessionsvc "github.com/wordwell/backend/internal/service/session"
	wordsvc "github.com/wordwell/backend/internal/service/word"
	"github.com/wordwell/backend/internal/transport/middleware"
	"github.com/wordwell/backend/internal/transport/rest"
)

// Run loads configuration, connects to the database, assembles the
// service graph, and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting", slog.String("version", BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	sessions := sessionrepo.New(pool)
	results := resultrepo.New(pool)
	users := userrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)

	provider := translate.New(cfg.Translate)
	var wordService *wordsvc.Service
	if provider != nil {
		wordService = wordsvc.NewService(logger, words, provider)
	} else {
		// A typed nil provider must not reach the service, so the nil
		// interface is passed explicitly.
		wordService = wordsvc.NewService(logger, words, nil)
		logger.Info("translation provider not configured, feature disabled")
	}

	sessionService := sessionsvc.NewService(logger, words, sessions, results, txm)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authService, logger),
		Word:         rest.NewWordHandler(wordService, logger),
		Session:      rest.NewSessionHandler(sessionService, logger),
		Capabilities: rest.NewCapabilitiesHandler(wordService.TranslateAvailable()),
	}, rest.RouterDeps{
		Logger:    logger,
		Validator: authService,
		Limiter:   limiter,
		Server:    cfg.Server,
		CORS:      cfg.CORS,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
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
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
