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

	"github.com/hanbitlee/mykorean-backend/internal/adapter/postgres"
	vocabrepo "github.com/hanbitlee/mykorean-backend/internal/adapter/postgres/vocab"
	"github.com/hanbitlee/mykorean-backend/internal/adapter/vocabfile"
	"github.com/hanbitlee/mykorean-backend/internal/config"
	"github.com/hanbitlee/mykorean-backend/internal/service/builder"
	vocabsvc "github.com/hanbitlee/mykorean-backend/internal/service/vocab"
	"github.com/hanbitlee/mykorean-backend/internal/transport/middleware"
	"github.com/hanbitlee/mykorean-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// vocabulary source, builds the services, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("vocab_source", cfg.Vocab.Source),
	)

	var (
		source vocabsvc.Source
		pinger interface{ Ping(context.Context) error }
	)

	switch cfg.Vocab.Source {
	case config.VocabSourcePostgres:
		if err := postgres.Migrate(cfg.Database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect to postgres: %w", err)
		}
		defer pool.Close()

		source = vocabrepo.New(pool)
		pinger = pool
	default:
		source = vocabfile.NewSource(cfg.Vocab.Path)
	}

	loader := vocabsvc.NewService(logger, source)
	vocab, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	builderSvc, err := builder.NewService(logger, vocab)
	if err != nil {
		return fmt.Errorf("create builder service: %w", err)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Sessions: rest.NewSessionHandler(builderSvc, logger),
		Vocab:    rest.NewVocabHandler(builderSvc),
		Health:   rest.NewHealthHandler(pinger, BuildVersion()),
		Limiter:  limiter,
		Logger:   logger,
		Server:   cfg.Server,
		CORS:     cfg.CORS,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
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
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
