// Package main implements the entry point for the readlex API server,
// which owns users' vocabulary, the spaced repetition schedule, and study
// session tracking.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/readlex/readlex-api/internal/api"
	"github.com/readlex/readlex-api/internal/config"
	"github.com/readlex/readlex-api/internal/domain/srs"
	"github.com/readlex/readlex-api/internal/importer"
	"github.com/readlex/readlex-api/internal/jobs"
	"github.com/readlex/readlex-api/internal/platform/logger"
	"github.com/readlex/readlex-api/internal/platform/sqlite"
	"github.com/readlex/readlex-api/internal/service/review"
	"github.com/readlex/readlex-api/internal/service/study"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_path", cfg.Database.Path),
		slog.Bool("rollup_enabled", cfg.Jobs.RollupEnabled))

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			appLogger.Error("failed to close database", slog.String("error", cerr.Error()))
		}
	}()

	if err := sqlite.Migrate(db); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	vocab := sqlite.NewVocabularyStore(db, appLogger)
	sessions := sqlite.NewStudySessionStore(db, appLogger)
	stats := sqlite.NewDailyStatsStore(db, appLogger)

	params := srs.NewDefaultParams()
	scheduler := srs.NewServiceWithParams(params)

	reviewService := review.NewService(db, vocab, scheduler, params, appLogger)
	studyService := study.NewService(sessions, stats, appLogger)

	router := api.NewRouter(
		api.NewVocabularyHandler(vocab, importer.New(vocab, appLogger), appLogger),
		api.NewReviewHandler(reviewService, appLogger),
		api.NewSessionHandler(studyService, appLogger),
	)

	var jobScheduler *jobs.Scheduler
	if cfg.Jobs.RollupEnabled {
		jobScheduler = jobs.NewScheduler(jobs.NewRollupJob(sessions, stats, appLogger), appLogger)
		if err := jobScheduler.Start(); err != nil {
			return fmt.Errorf("failed to start job scheduler: %w", err)
		}
		defer jobScheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		appLogger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}
