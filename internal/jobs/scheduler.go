package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// rollupAt is the local (UTC) time of day the nightly rollup runs.
const rollupAt = "03:00"

// Scheduler owns the cron loop that triggers background jobs.
type Scheduler struct {
	cron   *gocron.Scheduler
	rollup *RollupJob
	logger *slog.Logger
}

// NewScheduler creates a scheduler that runs the given rollup job nightly.
// If logger is nil, the default logger is used.
func NewScheduler(rollup *RollupJob, logger *slog.Logger) *Scheduler {
	if rollup == nil {
		panic("rollup cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:   gocron.NewScheduler(time.UTC),
		rollup: rollup,
		logger: logger.With(slog.String("component", "job_scheduler")),
	}
}

// Start registers the jobs and begins running them asynchronously.
func (s *Scheduler) Start() error {
	_, err := s.cron.Every(1).Day().At(rollupAt).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.rollup.Run(ctx); err != nil {
			s.logger.Error("daily stats rollup failed",
				slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return err
	}

	s.cron.StartAsync()
	s.logger.Info("job scheduler started", slog.String("rollup_at", rollupAt))
	return nil
}

// Stop halts the cron loop, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("job scheduler stopped")
}
