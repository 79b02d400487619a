// Package jobs runs the background maintenance work: the nightly rollup of
// finished study sessions into per-user daily stats rows.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/store"
)

// RollupJob aggregates the previous day's finished study sessions into the
// daily stats table. The upsert per (user, day) makes reruns idempotent.
type RollupJob struct {
	sessions store.StudySessionStore
	stats    store.DailyStatsStore
	logger   *slog.Logger

	// now supplies the clock; injected so tests run against a fixed instant.
	now func() time.Time
}

// NewRollupJob creates the daily stats rollup job. If logger is nil, the
// default logger is used.
func NewRollupJob(
	sessions store.StudySessionStore,
	stats store.DailyStatsStore,
	logger *slog.Logger,
) *RollupJob {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if stats == nil {
		panic("stats cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RollupJob{
		sessions: sessions,
		stats:    stats,
		logger:   logger.With(slog.String("component", "rollup_job")),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run rolls up the day before the current one.
func (j *RollupJob) Run(ctx context.Context) error {
	now := j.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return j.RunForDay(ctx, today.AddDate(0, 0, -1))
}

// RunForDay rolls up the finished sessions of one UTC day.
func (j *RollupJob) RunForDay(ctx context.Context, day time.Time) error {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	sessions, err := j.sessions.ListFinishedBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to list finished sessions: %w", err)
	}

	rollups := aggregate(sessions, from)
	for _, stats := range rollups {
		if err := j.stats.Upsert(ctx, stats); err != nil {
			return fmt.Errorf("failed to upsert daily stats for user %s: %w", stats.UserID, err)
		}
	}

	j.logger.Info("daily stats rollup complete",
		slog.String("day", from.Format("2006-01-02")),
		slog.Int("sessions", len(sessions)),
		slog.Int("users", len(rollups)))

	return nil
}

// aggregate folds finished sessions into one stats row per user. Output is
// ordered by user ID so reruns write in a stable order.
func aggregate(sessions []*domain.StudySession, day time.Time) []*domain.DailyStats {
	byUser := make(map[uuid.UUID]*domain.DailyStats)

	for _, session := range sessions {
		stats, ok := byUser[session.UserID]
		if !ok {
			stats = &domain.DailyStats{UserID: session.UserID, Day: day}
			byUser[session.UserID] = stats
		}

		stats.WordsReviewed += session.WordsStudied
		stats.WordsCorrect += session.WordsCorrect
		stats.StudySeconds += session.DurationSeconds
	}

	rollups := make([]*domain.DailyStats, 0, len(byUser))
	for _, stats := range byUser {
		if stats.WordsReviewed > 0 {
			stats.Accuracy = float64(stats.WordsCorrect) / float64(stats.WordsReviewed)
		}
		rollups = append(rollups, stats)
	}

	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].UserID.String() < rollups[j].UserID.String()
	})

	return rollups
}
