package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
)

// StudySessionStore defines the interface for study session persistence.
type StudySessionStore interface {
	// Create saves a new (open) study session.
	Create(ctx context.Context, session *domain.StudySession) error

	// GetByID retrieves a session by its unique ID.
	// Returns ErrStudySessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)

	// Update persists a session's end time and counters.
	// Returns ErrStudySessionNotFound if the session does not exist.
	Update(ctx context.Context, session *domain.StudySession) error

	// ListFinishedBetween returns finished sessions whose end time falls in
	// [from, to), across all users. Used by the daily stats rollup.
	ListFinishedBetween(ctx context.Context, from, to time.Time) ([]*domain.StudySession, error)
}

// DailyStatsStore defines the interface for the per-user per-day rollup rows.
type DailyStatsStore interface {
	// Upsert inserts or replaces the rollup row for (user, day).
	Upsert(ctx context.Context, stats *domain.DailyStats) error

	// ListByUser returns the most recent rollup rows for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, days int) ([]*domain.DailyStats, error)
}
