package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/store"
)

// StudySessionStore implements the store.StudySessionStore interface using a
// SQLite database as the storage backend.
type StudySessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStudySessionStore creates a new SQLite implementation of the
// StudySessionStore interface. If logger is nil, the default logger is used.
func NewStudySessionStore(db store.DBTX, logger *slog.Logger) *StudySessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StudySessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_session_store")),
	}
}

// Ensure StudySessionStore implements store.StudySessionStore interface
var _ store.StudySessionStore = (*StudySessionStore)(nil)

const sessionColumns = `id, user_id, mode, started_at, ended_at,
	words_studied, words_correct, words_incorrect, duration_seconds`

// Create implements store.StudySessionStore.Create
func (s *StudySessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES (:id, :user_id, :mode, :started_at, :ended_at,
			:words_studied, :words_correct, :words_incorrect, :duration_seconds)`

	if _, err := s.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create study session: %w", err)
	}

	return nil
}

// GetByID implements store.StudySessionStore.GetByID
func (s *StudySessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	var session domain.StudySession
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = ?`

	if err := s.db.GetContext(ctx, &session, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStudySessionNotFound
		}
		return nil, fmt.Errorf("failed to get study session: %w", err)
	}

	return &session, nil
}

// Update implements store.StudySessionStore.Update
func (s *StudySessionStore) Update(ctx context.Context, session *domain.StudySession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	query := `UPDATE study_sessions SET
			ended_at = ?, words_studied = ?, words_correct = ?,
			words_incorrect = ?, duration_seconds = ?
		WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query,
		session.EndedAt,
		session.WordsStudied,
		session.WordsCorrect,
		session.WordsIncorrect,
		session.DurationSeconds,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update study session: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return store.ErrStudySessionNotFound
	}

	return nil
}

// ListFinishedBetween implements store.StudySessionStore.ListFinishedBetween
func (s *StudySessionStore) ListFinishedBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*domain.StudySession, error) {
	var sessions []*domain.StudySession
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE ended_at IS NOT NULL AND ended_at >= ? AND ended_at < ?`

	if err := s.db.SelectContext(ctx, &sessions, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to list finished study sessions: %w", err)
	}

	return sessions, nil
}

// DailyStatsStore implements the store.DailyStatsStore interface using a
// SQLite database as the storage backend.
type DailyStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewDailyStatsStore creates a new SQLite implementation of the
// DailyStatsStore interface. If logger is nil, the default logger is used.
func NewDailyStatsStore(db store.DBTX, logger *slog.Logger) *DailyStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &DailyStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "daily_stats_store")),
	}
}

// Ensure DailyStatsStore implements store.DailyStatsStore interface
var _ store.DailyStatsStore = (*DailyStatsStore)(nil)

// Upsert implements store.DailyStatsStore.Upsert
func (s *DailyStatsStore) Upsert(ctx context.Context, stats *domain.DailyStats) error {
	query := `INSERT INTO daily_stats
			(user_id, day, words_reviewed, words_correct, accuracy, study_seconds)
		VALUES (:user_id, :day, :words_reviewed, :words_correct, :accuracy, :study_seconds)
		ON CONFLICT (user_id, day) DO UPDATE SET
			words_reviewed = excluded.words_reviewed,
			words_correct = excluded.words_correct,
			accuracy = excluded.accuracy,
			study_seconds = excluded.study_seconds`

	if _, err := s.db.NamedExecContext(ctx, query, stats); err != nil {
		return fmt.Errorf("failed to upsert daily stats: %w", err)
	}

	return nil
}

// ListByUser implements store.DailyStatsStore.ListByUser
func (s *DailyStatsStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	days int,
) ([]*domain.DailyStats, error) {
	var stats []*domain.DailyStats
	query := `SELECT user_id, day, words_reviewed, words_correct, accuracy, study_seconds
		FROM daily_stats WHERE user_id = ? ORDER BY day DESC LIMIT ?`

	if err := s.db.SelectContext(ctx, &stats, query, userID, days); err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}

	return stats, nil
}
