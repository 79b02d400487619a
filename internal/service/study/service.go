// Package study records learn and review sittings: when they start, when
// they finish, and the aggregate answer counters that feed the daily stats
// rollup.
package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/platform/logger"
	"github.com/readlex/readlex-api/internal/store"
)

// Common error types for the study session service
var (
	// ErrSessionNotFound indicates that the study session does not exist.
	ErrSessionNotFound = errors.New("study session not found")

	// ErrSessionNotOwned indicates that the session belongs to a different user.
	ErrSessionNotOwned = errors.New("study session not owned by user")

	// ErrSessionAlreadyFinished indicates a second finish for the same session.
	ErrSessionAlreadyFinished = errors.New("study session already finished")
)

// Service manages the study session lifecycle.
type Service interface {
	// Start opens a new session in the given mode.
	Start(ctx context.Context, userID uuid.UUID, mode domain.SessionMode) (*domain.StudySession, error)

	// Finish closes an open session, recording the answer counters.
	// Returns ErrSessionNotFound, ErrSessionNotOwned or
	// ErrSessionAlreadyFinished on the corresponding contract violations.
	Finish(ctx context.Context, userID, sessionID uuid.UUID, studied, correct, incorrect int) (*domain.StudySession, error)

	// RecentStats returns the user's daily rollup rows, newest first.
	RecentStats(ctx context.Context, userID uuid.UUID, days int) ([]*domain.DailyStats, error)
}

// Verify interface compliance at compile time
var _ Service = (*studyService)(nil)

type studyService struct {
	sessions store.StudySessionStore
	stats    store.DailyStatsStore
	logger   *slog.Logger

	// now supplies the clock; injected so tests run against a fixed instant.
	now func() time.Time
}

// NewService creates a study session service. If logger is nil, the default
// logger is used.
func NewService(
	sessions store.StudySessionStore,
	stats store.DailyStatsStore,
	logger *slog.Logger,
) Service {
	if sessions == nil {
		panic("sessions cannot be nil")
	}
	if stats == nil {
		panic("stats cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &studyService{
		sessions: sessions,
		stats:    stats,
		logger:   logger.With(slog.String("component", "study_service")),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start implements Service.Start.
func (s *studyService) Start(
	ctx context.Context,
	userID uuid.UUID,
	mode domain.SessionMode,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := domain.NewStudySession(userID, mode, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create study session: %w", err)
	}

	log.Debug("started study session",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("mode", string(mode)))

	return session, nil
}

// Finish implements Service.Finish.
func (s *studyService) Finish(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	studied, correct, incorrect int,
) (*domain.StudySession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrStudySessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get study session: %w", err)
	}

	if session.UserID != userID {
		log.Warn("user does not own session",
			slog.String("user_id", userID.String()),
			slog.String("session_id", sessionID.String()))
		return nil, ErrSessionNotOwned
	}

	if err := session.Finish(s.now(), studied, correct, incorrect); err != nil {
		if errors.Is(err, domain.ErrSessionFinished) {
			return nil, ErrSessionAlreadyFinished
		}
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		log.Error("failed to finish study session",
			slog.String("error", err.Error()),
			slog.String("session_id", sessionID.String()))
		return nil, fmt.Errorf("failed to finish study session: %w", err)
	}

	log.Debug("finished study session",
		slog.String("user_id", userID.String()),
		slog.String("session_id", sessionID.String()),
		slog.Int("words_studied", studied),
		slog.Int("duration_seconds", session.DurationSeconds))

	return session, nil
}

// RecentStats implements Service.RecentStats.
func (s *studyService) RecentStats(
	ctx context.Context,
	userID uuid.UUID,
	days int,
) ([]*domain.DailyStats, error) {
	stats, err := s.stats.ListByUser(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}
	return stats, nil
}
