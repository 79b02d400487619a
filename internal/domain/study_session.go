package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// SessionMode distinguishes first-time learning from scheduled review.
type SessionMode string

// Possible session modes
const (
	SessionModeLearn  SessionMode = "learn"
	SessionModeReview SessionMode = "review"
)

// Common validation errors for StudySession
var (
	ErrEmptySessionUserID  = errors.New("study session user ID cannot be empty")
	ErrInvalidSessionMode  = errors.New("invalid study session mode")
	ErrNegativeSessionStat = errors.New("study session counters cannot be negative")
	ErrSessionNotFinished  = errors.New("study session has not been finished")
	ErrSessionFinished     = errors.New("study session is already finished")
)

// StudySession records one learn or review sitting: when it started, when it
// ended, and the aggregate answer counters. It is independent of per-item
// scheduling; the scheduler never reads it.
type StudySession struct {
	ID              uuid.UUID   `json:"id"               db:"id"`
	UserID          uuid.UUID   `json:"user_id"          db:"user_id"`
	Mode            SessionMode `json:"mode"             db:"mode"`
	StartedAt       time.Time   `json:"started_at"       db:"started_at"`
	EndedAt         *time.Time  `json:"ended_at"         db:"ended_at"`
	WordsStudied    int         `json:"words_studied"    db:"words_studied"`
	WordsCorrect    int         `json:"words_correct"    db:"words_correct"`
	WordsIncorrect  int         `json:"words_incorrect"  db:"words_incorrect"`
	DurationSeconds int         `json:"duration_seconds" db:"duration_seconds"`
}

// NewStudySession creates a session that starts now.
func NewStudySession(userID uuid.UUID, mode SessionMode, now time.Time) (*StudySession, error) {
	session := &StudySession{
		ID:        uuid.New(),
		UserID:    userID,
		Mode:      mode,
		StartedAt: now,
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
func (s *StudySession) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}

	switch s.Mode {
	case SessionModeLearn, SessionModeReview:
	default:
		return ErrInvalidSessionMode
	}

	if s.WordsStudied < 0 || s.WordsCorrect < 0 || s.WordsIncorrect < 0 || s.DurationSeconds < 0 {
		return ErrNegativeSessionStat
	}

	return nil
}

// Finish closes the session at the given instant, recording the answer
// counters and the elapsed duration. Finishing twice is an error.
func (s *StudySession) Finish(now time.Time, studied, correct, incorrect int) error {
	if s.EndedAt != nil {
		return ErrSessionFinished
	}

	if studied < 0 || correct < 0 || incorrect < 0 {
		return ErrNegativeSessionStat
	}

	ended := now
	s.EndedAt = &ended
	s.WordsStudied = studied
	s.WordsCorrect = correct
	s.WordsIncorrect = incorrect
	s.DurationSeconds = int(now.Sub(s.StartedAt).Seconds())
	if s.DurationSeconds < 0 {
		s.DurationSeconds = 0
	}

	return nil
}

// Finished reports whether the session has been closed.
func (s *StudySession) Finished() bool {
	return s.EndedAt != nil
}
