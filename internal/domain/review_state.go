package domain

import (
	"errors"
	"time"
)

// Default values for a pristine review state.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Common validation errors for ReviewState
var (
	ErrNegativeInterval    = errors.New("interval days must be greater than or equal to 0")
	ErrEaseFactorTooLow    = errors.New("ease factor must be at least 1.3")
	ErrNegativeStreak      = errors.New("consecutive correct count must be greater than or equal to 0")
	ErrInvalidMasteryLevel = errors.New("mastery level must be between 0 and 5")
)

// ReviewState tracks the spaced repetition scheduling state for a single
// vocabulary item. It is created once via NewReviewState and afterwards only
// replaced wholesale with the output of the scheduler; callers never set
// individual fields.
type ReviewState struct {
	IntervalDays       int        `json:"interval_days"       db:"interval_days"`
	EaseFactor         float64    `json:"ease_factor"         db:"ease_factor"`
	ConsecutiveCorrect int        `json:"consecutive_correct" db:"consecutive_correct"`
	MasteryLevel       int        `json:"mastery_level"       db:"mastery_level"`
	NextReview         *time.Time `json:"next_review"         db:"next_review"`
	LastReviewed       *time.Time `json:"last_reviewed"       db:"last_reviewed"`
	ReviewCount        int        `json:"review_count"        db:"review_count"`
	CorrectCount       int        `json:"correct_count"       db:"correct_count"`
}

// NewReviewState returns the pristine state for an item that has never been
// reviewed: interval 0, default ease factor, no streak, no schedule. An item
// in this state is immediately due.
func NewReviewState() ReviewState {
	return ReviewState{
		IntervalDays:       0,
		EaseFactor:         DefaultEaseFactor,
		ConsecutiveCorrect: 0,
		MasteryLevel:       0,
		NextReview:         nil,
		LastReviewed:       nil,
		ReviewCount:        0,
		CorrectCount:       0,
	}
}

// Validate checks the ReviewState invariants.
// Returns an error if any field is out of its documented domain.
func (s ReviewState) Validate() error {
	if s.IntervalDays < 0 {
		return ErrNegativeInterval
	}

	if s.EaseFactor < MinEaseFactor {
		return ErrEaseFactorTooLow
	}

	if s.ConsecutiveCorrect < 0 {
		return ErrNegativeStreak
	}

	if s.MasteryLevel < 0 || s.MasteryLevel > 5 {
		return ErrInvalidMasteryLevel
	}

	return nil
}

// Reviewed reports whether the item has been reviewed at least once.
func (s ReviewState) Reviewed() bool {
	return s.LastReviewed != nil
}
