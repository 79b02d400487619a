package srs

import (
	"errors"
	"time"

	"github.com/readlex/readlex-api/internal/domain"
)

// Common errors
var (
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
	ErrInvalidState   = errors.New("invalid review state")
)

// Result carries the outcome of a single review transition.
type Result struct {
	// State is the full post-review state, including the new interval,
	// ease factor, mastery level and next-review date.
	State domain.ReviewState

	// IsCorrect reports whether the answer counted as correct (quality >= 3).
	IsCorrect bool
}

// Service defines the scheduling operations. All methods are pure: they read
// their arguments, return new values, and never touch the wall clock - "now"
// is always passed in explicitly so the math is deterministic and testable.
type Service interface {
	// CalculateNextReview computes the post-review state for one answer.
	// Quality outside [0,5] is rejected; so is a state that violates the
	// ReviewState invariants.
	CalculateNextReview(state domain.ReviewState, quality Quality, now time.Time) (Result, error)

	// ReviewPriority scores an item for queue ordering; higher surfaces first.
	ReviewPriority(state domain.ReviewState, now time.Time) int

	// IsDue reports whether the item should be presented for review at now.
	IsDue(state domain.ReviewState, now time.Time) bool
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a new scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// CalculateNextReview implements Service.CalculateNextReview.
func (s *defaultService) CalculateNextReview(
	state domain.ReviewState,
	quality Quality,
	now time.Time,
) (Result, error) {
	if !quality.Valid() {
		return Result{}, ErrInvalidQuality
	}

	if err := state.Validate(); err != nil {
		return Result{}, errors.Join(ErrInvalidState, err)
	}

	newState := calculateNextState(state, quality, now, s.params)

	return Result{
		State:     newState,
		IsCorrect: quality.IsCorrect(),
	}, nil
}

// ReviewPriority implements Service.ReviewPriority.
func (s *defaultService) ReviewPriority(state domain.ReviewState, now time.Time) int {
	return reviewPriority(state.NextReview, state.MasteryLevel, state.LastReviewed, now, s.params)
}

// IsDue implements Service.IsDue.
func (s *defaultService) IsDue(state domain.ReviewState, now time.Time) bool {
	return isDue(state.NextReview, now)
}
