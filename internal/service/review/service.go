// Package review orchestrates the read-schedule-write cycle for vocabulary
// reviews: it pulls the due queue, ranks it, and applies the scheduler's
// transition inside a transaction for each submitted answer.
package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/domain/srs"
)

// Common error types for the review service
var (
	// ErrNoItemsDue indicates that the user has no vocabulary items due.
	ErrNoItemsDue = errors.New("no vocabulary items due for review")

	// ErrItemNotFound indicates that the vocabulary item does not exist.
	ErrItemNotFound = errors.New("vocabulary item not found")

	// ErrItemNotOwned indicates that the item belongs to a different user.
	ErrItemNotOwned = errors.New("vocabulary item not owned by user")

	// ErrInvalidQuality indicates a quality value outside the 0-5 scale.
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")
)

// Result carries the outcome of one submitted answer: the item with its
// updated review state, and whether the answer counted as correct.
type Result struct {
	Item      *domain.VocabularyItem `json:"item"`
	IsCorrect bool                   `json:"is_correct"`
}

// Service provides the review workflow on top of the pure scheduler.
type Service interface {
	// GetNextItem returns the user's highest-priority due item.
	// Returns ErrNoItemsDue when nothing is due.
	GetNextItem(ctx context.Context, userID uuid.UUID) (*domain.VocabularyItem, error)

	// SubmitAnswer applies a 0-5 quality answer to an item. The read of the
	// current state and the write of the new state happen in one
	// transaction, so concurrent submissions for the same item cannot lose
	// updates. Returns ErrItemNotFound, ErrItemNotOwned or
	// ErrInvalidQuality on the corresponding contract violations.
	SubmitAnswer(ctx context.Context, userID, itemID uuid.UUID, quality srs.Quality) (*Result, error)

	// SubmitSimpleAnswer applies a two-button known/unknown answer by
	// mapping it onto the 0-5 scale and delegating to SubmitAnswer.
	SubmitSimpleAnswer(ctx context.Context, userID, itemID uuid.UUID, known bool) (*Result, error)

	// DueCount returns how many of the user's items are currently due.
	DueCount(ctx context.Context, userID uuid.UUID) (int, error)
}
