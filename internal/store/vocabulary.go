package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/readlex/readlex-api/internal/domain"
)

// VocabularyStore defines the interface for vocabulary item persistence,
// including each item's review state.
type VocabularyStore interface {
	// Create saves a new vocabulary item with its pristine review state.
	// Returns ErrWordExists if the user already studies the word.
	Create(ctx context.Context, item *domain.VocabularyItem) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrVocabularyItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error)

	// ListByUser returns all items a user is studying, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.VocabularyItem, error)

	// ListDue returns the user's items whose next review instant has arrived
	// or passed (or which have never been scheduled), unordered; ranking is
	// the scheduler's job.
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.VocabularyItem, error)

	// CountDue returns how many of the user's items are currently due.
	CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	// UpdateReviewState replaces the review state of an existing item.
	// Returns ErrVocabularyItemNotFound if the item does not exist.
	// Review-state writes must happen in the same transaction as the read
	// that produced the input state; use WithTx for that.
	UpdateReviewState(ctx context.Context, id uuid.UUID, state domain.ReviewState) error

	// Delete removes an item and its review state.
	// Returns ErrVocabularyItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a VocabularyStore bound to the given transaction so a
	// read-modify-write of one item's review state is serialized against
	// concurrent submissions for the same item.
	WithTx(tx *sqlx.Tx) VocabularyStore
}
