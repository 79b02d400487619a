package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/store"
)

// VocabularyStore implements the store.VocabularyStore interface using a
// SQLite database as the storage backend.
type VocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVocabularyStore creates a new SQLite implementation of the
// VocabularyStore interface. If logger is nil, the default logger is used.
func NewVocabularyStore(db store.DBTX, logger *slog.Logger) *VocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &VocabularyStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure VocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*VocabularyStore)(nil)

const vocabularyColumns = `id, user_id, word, definition, translation, example, source,
	interval_days, ease_factor, consecutive_correct, mastery_level,
	next_review, last_reviewed, review_count, correct_count, created_at, updated_at`

// Create implements store.VocabularyStore.Create
func (s *VocabularyStore) Create(ctx context.Context, item *domain.VocabularyItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO vocabulary_items (` + vocabularyColumns + `)
		VALUES (:id, :user_id, :word, :definition, :translation, :example, :source,
			:interval_days, :ease_factor, :consecutive_correct, :mastery_level,
			:next_review, :last_reviewed, :review_count, :correct_count, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, query, item); err != nil {
		if isUniqueViolation(err) {
			return store.ErrWordExists
		}
		return fmt.Errorf("failed to create vocabulary item: %w", err)
	}

	return nil
}

// GetByID implements store.VocabularyStore.GetByID
func (s *VocabularyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyItem, error) {
	var item domain.VocabularyItem
	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary_items WHERE id = ?`

	if err := s.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVocabularyItemNotFound
		}
		return nil, fmt.Errorf("failed to get vocabulary item: %w", err)
	}

	return &item, nil
}

// ListByUser implements store.VocabularyStore.ListByUser
func (s *VocabularyStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.VocabularyItem, error) {
	var items []*domain.VocabularyItem
	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary_items
		WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`

	if err := s.db.SelectContext(ctx, &items, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list vocabulary items: %w", err)
	}

	return items, nil
}

// ListDue implements store.VocabularyStore.ListDue
func (s *VocabularyStore) ListDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) ([]*domain.VocabularyItem, error) {
	var items []*domain.VocabularyItem
	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary_items
		WHERE user_id = ? AND (next_review IS NULL OR next_review <= ?)`

	if err := s.db.SelectContext(ctx, &items, query, userID, now); err != nil {
		return nil, fmt.Errorf("failed to list due vocabulary items: %w", err)
	}

	return items, nil
}

// CountDue implements store.VocabularyStore.CountDue
func (s *VocabularyStore) CountDue(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM vocabulary_items
		WHERE user_id = ? AND (next_review IS NULL OR next_review <= ?)`

	if err := s.db.GetContext(ctx, &count, query, userID, now); err != nil {
		return 0, fmt.Errorf("failed to count due vocabulary items: %w", err)
	}

	return count, nil
}

// UpdateReviewState implements store.VocabularyStore.UpdateReviewState
func (s *VocabularyStore) UpdateReviewState(
	ctx context.Context,
	id uuid.UUID,
	state domain.ReviewState,
) error {
	if err := state.Validate(); err != nil {
		return err
	}

	query := `UPDATE vocabulary_items SET
			interval_days = ?, ease_factor = ?, consecutive_correct = ?,
			mastery_level = ?, next_review = ?, last_reviewed = ?,
			review_count = ?, correct_count = ?, updated_at = ?
		WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query,
		state.IntervalDays,
		state.EaseFactor,
		state.ConsecutiveCorrect,
		state.MasteryLevel,
		state.NextReview,
		state.LastReviewed,
		state.ReviewCount,
		state.CorrectCount,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update review state: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return store.ErrVocabularyItemNotFound
	}

	return nil
}

// Delete implements store.VocabularyStore.Delete
func (s *VocabularyStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vocabulary_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vocabulary item: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return store.ErrVocabularyItemNotFound
	}

	return nil
}

// WithTx implements store.VocabularyStore.WithTx
func (s *VocabularyStore) WithTx(tx *sqlx.Tx) store.VocabularyStore {
	return &VocabularyStore{
		db:     tx,
		logger: s.logger,
	}
}
