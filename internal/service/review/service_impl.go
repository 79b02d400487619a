package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/readlex/readlex-api/internal/domain"
	"github.com/readlex/readlex-api/internal/domain/srs"
	"github.com/readlex/readlex-api/internal/platform/logger"
	"github.com/readlex/readlex-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*reviewService)(nil)

// reviewService implements the Service interface.
type reviewService struct {
	db        *sqlx.DB
	vocab     store.VocabularyStore
	scheduler srs.Service
	params    *srs.Params
	logger    *slog.Logger

	// now supplies the clock; injected so tests run against a fixed instant.
	now func() time.Time
}

// NewService creates a review service. The scheduler and params must agree;
// pass nil params to use the defaults. If logger is nil, the default logger
// is used.
func NewService(
	db *sqlx.DB,
	vocab store.VocabularyStore,
	scheduler srs.Service,
	params *srs.Params,
	logger *slog.Logger,
) Service {
	if db == nil {
		panic("db cannot be nil")
	}
	if vocab == nil {
		panic("vocab cannot be nil")
	}
	if scheduler == nil {
		panic("scheduler cannot be nil")
	}
	if params == nil {
		params = srs.NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewService{
		db:        db,
		vocab:     vocab,
		scheduler: scheduler,
		params:    params,
		logger:    logger.With(slog.String("component", "review_service")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetNextItem implements Service.GetNextItem.
func (s *reviewService) GetNextItem(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.VocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now := s.now()

	items, err := s.vocab.ListDue(ctx, userID, now)
	if err != nil {
		log.Error("failed to list due items",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list due items: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrNoItemsDue
	}

	srs.SortDue(items, now, s.params)
	next := items[0]

	log.Debug("selected next review item",
		slog.String("user_id", userID.String()),
		slog.String("item_id", next.ID.String()),
		slog.Int("priority", s.scheduler.ReviewPriority(next.ReviewState, now)),
		slog.Int("due_items", len(items)))

	return next, nil
}

// SubmitAnswer implements Service.SubmitAnswer.
func (s *reviewService) SubmitAnswer(
	ctx context.Context,
	userID, itemID uuid.UUID,
	quality srs.Quality,
) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Reject out-of-range quality at the boundary; the scheduler never
	// sees it.
	if !quality.Valid() {
		log.Warn("rejected out-of-range quality",
			slog.String("user_id", userID.String()),
			slog.String("item_id", itemID.String()),
			slog.Int("quality", int(quality)))
		return nil, ErrInvalidQuality
	}

	now := s.now()

	var result *Result
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txVocab := s.vocab.WithTx(tx)

		item, err := txVocab.GetByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, store.ErrVocabularyItemNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("failed to get vocabulary item: %w", err)
		}

		if item.UserID != userID {
			log.Warn("user does not own item",
				slog.String("user_id", userID.String()),
				slog.String("item_id", itemID.String()))
			return ErrItemNotOwned
		}

		outcome, err := s.scheduler.CalculateNextReview(item.ReviewState, quality, now)
		if err != nil {
			return fmt.Errorf("failed to calculate next review: %w", err)
		}

		if err := txVocab.UpdateReviewState(ctx, itemID, outcome.State); err != nil {
			return fmt.Errorf("failed to update review state: %w", err)
		}

		item.ReviewState = outcome.State
		result = &Result{Item: item, IsCorrect: outcome.IsCorrect}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("processed review answer",
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
		slog.Int("quality", int(quality)),
		slog.Bool("is_correct", result.IsCorrect),
		slog.Int("interval_days", result.Item.IntervalDays))

	return result, nil
}

// SubmitSimpleAnswer implements Service.SubmitSimpleAnswer.
func (s *reviewService) SubmitSimpleAnswer(
	ctx context.Context,
	userID, itemID uuid.UUID,
	known bool,
) (*Result, error) {
	return s.SubmitAnswer(ctx, userID, itemID, srs.QualityFromKnown(known))
}

// DueCount implements Service.DueCount.
func (s *reviewService) DueCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.vocab.CountDue(ctx, userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to count due items: %w", err)
	}
	return count, nil
}
