package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/api/shared"
	"github.com/readlex/readlex-api/internal/domain/srs"
	"github.com/readlex/readlex-api/internal/platform/logger"
	"github.com/readlex/readlex-api/internal/service/review"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	reviewService review.Service
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService review.Service, logger *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// GetNextItem handles GET /api/review/next requests.
// It returns the highest-priority due item, or 204 when nothing is due.
func (h *ReviewHandler) GetNextItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	item, err := h.reviewService.GetNextItem(r.Context(), userID)
	if errors.Is(err, review.ErrNoItemsDue) {
		log.Debug("no items due for review", slog.String("user_id", userID.String()))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			"Failed to get next review item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// DueCount handles GET /api/review/due-count requests.
func (h *ReviewHandler) DueCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	count, err := h.reviewService.DueCount(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to count due items", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueCountResponse{DueCount: count})
}

// SubmitReview handles POST /api/vocabulary/{id}/review requests.
// The body carries a graded 0-5 quality; out-of-range values are rejected
// before the scheduler runs.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Quality must be between 0 and 5")
		return
	}

	result, err := h.reviewService.SubmitAnswer(r.Context(), userID, itemID, srs.Quality(*req.Quality))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResultResponse{
		Item:      itemToResponse(result.Item),
		IsCorrect: result.IsCorrect,
	})
}

// SubmitSimpleReview handles POST /api/vocabulary/{id}/simple-review requests.
// The two-button known/unknown answer is mapped onto the 0-5 scale.
func (h *ReviewHandler) SubmitSimpleReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid vocabulary item ID")
		return
	}

	var req SimpleReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Known flag is required")
		return
	}

	result, err := h.reviewService.SubmitSimpleAnswer(r.Context(), userID, itemID, *req.Known)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResultResponse{
		Item:      itemToResponse(result.Item),
		IsCorrect: result.IsCorrect,
	})
}
