package api

import (
	"errors"
	"net/http"

	"github.com/readlex/readlex-api/internal/service/review"
	"github.com/readlex/readlex-api/internal/service/study"
	"github.com/readlex/readlex-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authorization errors
	case errors.Is(err, review.ErrItemNotOwned),
		errors.Is(err, study.ErrSessionNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, review.ErrItemNotFound),
		errors.Is(err, study.ErrSessionNotFound),
		errors.Is(err, store.ErrVocabularyItemNotFound),
		errors.Is(err, store.ErrStudySessionNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrWordExists),
		errors.Is(err, study.ErrSessionAlreadyFinished):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, review.ErrInvalidQuality):
		return http.StatusBadRequest

	// Special cases
	case errors.Is(err, review.ErrNoItemsDue):
		return http.StatusNoContent

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, review.ErrItemNotOwned):
		return "You do not own this vocabulary item"

	case errors.Is(err, study.ErrSessionNotOwned):
		return "You do not own this study session"

	case errors.Is(err, review.ErrItemNotFound),
		errors.Is(err, store.ErrVocabularyItemNotFound):
		return "Vocabulary item not found"

	case errors.Is(err, study.ErrSessionNotFound),
		errors.Is(err, store.ErrStudySessionNotFound):
		return "Study session not found"

	case errors.Is(err, store.ErrWordExists):
		return "Word already exists for this user"

	case errors.Is(err, study.ErrSessionAlreadyFinished):
		return "Study session already finished"

	case errors.Is(err, review.ErrInvalidQuality):
		return "Quality must be between 0 and 5"

	// No items due is handled separately with StatusNoContent

	default:
		return "An unexpected error occurred"
	}
}
