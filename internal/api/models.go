package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/domain"
)

// Common request/response structures

// CreateVocabularyRequest defines the payload for adding one vocabulary item.
type CreateVocabularyRequest struct {
	Word        string `json:"word"        validate:"required,min=1,max=200"`
	Definition  string `json:"definition"  validate:"max=2000"`
	Translation string `json:"translation" validate:"max=2000"`
	Example     string `json:"example"     validate:"max=2000"`
	Source      string `json:"source"      validate:"max=500"`
}

// ReviewRequest defines the payload for a graded 0-5 answer.
// Quality is a pointer so a missing field is distinguishable from 0.
type ReviewRequest struct {
	Quality *int `json:"quality" validate:"required,min=0,max=5"`
}

// SimpleReviewRequest defines the payload for a two-button answer.
type SimpleReviewRequest struct {
	Known *bool `json:"known" validate:"required"`
}

// StartSessionRequest defines the payload for opening a study session.
type StartSessionRequest struct {
	Mode string `json:"mode" validate:"required,oneof=learn review"`
}

// FinishSessionRequest defines the payload for closing a study session.
type FinishSessionRequest struct {
	WordsStudied   int `json:"words_studied"   validate:"min=0"`
	WordsCorrect   int `json:"words_correct"   validate:"min=0"`
	WordsIncorrect int `json:"words_incorrect" validate:"min=0"`
}

// VocabularyItemResponse represents one item with its review state.
type VocabularyItemResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Word               string     `json:"word"`
	Definition         string     `json:"definition,omitempty"`
	Translation        string     `json:"translation,omitempty"`
	Example            string     `json:"example,omitempty"`
	Source             string     `json:"source,omitempty"`
	IntervalDays       int        `json:"interval_days"`
	EaseFactor         float64    `json:"ease_factor"`
	ConsecutiveCorrect int        `json:"consecutive_correct"`
	MasteryLevel       int        `json:"mastery_level"`
	NextReview         *time.Time `json:"next_review,omitempty"`
	LastReviewed       *time.Time `json:"last_reviewed,omitempty"`
	ReviewCount        int        `json:"review_count"`
	CorrectCount       int        `json:"correct_count"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ReviewResultResponse is the outcome of one submitted answer.
type ReviewResultResponse struct {
	Item      VocabularyItemResponse `json:"item"`
	IsCorrect bool                   `json:"is_correct"`
}

// DueCountResponse carries the number of currently due items.
type DueCountResponse struct {
	DueCount int `json:"due_count"`
}

// SessionResponse represents a study session.
type SessionResponse struct {
	ID              uuid.UUID  `json:"id"`
	Mode            string     `json:"mode"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	WordsStudied    int        `json:"words_studied"`
	WordsCorrect    int        `json:"words_correct"`
	WordsIncorrect  int        `json:"words_incorrect"`
	DurationSeconds int        `json:"duration_seconds"`
}

func itemToResponse(item *domain.VocabularyItem) VocabularyItemResponse {
	return VocabularyItemResponse{
		ID:                 item.ID,
		Word:               item.Word,
		Definition:         item.Definition,
		Translation:        item.Translation,
		Example:            item.Example,
		Source:             item.Source,
		IntervalDays:       item.IntervalDays,
		EaseFactor:         item.EaseFactor,
		ConsecutiveCorrect: item.ConsecutiveCorrect,
		MasteryLevel:       item.MasteryLevel,
		NextReview:         item.NextReview,
		LastReviewed:       item.LastReviewed,
		ReviewCount:        item.ReviewCount,
		CorrectCount:       item.CorrectCount,
		CreatedAt:          item.CreatedAt,
	}
}

func sessionToResponse(session *domain.StudySession) SessionResponse {
	return SessionResponse{
		ID:              session.ID,
		Mode:            string(session.Mode),
		StartedAt:       session.StartedAt,
		EndedAt:         session.EndedAt,
		WordsStudied:    session.WordsStudied,
		WordsCorrect:    session.WordsCorrect,
		WordsIncorrect:  session.WordsIncorrect,
		DurationSeconds: session.DurationSeconds,
	}
}
