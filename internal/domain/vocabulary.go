package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for VocabularyItem
var (
	ErrEmptyVocabUserID = errors.New("vocabulary item user ID cannot be empty")
	ErrEmptyVocabWord   = errors.New("vocabulary item word cannot be empty")
)

// VocabularyItem is a word a user is studying, together with its spaced
// repetition state. Items are unique per (user, word).
type VocabularyItem struct {
	ID          uuid.UUID `json:"id"          db:"id"`
	UserID      uuid.UUID `json:"user_id"     db:"user_id"`
	Word        string    `json:"word"        db:"word"`
	Definition  string    `json:"definition"  db:"definition"`
	Translation string    `json:"translation" db:"translation"`
	Example     string    `json:"example"     db:"example"`
	Source      string    `json:"source"      db:"source"`
	ReviewState
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewVocabularyItem creates a vocabulary item with a pristine review state.
// This is the only way review state originates; every later state is derived
// through the scheduler.
func NewVocabularyItem(userID uuid.UUID, word string) (*VocabularyItem, error) {
	now := time.Now().UTC()
	item := &VocabularyItem{
		ID:          uuid.New(),
		UserID:      userID,
		Word:        strings.TrimSpace(word),
		ReviewState: NewReviewState(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the VocabularyItem has valid data.
func (v *VocabularyItem) Validate() error {
	if v.UserID == uuid.Nil {
		return ErrEmptyVocabUserID
	}

	if strings.TrimSpace(v.Word) == "" {
		return ErrEmptyVocabWord
	}

	return v.ReviewState.Validate()
}
