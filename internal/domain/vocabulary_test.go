package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewVocabularyItem(t *testing.T) {
	userID := uuid.New()

	item, err := NewVocabularyItem(userID, "  serendipity ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if item.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, item.UserID)
	}

	if item.Word != "serendipity" {
		t.Errorf("Expected trimmed word, got %q", item.Word)
	}

	if item.ID == uuid.Nil {
		t.Error("Expected non-nil item ID")
	}

	// A fresh item carries the pristine review state.
	if item.IntervalDays != 0 || item.EaseFactor != 2.5 || item.MasteryLevel != 0 {
		t.Errorf("Expected pristine review state, got %+v", item.ReviewState)
	}

	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestNewVocabularyItemValidation(t *testing.T) {
	if _, err := NewVocabularyItem(uuid.Nil, "word"); !errors.Is(err, ErrEmptyVocabUserID) {
		t.Errorf("Expected ErrEmptyVocabUserID, got %v", err)
	}

	if _, err := NewVocabularyItem(uuid.New(), "   "); !errors.Is(err, ErrEmptyVocabWord) {
		t.Errorf("Expected ErrEmptyVocabWord, got %v", err)
	}
}
