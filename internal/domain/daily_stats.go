package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyStats is the per-user per-day rollup of finished study sessions.
// Rows are produced by the nightly rollup job; the day field is the
// start-of-day date in UTC.
type DailyStats struct {
	UserID        uuid.UUID `json:"user_id"        db:"user_id"`
	Day           time.Time `json:"day"            db:"day"`
	WordsReviewed int       `json:"words_reviewed" db:"words_reviewed"`
	WordsCorrect  int       `json:"words_correct"  db:"words_correct"`
	Accuracy      float64   `json:"accuracy"       db:"accuracy"`
	StudySeconds  int       `json:"study_seconds"  db:"study_seconds"`
}
