package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/readlex/readlex-api/internal/domain"
)

func TestServiceRejectsInvalidQuality(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Now().UTC()

	for _, q := range []Quality{-1, 6, 42} {
		_, err := svc.CalculateNextReview(domain.NewReviewState(), q, now)
		if !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("quality %d: expected ErrInvalidQuality, got %v", q, err)
		}
	}
}

func TestServiceRejectsInvalidState(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Now().UTC()

	state := domain.NewReviewState()
	state.IntervalDays = -3

	_, err := svc.CalculateNextReview(state, QualityGood, now)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestServiceFirstAndSecondReview(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC)

	first, err := svc.CalculateNextReview(domain.NewReviewState(), QualityGood, now)
	if err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if first.State.IntervalDays != 1 {
		t.Errorf("expected first interval 1, got %d", first.State.IntervalDays)
	}
	if !first.IsCorrect {
		t.Error("quality 4 must count as correct")
	}

	second, err := svc.CalculateNextReview(first.State, QualityGood, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("second review failed: %v", err)
	}
	if second.State.IntervalDays != 6 {
		t.Errorf("expected second interval 6, got %d", second.State.IntervalDays)
	}
}

func TestServiceFailureIsNotCorrect(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Now().UTC()

	res, err := svc.CalculateNextReview(domain.NewReviewState(), QualityIncorrect, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsCorrect {
		t.Error("quality 1 must not count as correct")
	}
	if res.State.IntervalDays != 1 {
		t.Errorf("expected interval 1, got %d", res.State.IntervalDays)
	}
}

func TestQualityFromKnown(t *testing.T) {
	t.Parallel()

	if got := QualityFromKnown(true); got != QualityGood {
		t.Errorf("known press: expected quality 4, got %d", got)
	}
	if got := QualityFromKnown(false); got != QualityIncorrect {
		t.Errorf("unknown press: expected quality 1, got %d", got)
	}
}

func TestQualityValid(t *testing.T) {
	t.Parallel()

	for q := QualityBlackout; q <= QualityPerfect; q++ {
		if !q.Valid() {
			t.Errorf("quality %d should be valid", q)
		}
	}
	for _, q := range []Quality{-1, 6} {
		if q.Valid() {
			t.Errorf("quality %d should be invalid", q)
		}
	}
}
