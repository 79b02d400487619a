package srs

import (
	"math"
	"testing"
	"time"

	"github.com/readlex/readlex-api/internal/domain"
)

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		quality  Quality
		expected float64
	}{
		{
			name:     "perfect answer increases ease",
			current:  2.5,
			quality:  QualityPerfect,
			expected: 2.6, // 2.5 + 0.1
		},
		{
			name:     "good answer leaves ease unchanged",
			current:  2.5,
			quality:  QualityGood,
			expected: 2.5, // 0.1 - 1*(0.08+0.02) = 0
		},
		{
			name:     "bare pass decreases ease",
			current:  2.5,
			quality:  QualityHard,
			expected: 2.36, // 0.1 - 2*(0.08+0.04) = -0.14
		},
		{
			name:     "familiar failure decreases ease more",
			current:  2.5,
			quality:  QualityFamiliar,
			expected: 2.18, // 0.1 - 3*(0.08+0.06) = -0.32
		},
		{
			name:     "blackout decreases ease the most",
			current:  2.5,
			quality:  QualityBlackout,
			expected: 1.7, // 0.1 - 5*(0.08+0.10) = -0.8
		},
		{
			name:     "floor is enforced",
			current:  1.4,
			quality:  QualityBlackout,
			expected: 1.3, // 1.4 - 0.8 = 0.6, clamped
		},
		{
			name:     "no ceiling",
			current:  3.4,
			quality:  QualityPerfect,
			expected: 3.5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newEF := calculateNewEaseFactor(tc.current, tc.quality, params)

			epsilon := 0.0001
			if math.Abs(newEF-tc.expected) > epsilon {
				t.Errorf("Expected ease factor %f, got %f", tc.expected, newEF)
			}
		})
	}
}

func TestEaseFactorFloorHolds(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// For every quality and a sweep of ease factors the floor must hold.
	for q := QualityBlackout; q <= QualityPerfect; q++ {
		for ef := 1.3; ef <= 3.0; ef += 0.05 {
			newEF := calculateNewEaseFactor(ef, q, params)
			if newEF < params.MinEaseFactor {
				t.Fatalf("ease factor fell below floor: quality=%d ef=%f -> %f", q, ef, newEF)
			}
		}
	}
}

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  int
		newEase  float64
		quality  Quality
		expected int
	}{
		{
			name:     "failure resets to one day",
			current:  30,
			newEase:  2.5,
			quality:  QualityBlackout,
			expected: 1,
		},
		{
			name:     "familiar failure also resets",
			current:  14,
			newEase:  2.5,
			quality:  QualityFamiliar,
			expected: 1,
		},
		{
			name:     "first review yields one day",
			current:  0,
			newEase:  2.5,
			quality:  QualityGood,
			expected: 1,
		},
		{
			name:     "second review yields six days",
			current:  1,
			newEase:  2.5,
			quality:  QualityGood,
			expected: 6,
		},
		{
			name:     "later reviews multiply by ease",
			current:  6,
			newEase:  2.5,
			quality:  QualityGood,
			expected: 15, // round(6*2.5)
		},
		{
			name:     "bare pass dampens to 80 percent",
			current:  6,
			newEase:  2.46,
			quality:  QualityHard,
			expected: 12, // round(round(6*2.46)*0.8) = round(15*0.8)
		},
		{
			name:     "bare pass never drops below one day",
			current:  0,
			newEase:  1.3,
			quality:  QualityHard,
			expected: 1, // round(1*0.8) would be 1 anyway; guard keeps it >= 1
		},
		{
			name:     "perfect answer gets a 10 percent bonus",
			current:  10,
			newEase:  2.6,
			quality:  QualityPerfect,
			expected: 29, // round(round(10*2.6)*1.1) = round(26*1.1)
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newInterval := calculateNewInterval(tc.current, tc.newEase, tc.quality, params)

			if newInterval != tc.expected {
				t.Errorf("Expected interval %d, got %d", tc.expected, newInterval)
			}
		})
	}
}

func TestDeriveMasteryLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		streak   int
		interval int
		expected int
	}{
		{"no streak", 0, 1, 0},
		{"no streak long interval", 0, 90, 0},
		{"one correct", 1, 1, 1},
		{"two correct short interval", 2, 4, 2},
		{"two correct interval threshold met", 2, 6, 2},
		{"three correct interval threshold met", 3, 15, 3},
		{"three correct interval lagging", 3, 10, 3},
		{"four correct interval threshold met", 4, 30, 4},
		{"four correct interval lagging caps at three", 4, 20, 3},
		{"five correct interval threshold met", 5, 60, 5},
		{"five correct interval lagging caps at three", 5, 40, 3},
		{"long streak long interval stays five", 8, 400, 5},
		{"long streak compressed interval caps at three", 8, 12, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level := deriveMasteryLevel(tc.streak, tc.interval)

			if level != tc.expected {
				t.Errorf("Expected mastery %d, got %d", tc.expected, level)
			}
		})
	}
}

func TestCalculateNextStateFailureResets(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	state := domain.ReviewState{
		IntervalDays:       42,
		EaseFactor:         2.2,
		ConsecutiveCorrect: 6,
		MasteryLevel:       4,
		ReviewCount:        9,
		CorrectCount:       8,
	}

	for _, q := range []Quality{QualityBlackout, QualityIncorrect, QualityFamiliar} {
		got := calculateNextState(state, q, now, params)

		if got.IntervalDays != 1 {
			t.Errorf("quality %d: expected interval 1, got %d", q, got.IntervalDays)
		}
		if got.ConsecutiveCorrect != 0 {
			t.Errorf("quality %d: expected streak 0, got %d", q, got.ConsecutiveCorrect)
		}
		if got.MasteryLevel != 0 {
			t.Errorf("quality %d: expected mastery 0, got %d", q, got.MasteryLevel)
		}
		if got.CorrectCount != state.CorrectCount {
			t.Errorf("quality %d: correct count must not change on failure", q)
		}
		if got.ReviewCount != state.ReviewCount+1 {
			t.Errorf("quality %d: expected review count %d, got %d", q, state.ReviewCount+1, got.ReviewCount)
		}
	}
}

func TestCalculateNextStateSchedulesStartOfDay(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)

	state := domain.NewReviewState()
	got := calculateNextState(state, QualityGood, now, params)

	wantNext := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	if got.NextReview == nil || !got.NextReview.Equal(wantNext) {
		t.Errorf("expected next review %v, got %v", wantNext, got.NextReview)
	}

	if got.LastReviewed == nil || !got.LastReviewed.Equal(now) {
		t.Errorf("expected last reviewed %v, got %v", now, got.LastReviewed)
	}

	// The input state must not be touched.
	if state.NextReview != nil || state.ReviewCount != 0 {
		t.Error("input state was mutated")
	}
}

func TestCalculateNextStateDeterministic(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	state := domain.ReviewState{
		IntervalDays:       6,
		EaseFactor:         2.6,
		ConsecutiveCorrect: 2,
		ReviewCount:        2,
		CorrectCount:       2,
	}

	a := calculateNextState(state, QualityHard, now, params)
	b := calculateNextState(state, QualityHard, now, params)

	if a.IntervalDays != b.IntervalDays || a.EaseFactor != b.EaseFactor ||
		a.MasteryLevel != b.MasteryLevel || !a.NextReview.Equal(*b.NextReview) {
		t.Errorf("identical inputs produced different outputs: %+v vs %+v", a, b)
	}

	// Golden value: ease 2.6 -> 2.46, base round(6*2.46)=15,
	// dampened round(15*0.8)=12.
	if a.IntervalDays != 12 {
		t.Errorf("expected interval 12, got %d", a.IntervalDays)
	}
}

// TestPerfectStreakGoldenTrace walks six consecutive perfect answers from the
// pristine state and pins the full trajectory: intervals, streak and mastery
// tiers, including mastery 5 once interval >= 60 and streak >= 5.
func TestPerfectStreakGoldenTrace(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)

	expected := []struct {
		interval int
		streak   int
		mastery  int
	}{
		{1, 1, 1},
		{7, 2, 2},
		{22, 3, 3},
		{70, 4, 4},
		{231, 5, 5},
		{788, 6, 5},
	}

	state := domain.NewReviewState()
	for i, want := range expected {
		state = calculateNextState(state, QualityPerfect, now, params)

		if state.IntervalDays != want.interval {
			t.Fatalf("step %d: expected interval %d, got %d", i+1, want.interval, state.IntervalDays)
		}
		if state.ConsecutiveCorrect != want.streak {
			t.Fatalf("step %d: expected streak %d, got %d", i+1, want.streak, state.ConsecutiveCorrect)
		}
		if state.MasteryLevel != want.mastery {
			t.Fatalf("step %d: expected mastery %d, got %d", i+1, want.mastery, state.MasteryLevel)
		}

		now = state.NextReview.Add(12 * time.Hour)
	}

	// Six perfect answers raise the ease by 0.1 each time.
	if math.Abs(state.EaseFactor-3.1) > 0.0001 {
		t.Errorf("expected ease factor 3.1, got %f", state.EaseFactor)
	}
}
