package srs

import (
	"math"
	"time"

	"github.com/readlex/readlex-api/internal/domain"
)

// calculateNewEaseFactor applies the SM-2 ease update for the given quality.
//
// The ease factor represents how easy the item is - higher values make
// intervals grow faster. The update is applied on every answer, pass or
// fail: a wrong answer still nudges the ease down even though the interval
// resets separately.
//
// The formula is the classic SM-2 one:
//
//	ef' = ef + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
//
// clamped to a floor of params.MinEaseFactor. There is no ceiling.
func calculateNewEaseFactor(currentEF float64, quality Quality, params *Params) float64 {
	q := float64(quality)
	newEF := currentEF + (0.1 - (5-q)*(0.08+(5-q)*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the days until the next review.
//
// A failed answer (quality < 3) always resets the interval to one day,
// regardless of how long the previous interval was.
//
// For a correct answer the base interval depends on the previous interval:
// the first-ever review yields 1 day, the second 6 days, and from then on
// the previous interval is multiplied by the already-updated ease factor.
// The base is then adjusted by quality: a bare pass (3) is dampened to 80%
// with a floor of one day, a perfect answer (5) gets a 10% bonus, and a
// good answer (4) is taken as-is.
//
// The result is always at least 1; 0 only ever appears in the pristine,
// never-reviewed state.
func calculateNewInterval(currentInterval int, newEase float64, quality Quality, params *Params) int {
	if !quality.IsCorrect() {
		return 1
	}

	var base int
	switch currentInterval {
	case 0:
		base = params.FirstInterval
	case 1:
		base = params.SecondInterval
	default:
		base = int(math.Round(float64(currentInterval) * newEase))
	}

	switch quality {
	case QualityHard:
		base = int(math.Round(float64(base) * params.HardPassFactor))
		if base < 1 {
			base = 1
		}
	case QualityPerfect:
		base = int(math.Round(float64(base) * params.PerfectBonusFactor))
	}

	return base
}

// deriveMasteryLevel classifies the (streak, interval) pair into the 0-5
// mastery tier. Mastery is never stored independently; it is recomputed from
// scratch after every transition so the invariant "mastery is a function of
// (consecutiveCorrect, interval)" stays enforceable.
//
// The upper tiers require both a streak and an interval threshold. When the
// streak has grown faster than the interval (repeated bare passes compress
// intervals), none of them match and the fallback caps the reported level
// at 3 until the interval catches up.
func deriveMasteryLevel(consecutiveCorrect, intervalDays int) int {
	switch {
	case consecutiveCorrect == 0:
		return 0
	case consecutiveCorrect == 1:
		return 1
	case consecutiveCorrect == 2 && intervalDays >= 6:
		return 2
	case consecutiveCorrect >= 5 && intervalDays >= 60:
		return 5
	case consecutiveCorrect >= 4 && intervalDays >= 30:
		return 4
	case consecutiveCorrect >= 3 && intervalDays >= 15:
		return 3
	default:
		if consecutiveCorrect < 3 {
			return consecutiveCorrect
		}
		return 3
	}
}

// startOfDay truncates t to 00:00:00 in its own location. Next-review
// timestamps carry date-only granularity so that same-day comparisons via
// IsDue classify an item as due for the whole scheduled day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calculateNextState computes the full post-review state for an item.
//
// It follows the immutable update pattern: the input state is never
// modified, a fresh ReviewState is returned. The function is deterministic;
// the only time dependency is the absolute next-review date derived from
// the explicit now argument.
func calculateNextState(
	state domain.ReviewState,
	quality Quality,
	now time.Time,
	params *Params,
) domain.ReviewState {
	newState := state

	newState.EaseFactor = calculateNewEaseFactor(state.EaseFactor, quality, params)

	if quality.IsCorrect() {
		newState.ConsecutiveCorrect = state.ConsecutiveCorrect + 1
		newState.CorrectCount = state.CorrectCount + 1
	} else {
		newState.ConsecutiveCorrect = 0
	}

	newState.IntervalDays = calculateNewInterval(
		state.IntervalDays,
		newState.EaseFactor,
		quality,
		params,
	)

	newState.MasteryLevel = deriveMasteryLevel(newState.ConsecutiveCorrect, newState.IntervalDays)

	next := startOfDay(now).AddDate(0, 0, newState.IntervalDays)
	newState.NextReview = &next

	reviewed := now
	newState.LastReviewed = &reviewed
	newState.ReviewCount = state.ReviewCount + 1

	return newState
}
