package srs

import (
	"sort"
	"time"

	"github.com/readlex/readlex-api/internal/domain"
)

// reviewPriority ranks an item for queue ordering. Consumers sort descending
// by this score to decide which item to present next.
//
// Three bands, by construction disjoint for typical overdue windows:
//
//   - never reviewed (no schedule or no last review): NewItemPriority (1000)
//   - overdue: OverdueBase + whole days overdue * OverduePerDay, unbounded
//   - scheduled but not yet due: (5 - mastery) * MasteryPriorityStep (0-50)
//
// An item more than 50 days overdue scores past the new-item band and would
// outrank never-reviewed items. That crossover is inherited behavior and is
// deliberately left in place; see DESIGN.md.
func reviewPriority(
	nextReview *time.Time,
	masteryLevel int,
	lastReviewed *time.Time,
	now time.Time,
	params *Params,
) int {
	if nextReview == nil || lastReviewed == nil {
		return params.NewItemPriority
	}

	if now.After(*nextReview) {
		overdueDays := int(now.Sub(*nextReview).Hours() / 24)
		return params.OverdueBase + overdueDays*params.OverduePerDay
	}

	return (5 - masteryLevel) * params.MasteryPriorityStep
}

// isDue reports whether an item's scheduled instant has arrived or passed.
// An item with no schedule has never been reviewed and is always due. The
// comparison is inclusive: an item becomes due exactly at its scheduled
// instant, not strictly after.
func isDue(nextReview *time.Time, now time.Time) bool {
	if nextReview == nil {
		return true
	}
	return !nextReview.After(now)
}

// SortDue orders items in place by descending review priority so the
// highest-priority item surfaces first. Ties keep their original order.
func SortDue(items []*domain.VocabularyItem, now time.Time, params *Params) {
	if params == nil {
		params = NewDefaultParams()
	}

	sort.SliceStable(items, func(i, j int) bool {
		pi := reviewPriority(items[i].NextReview, items[i].MasteryLevel, items[i].LastReviewed, now, params)
		pj := reviewPriority(items[j].NextReview, items[j].MasteryLevel, items[j].LastReviewed, now, params)
		return pi > pj
	})
}
