package srs

// Quality is a 0-5 self-assessment of recall for a single review event.
// 0 means no recall even after seeing the answer, 5 means instant
// effortless recall. Values of 3 and above count as correct.
type Quality int

// Possible quality values
const (
	// Complete blackout, unable to recall
	QualityBlackout Quality = 0
	// Incorrect response but remembered upon seeing the correct answer
	QualityIncorrect Quality = 1
	// Incorrect response but the correct answer felt familiar
	QualityFamiliar Quality = 2
	// Correct response but required significant effort
	QualityHard Quality = 3
	// Correct response after some hesitation
	QualityGood Quality = 4
	// Perfect response with no hesitation
	QualityPerfect Quality = 5
)

// passThreshold is the lowest quality that counts as a correct answer.
const passThreshold = QualityHard

// Valid reports whether q is inside the documented 0-5 domain.
// Out-of-range quality is a caller contract violation and must be rejected
// at the boundary before the scheduler is invoked.
func (q Quality) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// IsCorrect reports whether q counts as a correct answer.
func (q Quality) IsCorrect() bool {
	return q >= passThreshold
}

// QualityFromKnown maps the two-button ("I know it" / "I don't know it")
// answer onto the 0-5 scale so the same scheduler serves both modes.
// A known press advances the schedule with no special adjustment; an unknown
// press resets the interval and the streak.
func QualityFromKnown(known bool) Quality {
	if known {
		return QualityGood
	}
	return QualityIncorrect
}
