package srs

// Params defines the tunable constants of the scheduling algorithm.
// The defaults are the values the rest of the system is calibrated against;
// tests and the priority bands assume them.
type Params struct {
	// Core limits
	MinEaseFactor float64

	// Interval seeds for the first two successful reviews
	FirstInterval  int
	SecondInterval int

	// Quality-specific adjustments applied after the base interval
	HardPassFactor     float64 // quality 3 dampening
	PerfectBonusFactor float64 // quality 5 bonus

	// Priority bands
	NewItemPriority     int
	OverdueBase         int
	OverduePerDay       int
	MasteryPriorityStep int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: 1.3,

		FirstInterval:  1,
		SecondInterval: 6,

		HardPassFactor:     0.8,
		PerfectBonusFactor: 1.1,

		NewItemPriority:     1000,
		OverdueBase:         500,
		OverduePerDay:       10,
		MasteryPriorityStep: 10,
	}
}
