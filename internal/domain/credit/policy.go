package credit

// Policy tables for the scorecard and the eligibility bands. They are plain
// data so each curve can be unit-tested and swapped without touching the
// scoring or evaluation control flow.

// StepTable maps a count to points: the first tier whose UpTo is >= count
// wins, otherwise Fallback applies. Tiers must be sorted ascending by UpTo.
type StepTable struct {
	Tiers    []StepTier
	Fallback float64
}

type StepTier struct {
	UpTo   int
	Points float64
}

func (t StepTable) Points(count int) float64 {
	for _, tier := range t.Tiers {
		if count <= tier.UpTo {
			return tier.Points
		}
	}
	return t.Fallback
}

// UtilizationTable maps a ratio (active principal / approved limit) to
// points; first tier whose UpTo is >= ratio wins.
type UtilizationTable struct {
	Tiers    []UtilizationTier
	Fallback float64
}

type UtilizationTier struct {
	UpTo   float64
	Points float64
}

func (t UtilizationTable) Points(ratio float64) float64 {
	for _, tier := range t.Tiers {
		if ratio <= tier.UpTo {
			return tier.Points
		}
	}
	return t.Fallback
}

// RateBand is one row of the eligibility policy: scores strictly above
// MinScore fall in the band, and the requested rate is bumped up to FloorRate
// when it is at or below it. FloorRate 0 means the requested rate stands.
type RateBand struct {
	MinScore  int
	FloorRate float64
}

// DefaultRateBands, top-down; a score clearing none of them is rejected.
func DefaultRateBands() []RateBand {
	return []RateBand{
		{MinScore: 50, FloorRate: 0},
		{MinScore: 30, FloorRate: 12},
		{MinScore: 10, FloorRate: 16},
	}
}

// DefaultLoanCountTable: fewer past loans scores higher, full points for a
// clean slate.
func DefaultLoanCountTable() StepTable {
	return StepTable{
		Tiers: []StepTier{
			{UpTo: 0, Points: 20},
			{UpTo: 3, Points: 20},
			{UpTo: 6, Points: 15},
			{UpTo: 10, Points: 10},
		},
		Fallback: 5,
	}
}

// DefaultActivityTable: fewer loans started in the current calendar year
// scores higher.
func DefaultActivityTable() StepTable {
	return StepTable{
		Tiers: []StepTier{
			{UpTo: 0, Points: 20},
			{UpTo: 2, Points: 15},
			{UpTo: 4, Points: 10},
		},
		Fallback: 5,
	}
}

// DefaultUtilizationTable: lower active-principal-to-limit ratio scores
// higher. Ratios above 1.0 score nothing here; the hard override zeroes the
// whole score in that case anyway.
func DefaultUtilizationTable() UtilizationTable {
	return UtilizationTable{
		Tiers: []UtilizationTier{
			{UpTo: 0.25, Points: 25},
			{UpTo: 0.50, Points: 20},
			{UpTo: 0.75, Points: 15},
			{UpTo: 1.00, Points: 10},
		},
		Fallback: 0,
	}
}
