package credit

import "math"

// limitRounding is the granularity the approved limit is rounded to.
const limitRounding = 10_000

// ApprovedLimit derives the maximum aggregate credit for a customer from
// their monthly income: 36 x income, rounded to the nearest 10,000.
func ApprovedLimit(monthlyIncome float64) float64 {
	raw := 36 * monthlyIncome
	return math.Round(raw/limitRounding) * limitRounding
}
