package credit

import (
	"math"
	"time"

	"credit-approval-service/internal/domain/loan"
)

// onTimeWeight is the cap of the repayment-history component. The remaining
// components carry their caps in the policy tables; all caps sum to 100.
const onTimeWeight = 35

// Scorecard turns a customer's loan history into a creditworthiness score in
// [0,100]. The clock is injected so scoring is deterministic under test.
type Scorecard struct {
	LoanCount   StepTable
	Activity    StepTable
	Utilization UtilizationTable
	Now         func() time.Time
}

func NewScorecard() *Scorecard {
	return &Scorecard{
		LoanCount:   DefaultLoanCountTable(),
		Activity:    DefaultActivityTable(),
		Utilization: DefaultUtilizationTable(),
		Now:         time.Now,
	}
}

// Score computes the credit score for a customer with the given approved
// limit and loan history. Malformed historical records (non-positive
// principal or tenure) are excluded from aggregation rather than failing the
// whole computation.
func (s *Scorecard) Score(approvedLimit float64, history []loan.Loan) int {
	now := s.Now().UTC()

	var (
		ratioSum     float64
		ratioSamples int
		activeTotal  float64
		currentYear  int
		counted      int
	)
	for i := range history {
		l := &history[i]
		if l.Principal <= 0 || l.Tenure <= 0 {
			continue
		}
		counted++
		if l.ActiveAt(now) {
			activeTotal += l.Principal
		}
		if l.StartedIn(now.Year()) {
			currentYear++
		}
		if due := l.InstallmentsDue(now); due > 0 {
			ratioSum += float64(l.PaidOnTime(now)) / float64(due)
			ratioSamples++
		}
	}

	// A customer with no repayment track record is treated as maximally
	// trustworthy on the on-time axis.
	onTime := float64(onTimeWeight)
	if ratioSamples > 0 {
		onTime = onTimeWeight * (ratioSum / float64(ratioSamples))
	}

	countPts := s.LoanCount.Points(counted)
	activityPts := s.Activity.Points(currentYear)

	ratio := 0.0
	if approvedLimit > 0 {
		ratio = activeTotal / approvedLimit
	}
	utilizationPts := s.Utilization.Points(ratio)

	// Hard override, checked last: active principal beyond the approved
	// limit zeroes the score regardless of the weighted components.
	if activeTotal > approvedLimit {
		return 0
	}

	total := math.Round(onTime + countPts + activityPts + utilizationPts)
	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return int(total)
}
