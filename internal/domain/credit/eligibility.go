package credit

// Request is the requested loan terms as seen by the evaluator.
type Request struct {
	Principal    float64
	AnnualRate   float64
	TenureMonths int
}

// Verdict is the outcome of an eligibility evaluation. A rejected verdict
// still carries the corrected rate and installment that would have applied,
// so callers can report them.
type Verdict struct {
	Approved           bool
	RequestedRate      float64
	CorrectedRate      float64
	TenureMonths       int
	MonthlyInstallment float64
	Reason             string
}

const (
	ReasonScoreTooLow  = "credit score below approval threshold"
	ReasonUnaffordable = "monthly obligations would exceed half of income"
	ReasonApproved     = "loan approved"
	ReasonOverLimit    = "requested amount would exceed approved limit"
)

// Evaluator applies the score-band policy and the affordability gate.
type Evaluator struct {
	Bands []RateBand
	// AffordabilityCap is the fraction of monthly income that existing
	// obligations plus the new installment may not exceed.
	AffordabilityCap float64
}

func NewEvaluator() *Evaluator {
	return &Evaluator{Bands: DefaultRateBands(), AffordabilityCap: 0.5}
}

// Evaluate maps score + requested terms into a verdict. The band is decided
// on the raw score, the rate is corrected up to the band floor, then the
// installment at the corrected rate is computed and the affordability gate is
// applied, overriding even top-band approvals.
func (e *Evaluator) Evaluate(score int, req Request, monthlyIncome, existingObligations float64) (Verdict, error) {
	v := Verdict{
		RequestedRate: req.AnnualRate,
		CorrectedRate: req.AnnualRate,
		TenureMonths:  req.TenureMonths,
	}

	approved := false
	for _, band := range e.Bands {
		if score > band.MinScore {
			approved = true
			if band.FloorRate > 0 && req.AnnualRate <= band.FloorRate {
				v.CorrectedRate = band.FloorRate
			}
			break
		}
	}

	installment, err := ComputeInstallment(req.Principal, v.CorrectedRate, req.TenureMonths)
	if err != nil {
		return Verdict{}, err
	}
	v.MonthlyInstallment = RoundMoney(installment)

	switch {
	case !approved:
		v.Reason = ReasonScoreTooLow
	case existingObligations+installment > e.AffordabilityCap*monthlyIncome:
		v.Reason = ReasonUnaffordable
	default:
		v.Approved = true
		v.Reason = ReasonApproved
	}
	return v, nil
}
