package eligibility

import (
	"context"
	"errors"

	"credit-approval-service/internal/domain/credit"
	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
)

var ErrInvalidInput = errors.New("invalid eligibility input")

// Usecase answers check-eligibility requests. Read-only: it recomputes the
// score from current history, evaluates the requested terms and persists
// nothing.
type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
	scorecard *credit.Scorecard
	evaluator *credit.Evaluator
}

func NewUsecase(customers customer.Repository, loans loan.Repository, sc *credit.Scorecard, ev *credit.Evaluator) *Usecase {
	if sc == nil {
		sc = credit.NewScorecard()
	}
	if ev == nil {
		ev = credit.NewEvaluator()
	}
	return &Usecase{customers: customers, loans: loans, scorecard: sc, evaluator: ev}
}

type CheckInput struct {
	CustomerID   uint64  `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type VerdictDTO struct {
	CustomerID            uint64  `json:"customer_id"`
	Approval              bool    `json:"approval"`
	InterestRate          float64 `json:"interest_rate"`
	CorrectedInterestRate float64 `json:"corrected_interest_rate"`
	Tenure                int     `json:"tenure"`
	MonthlyInstallment    float64 `json:"monthly_installment"`
}

func (u *Usecase) Check(ctx context.Context, in CheckInput) (*VerdictDTO, error) {
	if in.LoanAmount <= 0 || in.Tenure <= 0 || in.InterestRate < 0 {
		return nil, ErrInvalidInput
	}

	cust, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	history, err := u.loans.ListByCustomerID(ctx, cust.ID)
	if err != nil {
		return nil, err
	}

	score := u.scorecard.Score(cust.ApprovedLimit, history)
	verdict, err := u.evaluator.Evaluate(score, credit.Request{
		Principal:    in.LoanAmount,
		AnnualRate:   in.InterestRate,
		TenureMonths: in.Tenure,
	}, cust.MonthlyIncome, u.currentObligations(history))
	if err != nil {
		return nil, err
	}

	return &VerdictDTO{
		CustomerID:            cust.ID,
		Approval:              verdict.Approved,
		InterestRate:          verdict.RequestedRate,
		CorrectedInterestRate: verdict.CorrectedRate,
		Tenure:                verdict.TenureMonths,
		MonthlyInstallment:    verdict.MonthlyInstallment,
	}, nil
}

// currentObligations sums the monthly installments of the customer's active
// loans.
func (u *Usecase) currentObligations(history []loan.Loan) float64 {
	now := u.scorecard.Now().UTC()
	var total float64
	for i := range history {
		if history[i].ActiveAt(now) {
			total += history[i].MonthlyInstallment
		}
	}
	return total
}
