package origination

import (
	"context"
	"errors"
	"time"

	"credit-approval-service/internal/domain/credit"
	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/domain/uow"
)

var ErrInvalidInput = errors.New("invalid origination input")

// Usecase originates loans. Score recomputation, eligibility evaluation, the
// limit gate and the insert all run inside one customer-locked transaction,
// so two concurrent requests for the same customer cannot both count against
// the pre-update state.
type Usecase struct {
	uow       uow.UnitOfWork
	scorecard *credit.Scorecard
	evaluator *credit.Evaluator
}

func NewUsecase(tx uow.UnitOfWork, sc *credit.Scorecard, ev *credit.Evaluator) *Usecase {
	if sc == nil {
		sc = credit.NewScorecard()
	}
	if ev == nil {
		ev = credit.NewEvaluator()
	}
	return &Usecase{uow: tx, scorecard: sc, evaluator: ev}
}

type CreateLoanInput struct {
	CustomerID   uint64  `json:"customer_id"`
	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	Tenure       int     `json:"tenure"`
}

type CreateLoanDTO struct {
	LoanID             *uint64 `json:"loan_id"`
	CustomerID         uint64  `json:"customer_id"`
	LoanApproved       bool    `json:"loan_approved"`
	Message            string  `json:"message"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*CreateLoanDTO, error) {
	if in.LoanAmount <= 0 || in.Tenure <= 0 || in.InterestRate < 0 {
		return nil, ErrInvalidInput
	}

	var dto *CreateLoanDTO
	err := u.uow.WithinCustomerTx(ctx, in.CustomerID, func(r uow.Repos, cust *customer.Customer) error {
		history, err := r.Loans.ListByCustomerID(ctx, cust.ID)
		if err != nil {
			return err
		}
		now := u.scorecard.Now().UTC()

		score := u.scorecard.Score(cust.ApprovedLimit, history)
		verdict, err := u.evaluator.Evaluate(score, credit.Request{
			Principal:    in.LoanAmount,
			AnnualRate:   in.InterestRate,
			TenureMonths: in.Tenure,
		}, cust.MonthlyIncome, activeInstallments(history, now))
		if err != nil {
			return err
		}

		if !verdict.Approved {
			dto = rejection(cust.ID, verdict.Reason, verdict.MonthlyInstallment)
			return nil
		}

		// Limit gate: even an approved verdict may not push cumulative
		// active principal past the approved limit.
		if activePrincipal(history, now)+in.LoanAmount > cust.ApprovedLimit {
			dto = rejection(cust.ID, credit.ReasonOverLimit, verdict.MonthlyInstallment)
			return nil
		}

		end := now.AddDate(0, in.Tenure, 0)
		l := &loan.Loan{
			CustomerID:         cust.ID,
			Principal:          in.LoanAmount,
			InterestRate:       verdict.CorrectedRate,
			Tenure:             in.Tenure,
			MonthlyInstallment: verdict.MonthlyInstallment,
			EMIsPaidOnTime:     0,
			StartDate:          now,
			EndDate:            &end,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		dto = &CreateLoanDTO{
			LoanID:             &l.ID,
			CustomerID:         cust.ID,
			LoanApproved:       true,
			Message:            credit.ReasonApproved,
			MonthlyInstallment: verdict.MonthlyInstallment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func rejection(customerID uint64, reason string, installment float64) *CreateLoanDTO {
	return &CreateLoanDTO{
		CustomerID:         customerID,
		LoanApproved:       false,
		Message:            reason,
		MonthlyInstallment: installment,
	}
}

func activePrincipal(history []loan.Loan, now time.Time) float64 {
	var total float64
	for i := range history {
		if history[i].ActiveAt(now) {
			total += history[i].Principal
		}
	}
	return total
}

func activeInstallments(history []loan.Loan, now time.Time) float64 {
	var total float64
	for i := range history {
		if history[i].ActiveAt(now) {
			total += history[i].MonthlyInstallment
		}
	}
	return total
}
