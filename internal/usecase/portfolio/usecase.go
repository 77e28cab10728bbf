package portfolio

import (
	"context"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
)

// Usecase serves the read side: single-loan detail with an embedded customer
// summary, and per-customer loan listings. No engine logic beyond formatting.
type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
}

func NewUsecase(customers customer.Repository, loans loan.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

type CustomerSummary struct {
	CustomerID  uint64 `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

type LoanDetailDTO struct {
	LoanID             uint64          `json:"loan_id"`
	Customer           CustomerSummary `json:"customer"`
	LoanAmount         float64         `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	MonthlyInstallment float64         `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
}

type LoanListItemDTO struct {
	LoanID             uint64  `json:"loan_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRate       float64 `json:"interest_rate"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	RepaymentsLeft     int     `json:"repayments_left"`
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDetailDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	c, err := u.customers.GetByID(ctx, l.CustomerID)
	if err != nil {
		return nil, err
	}
	return &LoanDetailDTO{
		LoanID: l.ID,
		Customer: CustomerSummary{
			CustomerID:  c.ID,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			PhoneNumber: c.PhoneNumber,
			Age:         c.Age,
		},
		LoanAmount:         l.Principal,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyInstallment,
		Tenure:             l.Tenure,
	}, nil
}

func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]LoanListItemDTO, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanListItemDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		out = append(out, LoanListItemDTO{
			LoanID:             l.ID,
			LoanAmount:         l.Principal,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyInstallment,
			RepaymentsLeft:     l.RepaymentsLeft(),
		})
	}
	return out, nil
}
