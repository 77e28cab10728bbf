package registration

import (
	"context"
	"errors"

	"credit-approval-service/internal/domain/credit"
	"credit-approval-service/internal/domain/customer"
)

var ErrInvalidInput = errors.New("invalid registration input")

type Usecase struct{ repo customer.Repository }

func NewUsecase(r customer.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	PhoneNumber   string  `json:"phone_number"`
}

type CustomerDTO struct {
	CustomerID    uint64  `json:"customer_id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	ApprovedLimit float64 `json:"approved_limit"`
	PhoneNumber   string  `json:"phone_number"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	if in.FirstName == "" || in.MonthlyIncome <= 0 || in.Age < 0 {
		return nil, ErrInvalidInput
	}

	c := &customer.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Age:           in.Age,
		PhoneNumber:   in.PhoneNumber,
		MonthlyIncome: in.MonthlyIncome,
		ApprovedLimit: credit.ApprovedLimit(in.MonthlyIncome),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return &CustomerDTO{
		CustomerID:    c.ID,
		Name:          c.Name(),
		Age:           c.Age,
		MonthlyIncome: c.MonthlyIncome,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
	}, nil
}
