package uow

import (
	"context"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
)

type Repos struct {
	Customers customer.Repository
	Loans     loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the customer row first, then pass it in. This is the
	// serialization point for originations against the same customer.
	WithinCustomerTx(ctx context.Context, customerID uint64, fn func(r Repos, c *customer.Customer) error) error
}
