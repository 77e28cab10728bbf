package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
	// Upsert inserts or replaces a loan keyed by its external id (bulk import).
	Upsert(ctx context.Context, l *Loan) error
}
