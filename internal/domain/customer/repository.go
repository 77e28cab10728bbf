package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Save(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	// GetByIDForUpdate locks the customer row for the duration of the
	// surrounding transaction. Outside a transaction it behaves like GetByID.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Customer, error)
	// Upsert inserts or replaces a customer keyed by its external id (bulk import).
	Upsert(ctx context.Context, c *Customer) error
}
