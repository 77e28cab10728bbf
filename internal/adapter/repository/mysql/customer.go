package mysql

import (
	"context"
	"errors"

	custdomain "credit-approval-service/internal/domain/customer"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *custdomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *custdomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*custdomain.Customer, error) {
	var out custdomain.Customer
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, custdomain.ErrNotFound
	}
	return &out, res.Error
}

// GetByIDForUpdate locks the customer row until the surrounding transaction
// commits. Originations for one customer serialize on this lock. SQLite (used
// in tests) serializes writers on its own and rejects FOR UPDATE, so the
// clause is only added on mysql.
func (r *CustomerRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*custdomain.Customer, error) {
	tx := r.db.WithContext(ctx)
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out custdomain.Customer
	res := tx.Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, custdomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *CustomerRepository) Upsert(ctx context.Context, c *custdomain.Customer) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(c).Error
}
