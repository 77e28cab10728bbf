package mysql

import (
	"context"
	"errors"

	loandomain "credit-approval-service/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loandomain.Loan, error) {
	var out loandomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loandomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID uint64) ([]loandomain.Loan, error) {
	var out []loandomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) Upsert(ctx context.Context, l *loandomain.Loan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(l).Error
}
