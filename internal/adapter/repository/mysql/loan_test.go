package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loandomain "credit-approval-service/internal/domain/loan"
)

func makeLoan(customerID uint64) *loandomain.Loan {
	end := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &loandomain.Loan{
		CustomerID:         customerID,
		Principal:          100_000,
		InterestRate:       12,
		Tenure:             12,
		MonthlyInstallment: 8884.88,
		EMIsPaidOnTime:     3,
		StartDate:          time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            &end,
	}
}

func TestLoanCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(1)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CustomerID != 1 || got.Principal != 100_000 || got.EndDate == nil {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestLoanGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !errors.Is(err, loandomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoanListByCustomerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, makeLoan(7)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, makeLoan(8)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	loans, err := repo.ListByCustomerID(ctx, 7)
	if err != nil {
		t.Fatalf("ListByCustomerID: %v", err)
	}
	if len(loans) != 3 {
		t.Fatalf("loans = %d, want 3", len(loans))
	}
	for _, l := range loans {
		if l.CustomerID != 7 {
			t.Errorf("foreign loan in listing: %+v", l)
		}
	}

	empty, err := repo.ListByCustomerID(ctx, 99)
	if err != nil {
		t.Fatalf("ListByCustomerID empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("want empty listing, got %d", len(empty))
	}
}

func TestLoanUpsert_ReplacesByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(1)
	l.ID = 500
	if err := repo.Upsert(ctx, l); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}

	l2 := makeLoan(1)
	l2.ID = 500
	l2.EMIsPaidOnTime = 9
	if err := repo.Upsert(ctx, l2); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err := repo.GetByID(ctx, 500)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.EMIsPaidOnTime != 9 {
		t.Errorf("upsert did not update record: %+v", got)
	}
}
