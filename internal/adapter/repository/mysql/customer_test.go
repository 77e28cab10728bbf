package mysql

import (
	"context"
	"errors"
	"testing"

	custdomain "credit-approval-service/internal/domain/customer"
	loandomain "credit-approval-service/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with both tables migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&custdomain.Customer{}, &loandomain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeCustomer() *custdomain.Customer {
	return &custdomain.Customer{
		FirstName:     "John",
		LastName:      "Doe",
		Age:           30,
		PhoneNumber:   "1234567890",
		MonthlyIncome: 50_000,
		ApprovedLimit: 1_800_000,
	}
}

func TestCustomerCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer()
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FirstName != "John" || got.ApprovedLimit != 1_800_000 {
		t.Errorf("unexpected customer: %+v", got)
	}
}

func TestCustomerGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	if !errors.Is(err, custdomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCustomerSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer()
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	c.ApprovedLimit = 2_200_000
	if err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ApprovedLimit != 2_200_000 {
		t.Errorf("ApprovedLimit not updated: %+v", got)
	}
}

func TestCustomerUpsert_InsertThenUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer()
	c.ID = 42
	if err := repo.Upsert(ctx, c); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}

	c2 := makeCustomer()
	c2.ID = 42
	c2.MonthlyIncome = 80_000
	if err := repo.Upsert(ctx, c2); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err := repo.GetByID(ctx, 42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.MonthlyIncome != 80_000 {
		t.Errorf("upsert did not update income: %+v", got)
	}

	var count int64
	db.Model(&custdomain.Customer{}).Count(&count)
	if count != 1 {
		t.Errorf("customers = %d, want 1", count)
	}
}

func TestCustomerGetByIDForUpdate_OutsideTx(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer()
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByIDForUpdate(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if got.ID != c.ID {
		t.Errorf("unexpected customer: %+v", got)
	}
}
