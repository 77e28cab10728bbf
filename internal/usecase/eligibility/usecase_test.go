package eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"credit-approval-service/internal/domain/credit"
	custdomain "credit-approval-service/internal/domain/customer"
	loandomain "credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/testutil/customermock"
	"credit-approval-service/internal/testutil/loanmock"
)

var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func fixedScorecard() *credit.Scorecard {
	sc := credit.NewScorecard()
	sc.Now = func() time.Time { return testNow }
	return sc
}

func testCustomer() *custdomain.Customer {
	return &custdomain.Customer{
		ID:            1,
		FirstName:     "Test",
		LastName:      "User",
		MonthlyIncome: 50_000,
		ApprovedLimit: 1_800_000,
	}
}

func newCheckUsecase(loans []loandomain.Loan, calls *int) *Usecase {
	customers := &customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*custdomain.Customer, error) {
			if id != 1 {
				return nil, custdomain.ErrNotFound
			}
			return testCustomer(), nil
		},
	}
	loanRepo := &loanmock.Repo{
		ListByCustomerIDFn: func(ctx context.Context, customerID uint64) ([]loandomain.Loan, error) {
			if calls != nil {
				*calls++
			}
			return loans, nil
		},
	}
	return NewUsecase(customers, loanRepo, fixedScorecard(), nil)
}

func TestCheck_NewCustomerApproved(t *testing.T) {
	uc := newCheckUsecase(nil, nil)
	dto, err := uc.Check(context.Background(), CheckInput{
		CustomerID: 1, LoanAmount: 100_000, InterestRate: 15, Tenure: 12,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !dto.Approval {
		t.Fatalf("new customer should be approved: %+v", dto)
	}
	if dto.CorrectedInterestRate != 15 {
		t.Fatalf("no correction expected above top band, got %.2f", dto.CorrectedInterestRate)
	}
	if dto.MonthlyInstallment <= 0 {
		t.Fatalf("installment missing: %+v", dto)
	}
}

func TestCheck_UnknownCustomer(t *testing.T) {
	uc := newCheckUsecase(nil, nil)
	_, err := uc.Check(context.Background(), CheckInput{
		CustomerID: 99, LoanAmount: 100_000, InterestRate: 15, Tenure: 12,
	})
	if !errors.Is(err, custdomain.ErrNotFound) {
		t.Fatalf("err = %v, want customer ErrNotFound", err)
	}
}

func TestCheck_InvalidInput(t *testing.T) {
	uc := newCheckUsecase(nil, nil)
	cases := []CheckInput{
		{CustomerID: 1, LoanAmount: 0, InterestRate: 10, Tenure: 12},
		{CustomerID: 1, LoanAmount: 1000, InterestRate: 10, Tenure: 0},
		{CustomerID: 1, LoanAmount: 1000, InterestRate: -1, Tenure: 12},
	}
	for _, in := range cases {
		if _, err := uc.Check(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestCheck_ExistingObligationsTripAffordability(t *testing.T) {
	end := testNow.AddDate(1, 0, 0)
	heavy := []loandomain.Loan{{
		ID: 10, CustomerID: 1, Principal: 500_000, InterestRate: 10, Tenure: 12,
		MonthlyInstallment: 30_000, // 60% of income already
		StartDate:          testNow.AddDate(0, -2, 0),
		EndDate:            &end,
	}}
	uc := newCheckUsecase(heavy, nil)
	dto, err := uc.Check(context.Background(), CheckInput{
		CustomerID: 1, LoanAmount: 100_000, InterestRate: 10, Tenure: 12,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if dto.Approval {
		t.Fatalf("obligations above half income must reject: %+v", dto)
	}
	if dto.MonthlyInstallment <= 0 {
		t.Fatalf("rejected verdict must still report the installment")
	}
}

func TestCheck_IdempotentAndReadOnly(t *testing.T) {
	calls := 0
	writes := 0
	customers := &customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*custdomain.Customer, error) {
			return testCustomer(), nil
		},
	}
	loanRepo := &loanmock.Repo{
		ListByCustomerIDFn: func(ctx context.Context, customerID uint64) ([]loandomain.Loan, error) {
			calls++
			return nil, nil
		},
		CreateFn: func(ctx context.Context, l *loandomain.Loan) error {
			writes++
			return nil
		},
		UpsertFn: func(ctx context.Context, l *loandomain.Loan) error {
			writes++
			return nil
		},
	}
	uc := NewUsecase(customers, loanRepo, fixedScorecard(), nil)

	in := CheckInput{CustomerID: 1, LoanAmount: 100_000, InterestRate: 8, Tenure: 12}
	first, err := uc.Check(context.Background(), in)
	if err != nil {
		t.Fatalf("first Check: %v", err)
	}
	second, err := uc.Check(context.Background(), in)
	if err != nil {
		t.Fatalf("second Check: %v", err)
	}
	if *first != *second {
		t.Fatalf("verdicts differ: %+v vs %+v", first, second)
	}
	if writes != 0 {
		t.Fatalf("check-eligibility must not write, got %d writes", writes)
	}
	if calls != 2 {
		t.Fatalf("history reads = %d, want 2", calls)
	}
}
