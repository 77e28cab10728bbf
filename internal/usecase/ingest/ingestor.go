package ingest

import (
	"context"
	"log"
	"sync"
	"time"

	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
	"credit-approval-service/pkg/id"
)

// CustomerRecord is one row of the historical customer dump.
type CustomerRecord struct {
	CustomerID    uint64
	FirstName     string
	LastName      string
	Age           int
	PhoneNumber   string
	MonthlySalary float64
	ApprovedLimit float64
	CurrentDebt   float64
}

// LoanRecord is one row of the historical loan dump.
type LoanRecord struct {
	CustomerID       uint64
	LoanID           uint64
	LoanAmount       float64
	Tenure           int
	InterestRate     float64
	MonthlyRepayment float64
	EMIsPaidOnTime   int
	StartDate        time.Time
	EndDate          *time.Time
}

// Summary reports what a run did.
type Summary struct {
	JobID     string
	Customers int
	Loans     int
	Skipped   int
}

// Ingestor upserts historical record streams through a bounded worker pool.
// Customers must be loaded before loans; loans referencing unknown customers
// are skipped and counted, never fatal.
type Ingestor struct {
	customers customer.Repository
	loans     loan.Repository
	workers   int

	mu      sync.Mutex
	skipped int
}

func New(customers customer.Repository, loans loan.Repository, workers int) *Ingestor {
	if workers <= 0 {
		workers = 4
	}
	return &Ingestor{customers: customers, loans: loans, workers: workers}
}

// Run ingests both streams and returns a summary. The returned error
// aggregates per-record failures; partial progress is kept.
func (ing *Ingestor) Run(ctx context.Context, customers []CustomerRecord, loans []LoanRecord) (*Summary, error) {
	jobID := id.NewID32()
	log.Printf("ingest %s: %d customers, %d loans, %d workers", jobID, len(customers), len(loans), ing.workers)

	if err := ing.run(ctx, len(customers), func(i int) error {
		return ing.upsertCustomer(ctx, customers[i])
	}); err != nil {
		return nil, err
	}
	if err := ing.run(ctx, len(loans), func(i int) error {
		return ing.upsertLoan(ctx, loans[i])
	}); err != nil {
		return nil, err
	}

	ing.mu.Lock()
	skipped := ing.skipped
	ing.mu.Unlock()
	return &Summary{JobID: jobID, Customers: len(customers), Loans: len(loans) - skipped, Skipped: skipped}, nil
}

func (ing *Ingestor) upsertCustomer(ctx context.Context, rec CustomerRecord) error {
	c := &customer.Customer{
		ID:            rec.CustomerID,
		FirstName:     rec.FirstName,
		LastName:      rec.LastName,
		Age:           rec.Age,
		PhoneNumber:   rec.PhoneNumber,
		MonthlyIncome: rec.MonthlySalary,
		ApprovedLimit: rec.ApprovedLimit,
		CurrentDebt:   rec.CurrentDebt,
	}
	return ing.customers.Upsert(ctx, c)
}

func (ing *Ingestor) upsertLoan(ctx context.Context, rec LoanRecord) error {
	if _, err := ing.customers.GetByID(ctx, rec.CustomerID); err != nil {
		log.Printf("ingest: customer %d not found, skipping loan %d", rec.CustomerID, rec.LoanID)
		ing.mu.Lock()
		ing.skipped++
		ing.mu.Unlock()
		return nil
	}
	l := &loan.Loan{
		ID:                 rec.LoanID,
		CustomerID:         rec.CustomerID,
		Principal:          rec.LoanAmount,
		InterestRate:       rec.InterestRate,
		Tenure:             rec.Tenure,
		MonthlyInstallment: rec.MonthlyRepayment,
		EMIsPaidOnTime:     rec.EMIsPaidOnTime,
		StartDate:          rec.StartDate,
		EndDate:            rec.EndDate,
	}
	return ing.loans.Upsert(ctx, l)
}

// run fans indices out to the worker pool and accumulates failures.
func (ing *Ingestor) run(ctx context.Context, total int, fn func(i int) error) error {
	if total == 0 {
		return nil
	}

	indexCh := make(chan int)
	errCh := make(chan error, total)
	var wg sync.WaitGroup

	workers := ing.workers
	if workers > total {
		workers = total
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				if err := fn(i); err != nil {
					errCh <- err
				}
			}
		}()
	}

	var sendErr error
feed:
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			sendErr = ctx.Err()
			break feed
		case indexCh <- i:
		}
	}
	close(indexCh)
	wg.Wait()
	close(errCh)

	task := &TaskError{}
	for err := range errCh {
		task.append(err)
	}
	if sendErr != nil {
		task.append(sendErr)
	}
	return task.asError()
}
