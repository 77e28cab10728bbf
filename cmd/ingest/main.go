package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"credit-approval-service/internal/adapter/repository/mysql"
	"credit-approval-service/internal/config"
	"credit-approval-service/internal/infrastructure/db"
	"credit-approval-service/internal/usecase/ingest"
)

func main() {
	cfg := config.Load()

	customerPath := flag.String("customers", cfg.CustomerDataPath, "path to the customer CSV dump")
	loanPath := flag.String("loans", cfg.LoanDataPath, "path to the loan CSV dump")
	workers := flag.Int("workers", cfg.IngestWorkers, "number of upsert workers")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}

	customers, err := loadCustomerCSV(*customerPath)
	if err != nil {
		log.Fatalf("load %s: %v", *customerPath, err)
	}
	loans, err := loadLoanCSV(*loanPath)
	if err != nil {
		log.Fatalf("load %s: %v", *loanPath, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ing := ingest.New(mysql.NewCustomerRepository(gdb), mysql.NewLoanRepository(gdb), *workers)
	summary, err := ing.Run(ctx, customers, loans)
	if err != nil {
		log.Fatalf("ingest: %v", err)
	}
	log.Printf("ingest %s done: %d customers, %d loans upserted, %d loans skipped",
		summary.JobID, summary.Customers, summary.Loans, summary.Skipped)
}
