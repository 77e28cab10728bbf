package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"credit-approval-service/internal/usecase/ingest"
)

// Historical dumps come with human headers ("Customer ID", "Monthly Salary",
// "Monthly payment (EMI)"). normalizeHeader maps them onto snake_case keys.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if i := strings.Index(h, "("); i >= 0 {
		h = strings.TrimSpace(h[:i])
	}
	return strings.ReplaceAll(h, " ", "_")
}

type row struct {
	cols map[string]string
	line int
}

func (r row) str(key string) string { return strings.TrimSpace(r.cols[key]) }

func (r row) uint(key string) (uint64, error) {
	v := r.str(key)
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s=%q: %w", r.line, key, v, err)
	}
	return n, nil
}

func (r row) int(key string) (int, error) {
	v := r.str(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s=%q: %w", r.line, key, v, err)
	}
	return n, nil
}

func (r row) float(key string) (float64, error) {
	v := r.str(key)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s=%q: %w", r.line, key, v, err)
	}
	return f, nil
}

func (r row) date(key string) (time.Time, error) {
	v := r.str(key)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "1/2/2006"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("line %d: %s=%q: unrecognized date", r.line, key, v)
}

func readRows(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = normalizeHeader(h)
	}

	rows := make([]row, 0, len(records)-1)
	for i, rec := range records[1:] {
		cols := make(map[string]string, len(header))
		for j, v := range rec {
			if j < len(header) {
				cols[header[j]] = v
			}
		}
		rows = append(rows, row{cols: cols, line: i + 2})
	}
	return rows, nil
}

func loadCustomerCSV(path string) ([]ingest.CustomerRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]ingest.CustomerRecord, 0, len(rows))
	for _, r := range rows {
		id, err := r.uint("customer_id")
		if err != nil {
			return nil, err
		}
		age, err := r.int("age")
		if err != nil {
			return nil, err
		}
		salary, err := r.float("monthly_salary")
		if err != nil {
			return nil, err
		}
		limit, err := r.float("approved_limit")
		if err != nil {
			return nil, err
		}
		debt, err := r.float("current_debt")
		if err != nil {
			return nil, err
		}
		out = append(out, ingest.CustomerRecord{
			CustomerID:    id,
			FirstName:     r.str("first_name"),
			LastName:      r.str("last_name"),
			Age:           age,
			PhoneNumber:   r.str("phone_number"),
			MonthlySalary: salary,
			ApprovedLimit: limit,
			CurrentDebt:   debt,
		})
	}
	return out, nil
}

func loadLoanCSV(path string) ([]ingest.LoanRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	out := make([]ingest.LoanRecord, 0, len(rows))
	for _, r := range rows {
		customerID, err := r.uint("customer_id")
		if err != nil {
			return nil, err
		}
		loanID, err := r.uint("loan_id")
		if err != nil {
			return nil, err
		}
		amount, err := r.float("loan_amount")
		if err != nil {
			return nil, err
		}
		tenure, err := r.int("tenure")
		if err != nil {
			return nil, err
		}
		rate, err := r.float("interest_rate")
		if err != nil {
			return nil, err
		}
		emi, err := r.float("monthly_payment")
		if err != nil {
			return nil, err
		}
		onTime, err := r.int("emis_paid_on_time")
		if err != nil {
			return nil, err
		}
		start, err := r.date("date_of_approval")
		if err != nil {
			return nil, err
		}
		rec := ingest.LoanRecord{
			CustomerID:       customerID,
			LoanID:           loanID,
			LoanAmount:       amount,
			Tenure:           tenure,
			InterestRate:     rate,
			MonthlyRepayment: emi,
			EMIsPaidOnTime:   onTime,
			StartDate:        start,
		}
		if r.str("end_date") != "" {
			end, err := r.date("end_date")
			if err != nil {
				return nil, err
			}
			rec.EndDate = &end
		}
		out = append(out, rec)
	}
	return out, nil
}
