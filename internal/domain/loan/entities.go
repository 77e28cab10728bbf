package loan

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("loan not found")

type Loan struct {
	ID                 uint64     `gorm:"primaryKey;column:id" json:"loan_id"`
	CustomerID         uint64     `gorm:"column:customer_id;not null;index:idx_loans_customer" json:"customer_id"`
	Principal          float64    `gorm:"column:loan_amount;type:decimal(15,2)" json:"loan_amount"`
	InterestRate       float64    `gorm:"column:interest_rate;type:decimal(5,2)" json:"interest_rate"`
	Tenure             int        `gorm:"column:tenure" json:"tenure"`
	MonthlyInstallment float64    `gorm:"column:monthly_repayment;type:decimal(15,2)" json:"monthly_installment"`
	EMIsPaidOnTime     int        `gorm:"column:emis_paid_on_time;default:0" json:"emis_paid_on_time"`
	StartDate          time.Time  `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate            *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// ActiveAt reports whether the loan still counts against the customer's
// approved limit: the end date is unset (still open) or in the future.
func (l *Loan) ActiveAt(now time.Time) bool {
	return l.EndDate == nil || !l.EndDate.Before(now)
}

// StartedIn reports whether the loan was originated in the given calendar year.
func (l *Loan) StartedIn(year int) bool {
	return !l.StartDate.IsZero() && l.StartDate.Year() == year
}

// InstallmentsDue returns how many installments have fallen due by now:
// one per whole month elapsed since the start date, capped at the tenure.
func (l *Loan) InstallmentsDue(now time.Time) int {
	if l.StartDate.IsZero() || now.Before(l.StartDate) {
		return 0
	}
	months := (now.Year()-l.StartDate.Year())*12 + int(now.Month()) - int(l.StartDate.Month())
	if now.Day() < l.StartDate.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	if months > l.Tenure {
		return l.Tenure
	}
	return months
}

// PaidOnTime caps the raw counter so that paid <= due <= tenure holds even
// for sloppy imported records.
func (l *Loan) PaidOnTime(now time.Time) int {
	due := l.InstallmentsDue(now)
	if l.EMIsPaidOnTime > due {
		return due
	}
	if l.EMIsPaidOnTime < 0 {
		return 0
	}
	return l.EMIsPaidOnTime
}

func (l *Loan) RepaymentsLeft() int {
	left := l.Tenure - l.EMIsPaidOnTime
	if left < 0 {
		return 0
	}
	return left
}
