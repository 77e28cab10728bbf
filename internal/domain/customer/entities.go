package customer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("customer not found")

type Customer struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"customer_id"`
	FirstName     string    `gorm:"column:first_name;size:100" json:"first_name"`
	LastName      string    `gorm:"column:last_name;size:100" json:"last_name"`
	Age           int       `gorm:"column:age" json:"age"`
	PhoneNumber   string    `gorm:"column:phone_number;size:20" json:"phone_number"`
	MonthlyIncome float64   `gorm:"column:monthly_salary;type:decimal(15,2)" json:"monthly_income"`
	ApprovedLimit float64   `gorm:"column:approved_limit;type:decimal(15,2)" json:"approved_limit"`
	CurrentDebt   float64   `gorm:"column:current_debt;type:decimal(15,2);default:0" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) Name() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
