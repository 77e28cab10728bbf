package credit

import (
	"errors"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidTenure    = errors.New("tenure must be a positive number of months")
	ErrInvalidRate      = errors.New("interest rate must not be negative")
)

// ComputeInstallment returns the monthly installment (EMI) for a loan under
// compound-interest amortization:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1), r = annual rate / (12*100)
//
// The result is unrounded; use RoundMoney for presentation.
func ComputeInstallment(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if principal <= 0 {
		return 0, ErrInvalidPrincipal
	}
	if tenureMonths <= 0 {
		return 0, ErrInvalidTenure
	}
	if annualRatePercent < 0 {
		return 0, ErrInvalidRate
	}
	if annualRatePercent == 0 {
		// r = 0 degenerates to straight division; the general formula would
		// divide by zero.
		return principal / float64(tenureMonths), nil
	}
	r := annualRatePercent / (12 * 100)
	growth := math.Pow(1+r, float64(tenureMonths))
	return principal * r * growth / (growth - 1), nil
}

// RoundMoney rounds to 2 decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
