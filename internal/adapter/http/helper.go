package http

import (
	"errors"
	"net/http"

	"credit-approval-service/internal/domain/credit"
	"credit-approval-service/internal/domain/customer"
	"credit-approval-service/internal/domain/loan"
	"credit-approval-service/internal/usecase/eligibility"
	"credit-approval-service/internal/usecase/origination"
	"credit-approval-service/internal/usecase/registration"
)

// ---- helpers ----

// statusFor maps domain errors onto HTTP status codes. Anything unmapped is a
// storage/transient failure and becomes a 500 for the caller to retry.
func statusFor(err error) int {
	switch {
	case errors.Is(err, customer.ErrNotFound), errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, registration.ErrInvalidInput),
		errors.Is(err, eligibility.ErrInvalidInput),
		errors.Is(err, origination.ErrInvalidInput),
		errors.Is(err, credit.ErrInvalidPrincipal),
		errors.Is(err, credit.ErrInvalidTenure),
		errors.Is(err, credit.ErrInvalidRate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
