package http

import (
	"net/http"
	"strconv"

	"credit-approval-service/internal/usecase/eligibility"
	"credit-approval-service/internal/usecase/origination"
	"credit-approval-service/internal/usecase/portfolio"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	elig *eligibility.Usecase
	orig *origination.Usecase
	port *portfolio.Usecase
}

func NewLoanHandler(elig *eligibility.Usecase, orig *origination.Usecase, port *portfolio.Usecase) *LoanHandler {
	return &LoanHandler{elig: elig, orig: orig, port: port}
}

type loanTermsReq struct {
	CustomerID   uint64  `json:"customer_id"   validate:"required"`
	LoanAmount   float64 `json:"loan_amount"   validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0,dec2"`
	Tenure       int     `json:"tenure"        validate:"required,gt=0,lte=480"`
}

func (h *LoanHandler) CheckEligibility(c echo.Context) error {
	var req loanTermsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.elig.Check(c.Request().Context(), eligibility.CheckInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loanTermsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.orig.Create(c.Request().Context(), origination.CreateLoanInput{
		CustomerID:   req.CustomerID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Tenure:       req.Tenure,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	// A rejection is a normal business outcome, not an error.
	if !dto.LoanApproved {
		return c.JSON(http.StatusOK, dto)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ViewLoan(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id"})
	}
	dto, err := h.port.Get(c.Request().Context(), loanID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ViewLoans(c echo.Context) error {
	customerID, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
	}
	items, err := h.port.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}
