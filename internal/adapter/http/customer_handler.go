package http

import (
	"net/http"

	"credit-approval-service/internal/usecase/registration"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct{ reg *registration.Usecase }

func NewCustomerHandler(reg *registration.Usecase) *CustomerHandler {
	return &CustomerHandler{reg: reg}
}

type registerReq struct {
	FirstName     string  `json:"first_name"     validate:"required"`
	LastName      string  `json:"last_name"`
	Age           int     `json:"age"            validate:"gte=0,lte=120"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0,dec2"`
	PhoneNumber   string  `json:"phone_number"   validate:"required,phone"`
}

func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.reg.Register(c.Request().Context(), registration.RegisterInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		MonthlyIncome: req.MonthlyIncome,
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}
