package http

import (
	"math"
	"net/http"

	"loanlink-backend/internal/adapter/gateway"
	loanUC "loanlink-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

const feeCurrency = "usd"

type PaymentHandler struct {
	loans   *loanUC.Usecase
	gateway gateway.PaymentGateway
}

func NewPaymentHandler(loans *loanUC.Usecase, gw gateway.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{loans: loans, gateway: gw}
}

type intentReq struct {
	LoanID string `json:"loan_id" validate:"required,hex32"`
}

// CreateIntent derives the charge from the loan's application fee
// server-side; the client never supplies an amount.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req intentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	l, err := h.loans.Get(c.Request().Context(), req.LoanID)
	if err != nil {
		return writeDomainErr(c, err)
	}
	if l.ApplicationFee <= 0 {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "loan has no application fee"})
	}

	minor := int64(math.Round(l.ApplicationFee * 100))
	intent, err := h.gateway.CreateIntent(c.Request().Context(), minor, feeCurrency)
	if err != nil {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "payment gateway failure"})
	}
	return c.JSON(http.StatusOK, intent)
}
