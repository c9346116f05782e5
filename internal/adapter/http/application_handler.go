package http

import (
	"net/http"
	"time"

	"loanlink-backend/internal/adapter/middleware"
	appDomain "loanlink-backend/internal/domain/application"
	userDomain "loanlink-backend/internal/domain/user"
	appUC "loanlink-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *appUC.Usecase }

func NewApplicationHandler(uc *appUC.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitReq struct {
	LoanID string  `json:"loan_id" validate:"required,hex32"`
	Amount float64 `json:"amount" validate:"gte=0,dec2"`
	// status / fee_status in the body are ignored: those fields are
	// server-assigned.
}

// Submit creates an application for the authenticated borrower, always in
// pending/unpaid.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Submit(c.Request().Context(), appUC.SubmitInput{
		LoanID: req.LoanID,
		Email:  middleware.Email(c),
		Amount: req.Amount,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// List dispatches on query params: ?status= lists by lifecycle state
// (manager/admin view), otherwise the caller's own applications are returned.
func (h *ApplicationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	role := middleware.Role(c)

	if s := c.QueryParam("status"); s != "" {
		if role != string(userDomain.RoleManager) && role != string(userDomain.RoleAdmin) {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "insufficient role"})
		}
		switch appDomain.Status(s) {
		case appDomain.StatusPending, appDomain.StatusApproved, appDomain.StatusRejected:
		default:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status"})
		}
		apps, err := h.uc.ListByStatus(ctx, appDomain.Status(s))
		if err != nil {
			return writeDomainErr(c, err)
		}
		return c.JSON(http.StatusOK, apps)
	}

	apps, err := h.uc.ListByApplicant(ctx, middleware.Email(c))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// ListByManager returns applications against the given manager's loans.
// Managers may only query themselves; admins may query anyone.
func (h *ApplicationHandler) ListByManager(c echo.Context) error {
	email := c.Param("email")
	if middleware.Role(c) != string(userDomain.RoleAdmin) && middleware.Email(c) != email {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not your dashboard"})
	}
	apps, err := h.uc.ListByLoanOwner(c.Request().Context(), email)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

type decisionReq struct {
	Status string `json:"status" validate:"required,decision"`
}

func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	appID := c.Param("id")
	if !reHex32.MatchString(appID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.SetStatus(c.Request().Context(), appID,
		appDomain.Status(req.Status), middleware.Email(c), userDomain.Role(middleware.Role(c)))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type paymentReq struct {
	TransactionID string    `json:"transaction_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"gte=0,dec2"`
	PaidAt        time.Time `json:"paid_at"`
}

// RecordPayment is the payment-confirmation callback target. Routed behind
// the idempotency middleware; a replayed confirmation never reaches the
// usecase twice with effect.
func (h *ApplicationHandler) RecordPayment(c echo.Context) error {
	appID := c.Param("id")
	if !reHex32.MatchString(appID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.RecordPayment(c.Request().Context(), appID, appUC.PaymentInput{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		PaidAt:        req.PaidAt,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Cancel deletes the caller's own pending application.
func (h *ApplicationHandler) Cancel(c echo.Context) error {
	appID := c.Param("id")
	if !reHex32.MatchString(appID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application id"})
	}
	if err := h.uc.Cancel(c.Request().Context(), appID, middleware.Email(c)); err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}
