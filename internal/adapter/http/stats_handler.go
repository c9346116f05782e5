package http

import (
	"net/http"

	"loanlink-backend/internal/adapter/middleware"
	userDomain "loanlink-backend/internal/domain/user"
	statsUC "loanlink-backend/internal/usecase/stats"

	"github.com/labstack/echo/v4"
)

type StatsHandler struct{ uc *statsUC.Usecase }

func NewStatsHandler(uc *statsUC.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

func (h *StatsHandler) Admin(c echo.Context) error {
	dto, err := h.uc.AdminStats(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Manager serves the manager dashboard; managers only see their own, admins
// can inspect any.
func (h *StatsHandler) Manager(c echo.Context) error {
	email := c.Param("email")
	if middleware.Role(c) != string(userDomain.RoleAdmin) && middleware.Email(c) != email {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not your dashboard"})
	}
	dto, err := h.uc.ManagerStats(c.Request().Context(), email)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *StatsHandler) Borrower(c echo.Context) error {
	email := c.Param("email")
	if middleware.Role(c) != string(userDomain.RoleAdmin) && middleware.Email(c) != email {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "not your dashboard"})
	}
	dto, err := h.uc.BorrowerStats(c.Request().Context(), email)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
