package http

import (
	"errors"
	"net/http"
	"strconv"

	appDomain "loanlink-backend/internal/domain/application"
	loanDomain "loanlink-backend/internal/domain/loan"
	userDomain "loanlink-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// writeDomainErr maps the error taxonomy to transport codes:
// not-found → 404, forbidden → 403, invalid transition (incl. lost races)
// → 409, validation / dangling reference → 422, anything else (store or
// gateway failure) → 502.
func writeDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, appDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrForbidden),
		errors.Is(err, appDomain.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrUnknownLoan),
		errors.Is(err, userDomain.ErrReasonRequired):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "dependency failure"})
	}
}

func queryInt(c echo.Context, name string, def int) int {
	if raw := c.QueryParam(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return def
}
