package http

import (
	"net/http"
	"time"

	"loanlink-backend/internal/adapter/middleware"
	userDomain "loanlink-backend/internal/domain/user"
	userUC "loanlink-backend/internal/usecase/user"
	"loanlink-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

type CookieConfig struct {
	Domain string
	Secure bool
}

type AuthHandler struct {
	users  *userUC.Usecase
	issuer *token.Issuer
	cookie CookieConfig
}

func NewAuthHandler(users *userUC.Usecase, issuer *token.Issuer, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, cookie: cookie}
}

type loginReq struct {
	Email string `json:"email" validate:"required,email"`
}

// Login issues the session cookie for a known, active user.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	u, err := h.users.Get(c.Request().Context(), req.Email)
	if err != nil {
		return writeDomainErr(c, err)
	}
	if u.Status == string(userDomain.StatusSuspended) {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "account suspended"})
	}

	tok, err := h.issuer.Sign(u.Email, u.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not sign token"})
	}

	c.SetCookie(h.sessionCookie(tok, h.issuer.TTL()))
	return c.JSON(http.StatusOK, u)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().UTC().Add(ttl),
	}
	if ttl < 0 {
		ck.MaxAge = -1
	}
	return ck
}
