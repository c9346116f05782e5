package middleware

import (
	"net/http"

	"loanlink-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

const (
	// CookieName carries the session JWT; HTTP-only, set on login, cleared
	// on logout.
	CookieName = "loanlink_token"

	ctxEmailKey = "auth.email"
	ctxRoleKey  = "auth.role"
)

// Authenticate reads the session cookie, verifies the JWT and stores the
// caller's identity in the echo context.
func Authenticate(iss *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(CookieName)
			if err != nil || ck.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session cookie"})
			}
			claims, err := iss.Verify(ck.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(ctxEmailKey, claims.Email)
			c.Set(ctxRoleKey, claims.Role)
			return next(c)
		}
	}
}

// RequireRoles gates a route to the given roles. Must run after Authenticate.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[Role(c)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}

func Email(c echo.Context) string {
	if v, ok := c.Get(ctxEmailKey).(string); ok {
		return v
	}
	return ""
}

func Role(c echo.Context) string {
	if v, ok := c.Get(ctxRoleKey).(string); ok {
		return v
	}
	return ""
}

// SetIdentity seeds the context the way Authenticate would; used by handler
// tests.
func SetIdentity(c echo.Context, email, role string) {
	c.Set(ctxEmailKey, email)
	c.Set(ctxRoleKey, role)
}
