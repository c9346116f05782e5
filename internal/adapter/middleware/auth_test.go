package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loanlink-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"email": Email(c), "role": Role(c)})
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	iss := token.NewIssuer("test-secret", time.Hour)
	raw, err := iss.Sign("m@x.com", "manager")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: raw})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Authenticate(iss)(okHandler)(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if Email(c) != "m@x.com" || Role(c) != "manager" {
		t.Fatalf("identity = %q/%q", Email(c), Role(c))
	}
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	iss := token.NewIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Authenticate(iss)(okHandler)(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	iss := token.NewIssuer("test-secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Authenticate(iss)(okHandler)(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin on admin route", "admin", []string{"admin"}, http.StatusOK},
		{"manager on staff route", "manager", []string{"manager", "admin"}, http.StatusOK},
		{"borrower on staff route", "borrower", []string{"manager", "admin"}, http.StatusForbidden},
		{"unauthenticated", "", []string{"admin"}, http.StatusForbidden},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != "" {
				SetIdentity(c, "u@x.com", tc.role)
			}

			if err := RequireRoles(tc.allowed...)(okHandler)(c); err != nil {
				t.Fatalf("handler err: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
