package http

import (
	"net/http"
	"testing"

	"loanlink-backend/internal/adapter/middleware"
	statsUC "loanlink-backend/internal/usecase/stats"
)

func newStatsHandler() *StatsHandler {
	return NewStatsHandler(statsUC.NewUsecase(&mockUserRepo{}, &mockLoanRepo{}, &mockAppRepo{}))
}

func TestManagerStats_SelfOrAdminGate(t *testing.T) {
	h := newStatsHandler()
	e := newTestEcho()

	cases := []struct {
		name        string
		email, role string
		target      string
		want        int
	}{
		{"manager sees own dashboard", "m@x.com", "manager", "m@x.com", http.StatusOK},
		{"manager blocked from another", "m@x.com", "manager", "other@x.com", http.StatusForbidden},
		{"admin sees anyone", "admin@x.com", "admin", "m@x.com", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := jsonCtx(e, http.MethodGet, "/stats/manager/"+tc.target, "")
			c.SetParamNames("email")
			c.SetParamValues(tc.target)
			middleware.SetIdentity(c, tc.email, tc.role)

			if err := h.Manager(c); err != nil {
				t.Fatalf("Manager: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestBorrowerStats_SelfOrAdminGate(t *testing.T) {
	h := newStatsHandler()
	e := newTestEcho()

	c, rec := jsonCtx(e, http.MethodGet, "/stats/borrower/other@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("other@x.com")
	middleware.SetIdentity(c, "b@x.com", "borrower")

	if err := h.Borrower(c); err != nil {
		t.Fatalf("Borrower: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestAdminStats_OK(t *testing.T) {
	h := newStatsHandler()
	e := newTestEcho()

	c, rec := jsonCtx(e, http.MethodGet, "/stats/admin", "")
	middleware.SetIdentity(c, "admin@x.com", "admin")

	if err := h.Admin(c); err != nil {
		t.Fatalf("Admin: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
