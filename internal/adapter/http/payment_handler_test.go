package http

import (
	"context"
	"net/http"
	"testing"

	"loanlink-backend/internal/adapter/gateway"
	"loanlink-backend/internal/adapter/middleware"
	loanDomain "loanlink-backend/internal/domain/loan"
	loanUC "loanlink-backend/internal/usecase/loan"
)

type mockGateway struct {
	CreateIntentFn func(ctx context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error)
}

func (m *mockGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error) {
	return m.CreateIntentFn(ctx, amountMinorUnits, currency)
}

func feeLoanRepo(fee float64) *mockLoanRepo {
	return &mockLoanRepo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			return &loanDomain.Loan{LoanID: loanID, Title: "L", ApplicationFee: fee}, nil
		},
	}
}

func TestCreateIntent_AmountDerivedFromLoanFee(t *testing.T) {
	gw := &mockGateway{
		CreateIntentFn: func(ctx context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error) {
			if amountMinorUnits != 2550 || currency != "usd" {
				t.Fatalf("intent params = %d %s", amountMinorUnits, currency)
			}
			return &gateway.Intent{ClientSecret: "pi_secret"}, nil
		},
	}
	h := NewPaymentHandler(loanUC.NewUsecase(feeLoanRepo(25.50)), gw)

	e := newTestEcho()
	c, rec := jsonCtx(e, http.MethodPost, "/payments/intent", `{"loan_id":"`+testLoanID+`"}`)
	middleware.SetIdentity(c, "b@x.com", "borrower")

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateIntent_NoFeeConfigured(t *testing.T) {
	h := NewPaymentHandler(loanUC.NewUsecase(feeLoanRepo(0)), &mockGateway{
		CreateIntentFn: func(ctx context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error) {
			t.Fatal("gateway must not be called")
			return nil, nil
		},
	})

	e := newTestEcho()
	c, rec := jsonCtx(e, http.MethodPost, "/payments/intent", `{"loan_id":"`+testLoanID+`"}`)
	middleware.SetIdentity(c, "b@x.com", "borrower")

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestCreateIntent_GatewayFailureMaps502(t *testing.T) {
	h := NewPaymentHandler(loanUC.NewUsecase(feeLoanRepo(25)), &mockGateway{
		CreateIntentFn: func(ctx context.Context, amountMinorUnits int64, currency string) (*gateway.Intent, error) {
			return nil, gateway.ErrGatewayUnavailable
		},
	})

	e := newTestEcho()
	c, rec := jsonCtx(e, http.MethodPost, "/payments/intent", `{"loan_id":"`+testLoanID+`"}`)
	middleware.SetIdentity(c, "b@x.com", "borrower")

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestCreateIntent_UnknownLoan(t *testing.T) {
	h := NewPaymentHandler(loanUC.NewUsecase(&mockLoanRepo{}), &mockGateway{})

	e := newTestEcho()
	c, rec := jsonCtx(e, http.MethodPost, "/payments/intent", `{"loan_id":"`+testLoanID+`"}`)
	middleware.SetIdentity(c, "b@x.com", "borrower")

	if err := h.CreateIntent(c); err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
