package gateway

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

type Intent struct {
	ClientSecret string `json:"client_secret"`
}

// PaymentGateway is the fee-intent contract the handlers consume. Amounts are
// minor units (cents).
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error)
}

// StripeGateway wraps a dedicated Stripe client; no global stripe.Key.
type StripeGateway struct{ sc *client.API }

func NewStripeGateway(secretKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{sc: sc}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ClientSecret: pi.ClientSecret}, nil
}
