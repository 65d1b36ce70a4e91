package order

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates payment intents for card checkouts. Non-card
// methods (ecocash, bank transfer, cash) settle out of band and bypass it.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, amountUSD float64, orderNumber string) (string, string, error)
}

// StripePaymentHandler is the production card handler.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

// CreateIntent creates a Stripe PaymentIntent and returns its ID and
// client secret. Amounts are converted to cents.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, amountUSD float64, orderNumber string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amountUSD*100 + 0.5)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("orderNumber", orderNumber)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.Logger.Info("payment intent created",
		zap.String("orderNumber", orderNumber), zap.String("intent", pi.ID))
	return pi.ID, pi.ClientSecret, nil
}
