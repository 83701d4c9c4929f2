package booking

import (
	"context"
	"strings"

	"coursely/models"
	"coursely/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/paymentmethod"
	"go.uber.org/zap"
)

// Gateway abstracts the payment gateway used to confirm a reservation.
type Gateway interface {
	CreatePaymentMethod(ctx context.Context, card models.CardDetails) (string, error)
	ConfirmPayment(ctx context.Context, clientSecret, paymentMethodID string) error
}

// StripeGateway confirms payments with Stripe. stripe.Key is set from config
// in main.
type StripeGateway struct{}

func (g *StripeGateway) CreatePaymentMethod(ctx context.Context, card models.CardDetails) (string, error) {
	params := &stripe.PaymentMethodParams{
		Params: stripe.Params{Context: ctx},
		Type:   stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(card.ExpMonth),
			ExpYear:  stripe.Int64(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
	}
	pm, err := paymentmethod.New(params)
	if err != nil {
		return "", wrapStripeError(err)
	}
	return pm.ID, nil
}

func (g *StripeGateway) ConfirmPayment(ctx context.Context, clientSecret, paymentMethodID string) error {
	intentID := intentIDFromSecret(clientSecret)
	if intentID == "" {
		return &GatewayError{Message: "invalid payment client secret", Recoverable: false}
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
	}
	if _, err := paymentintent.Confirm(intentID, params); err != nil {
		return wrapStripeError(err)
	}
	return nil
}

// intentIDFromSecret extracts the payment intent ID from a client secret of
// the form "pi_xxx_secret_yyy".
func intentIDFromSecret(secret string) string {
	id, _, found := strings.Cut(secret, "_secret")
	if !found {
		return ""
	}
	return id
}

// wrapStripeError maps gateway-reported errors (declines, card validation)
// to recoverable ones carrying Stripe's user-facing message; anything else
// (network loss, malformed responses) is unrecoverable.
func wrapStripeError(err error) error {
	logger := utils.GetLogger()
	if stripeErr, ok := err.(*stripe.Error); ok {
		recoverable := stripeErr.Type == stripe.ErrorTypeCard || stripeErr.Type == stripe.ErrorTypeInvalidRequest
		msg := stripeErr.Msg
		if msg == "" {
			msg = "Your payment could not be processed."
		}
		logger.Warn("gateway rejected payment", zap.String("type", string(stripeErr.Type)), zap.String("code", string(stripeErr.Code)))
		return &GatewayError{Message: msg, Recoverable: recoverable}
	}
	logger.Error("gateway request failed", zap.Error(err))
	return &GatewayError{Message: "An unexpected error occurred while processing the payment.", Recoverable: false}
}
