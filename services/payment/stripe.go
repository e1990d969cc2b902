package payment

import (
	"context"
	"fmt"
	"time"

	"parkwise/models"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Provider abstracts the payment processor so the booking service can be
// tested without hitting Stripe.
type Provider interface {
	CreateCustomer(ctx context.Context, email, userID string) (string, error)
	CreateCharge(ctx context.Context, customerID string, amount float64, currency, bookingID, userID string) (*models.PaymentCapture, error)
}

// StripeProvider charges through Stripe payment intents. The intent ID is
// stored on the booking as the payment reference; the client secret goes back
// to the caller to confirm on their side.
type StripeProvider struct {
	Timeout time.Duration
}

// NewStripeProvider returns a provider with a bounded per-charge timeout.
func NewStripeProvider() *StripeProvider {
	return &StripeProvider{Timeout: 15 * time.Second}
}

// CreateCustomer registers the user with Stripe so charges share one customer
// record across bookings.
func (p *StripeProvider) CreateCustomer(ctx context.Context, email, userID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}
	params.AddMetadata("userId", userID)

	cust, err := customer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	return cust.ID, nil
}

// CreateCharge creates a payment intent for the booking amount. Amounts are
// converted to the currency's minor units as Stripe expects.
func (p *StripeProvider) CreateCharge(ctx context.Context, customerID string, amount float64, currency, bookingID, userID string) (*models.PaymentCapture, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(currency),
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	params.AddMetadata("bookingId", bookingID)
	params.AddMetadata("userId", userID)

	intent, err := paymentintent.New(params)
	if err != nil {
		zap.L().Error("Stripe payment intent creation failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentCapture{
		Reference:    intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func toMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
