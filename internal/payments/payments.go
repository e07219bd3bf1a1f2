package payments

import (
	"context"
	"math"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client wraps payment-intent creation against Stripe. All charges are
// card payments in USD. Each Client owns its own API configuration;
// nothing is kept in package globals, so two clients with different keys
// cannot rewire each other.
type Client struct {
	api *client.API
}

func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// MinorUnits converts a decimal price to an integer cent amount.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates an intent for the given price and returns the
// client-side confirmation secret. Callers never see the full intent.
func (c *Client) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
