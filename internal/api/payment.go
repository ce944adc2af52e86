package api

import (
	"context"
	"fmt"
	"net/http"
)

type paymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}

func (p *paymentIntent) checkShape() error {
	if p.ClientSecret == "" {
		return fmt.Errorf("%w: payment intent without client secret", ErrMalformedResponse)
	}
	return nil
}

// CreatePaymentIntent POST /api/stripe/pay，金额以分为单位。
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64) (string, error) {
	body := map[string]any{"amount": amountCents}
	var out paymentIntent
	err := c.doJSON(ctx, http.MethodPost, "/api/stripe/pay", nil, body, "Failed to initialize payment. Please try again.", &out)
	return out.ClientSecret, err
}
