package client

import (
	"context"
	"fmt"

	"storefront-checkout/internal/config"

	"github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error)
	ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

// LineItem is one priced cart line in minor currency units.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type CreateSessionRequest struct {
	CustomerEmail string
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CreateSessionResponse struct {
	SessionID string
	URL       string
}

type stripeClientImpl struct {
	api           *stripeclient.API
	webhookSecret string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	api := &stripeclient.API{}
	api.Init(stripeCfg.SecretKey, nil)

	return &stripeClientImpl{
		api:           api,
		webhookSecret: stripeCfg.WebhookSecret,
	}
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*CreateSessionResponse, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.CustomerEmail),
		SuccessURL:    stripe.String(req.SuccessURL),
		CancelURL:     stripe.String(req.CancelURL),
	}
	params.Context = ctx

	for _, item := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return &CreateSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (c *stripeClientImpl) ConstructWebhookEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}
