// Package payment adapts the Stripe-hosted checkout to the narrow session
// contract the usecase layer depends on. Amounts cross this boundary in
// minor currency units both ways.
package payment

import (
	"context"

	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(cfg config.Config) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)
	return &StripeGateway{api: api, currency: cfg.Shop.Currency}
}

func (g *StripeGateway) CreateSession(ctx context.Context, input shared.CreateSessionInput) (*shared.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params:        stripe.Params{Context: ctx},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(input.CustomerEmail),
		SuccessURL:    stripe.String(input.SuccessURL),
		CancelURL:     stripe.String(input.CancelURL),
	}

	for _, line := range input.Lines {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(g.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
				UnitAmount: stripe.Int64(line.UnitAmountPence),
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	for k, v := range input.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to create checkout session")
	}

	return &shared.PaymentSession{ID: session.ID, URL: session.URL}, nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*shared.SessionDetails, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}
	params.AddExpand("line_items")

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to retrieve checkout session")
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	details := &shared.SessionDetails{
		ID:               session.ID,
		Paid:             session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		CustomerEmail:    email,
		Metadata:         session.Metadata,
		AmountTotalPence: session.AmountTotal,
	}

	if session.LineItems != nil {
		for _, li := range session.LineItems.Data {
			details.Lines = append(details.Lines, shared.SessionLine{
				Description:      li.Description,
				Quantity:         li.Quantity,
				AmountTotalPence: li.AmountTotal,
			})
		}
	}

	return details, nil
}
