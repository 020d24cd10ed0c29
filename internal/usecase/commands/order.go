package commands

import (
	"context"
	"log/slog"

	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/domain/order"
	"github.com/cermartin/sr/internal/infra"
	"github.com/cermartin/sr/internal/pkg/clock"
	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/pkg/ref"

	"github.com/google/uuid"
)

// PlaceOrderInput is the direct (card form) checkout variant: the order is
// persisted with last-4 provenance and no payment session.
type PlaceOrderInput struct {
	CartID       uuid.UUID
	Contact      CheckoutContact
	CardLastFour string
}

type PlaceOrderResult struct {
	OrderRef string
	Email    string
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
}

type orderCommandsImpl struct {
	carts    CartStore
	orders   OrderRepository
	notifier *orderNotifier
	clock    clock.Clock
	policy   order.ShippingPolicy
}

func NewOrderCommands(
	carts CartStore,
	orders OrderRepository,
	notifier *orderNotifier,
	clk clock.Clock,
	cfg config.Config,
) OrderCommands {
	return &orderCommandsImpl{
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		clock:    clk,
		policy: order.ShippingPolicy{
			FreeThresholdPence: cfg.Shop.FreeShippingThresholdPence,
			FlatFeePence:       cfg.Shop.FlatShippingPence,
		},
	}
}

func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	state, err := c.carts.Get(ctx, input.CartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := state.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]order.Line, len(items))
	for i, it := range items {
		variantName := ""
		if v, ok := it.Product.Variant(it.VariantID); ok {
			variantName = v.Name
		}
		lines[i] = order.Line{
			ProductName: it.Product.Name,
			VariantName: variantName,
			Quantity:    it.Quantity,
			UnitPence:   it.Product.PricePence(),
		}
	}

	subtotal := state.TotalPence()
	shipping := c.policy.FeePence(subtotal)
	contact := input.Contact

	o := &order.Order{
		ID:            uuid.New(),
		Reference:     ref.New(),
		Email:         contact.Email,
		FirstName:     contact.FirstName,
		LastName:      contact.LastName,
		Phone:         contact.Phone,
		Address:       contact.Address,
		City:          contact.City,
		Postcode:      contact.Postcode,
		Country:       contact.Country,
		Lines:         lines,
		SubtotalPence: subtotal,
		ShippingPence: shipping,
		TotalPence:    subtotal + shipping,
		CardLastFour:  input.CardLastFour,
		CreatedAt:     c.clock.Now(),
	}
	if err := o.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.orders.Insert(ctx, o); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.notifier.NotifyOrderPlaced(o)

	if _, err := c.carts.Update(ctx, input.CartID, func(s cart.State) cart.State {
		return s.Clear()
	}); err != nil {
		slog.Warn("failed to clear cart after order", "cart_id", input.CartID, "error", err)
	}

	return &PlaceOrderResult{OrderRef: o.Reference, Email: o.Email}, nil
}
