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
	"github.com/cermartin/sr/internal/usecase/shared"

	"github.com/google/uuid"
)

// ShippingLineLabel names the extra session line carrying the delivery fee.
// The reconciler matches it back out of the provider's line items by this
// exact label.
const ShippingLineLabel = "Shipping"

var (
	ErrEmptyCart           = errs.New("cart is empty")
	ErrPaymentNotCompleted = errs.New("payment not completed")
	ErrPaymentFailure      = errs.New("payment provider call failed")
	// ErrOrderPending: the payment succeeded but the order row could not be
	// written. The caller must never present this as a failed payment.
	ErrOrderPending = errs.New("order pending manual reconciliation")
)

type CheckoutContact struct {
	Email     string
	FirstName string
	LastName  string
	Address   string
	City      string
	Postcode  string
	Country   string
	Phone     string
}

type CreateSessionResult struct {
	URL       string
	SessionID string
}

type ConfirmResult struct {
	OrderRef string
	Email    string
	// Replayed is set when an order for this session already existed and no
	// new row was written.
	Replayed bool
}

type CheckoutCommands interface {
	CreateSession(ctx context.Context, cartID uuid.UUID, contact CheckoutContact, origin string) (*CreateSessionResult, error)
	GetSession(ctx context.Context, sessionID string) (*shared.SessionDetails, error)
	Confirm(ctx context.Context, sessionID string, cartID *uuid.UUID) (*ConfirmResult, error)
}

type checkoutCommandsImpl struct {
	payment  shared.PaymentGateway
	carts    CartStore
	orders   OrderRepository
	notifier *orderNotifier
	clock    clock.Clock
	policy   order.ShippingPolicy
	cfg      config.Config
}

func NewCheckoutCommands(
	payment shared.PaymentGateway,
	carts CartStore,
	orders OrderRepository,
	notifier *orderNotifier,
	clk clock.Clock,
	cfg config.Config,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		payment:  payment,
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		clock:    clk,
		policy: order.ShippingPolicy{
			FreeThresholdPence: cfg.Shop.FreeShippingThresholdPence,
			FlatFeePence:       cfg.Shop.FlatShippingPence,
		},
		cfg: cfg,
	}
}

func (c *checkoutCommandsImpl) CreateSession(ctx context.Context, cartID uuid.UUID, contact CheckoutContact, origin string) (*CreateSessionResult, error) {
	state, err := c.carts.Get(ctx, cartID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := state.Items()
	if len(items) == 0 {
		// Rejected before any provider call.
		return nil, ErrEmptyCart
	}

	subtotal := state.TotalPence()
	shipping := c.policy.FeePence(subtotal)

	lines := make([]shared.PaymentLine, 0, len(items)+1)
	for _, it := range items {
		lines = append(lines, shared.PaymentLine{
			Name:            lineName(it),
			UnitAmountPence: it.Product.PricePence(),
			Quantity:        int64(it.Quantity),
		})
	}
	if shipping > 0 {
		lines = append(lines, shared.PaymentLine{
			Name:            ShippingLineLabel,
			UnitAmountPence: shipping,
			Quantity:        1,
		})
	}

	if origin == "" {
		origin = c.cfg.Server.PublicOrigin
	}

	session, err := c.payment.CreateSession(ctx, shared.CreateSessionInput{
		Lines:         lines,
		CustomerEmail: contact.Email,
		Metadata: map[string]string{
			"firstName": contact.FirstName,
			"lastName":  contact.LastName,
			"address":   contact.Address,
			"city":      contact.City,
			"postcode":  contact.Postcode,
			"country":   contact.Country,
			"phone":     contact.Phone,
		},
		SuccessURL: origin + "/?success=true&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  origin + "/?cancelled=true",
	})
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailure)
	}

	return &CreateSessionResult{URL: session.URL, SessionID: session.ID}, nil
}

func (c *checkoutCommandsImpl) GetSession(ctx context.Context, sessionID string) (*shared.SessionDetails, error) {
	details, err := c.payment.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailure)
	}
	if !details.Paid {
		return nil, ErrPaymentNotCompleted
	}
	return details, nil
}

// Confirm reconciles a completed payment session into exactly one order
// row, then triggers buyer and seller notifications. The order is the
// source of truth; email is best-effort.
func (c *checkoutCommandsImpl) Confirm(ctx context.Context, sessionID string, cartID *uuid.UUID) (*ConfirmResult, error) {
	details, err := c.payment.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentFailure)
	}
	if !details.Paid {
		return nil, ErrPaymentNotCompleted
	}

	// Replay guard: a refresh mid-processing must not produce a second row.
	// The session id is a reconciliation aid, not a DB constraint.
	if existing, err := c.orders.FindBySessionID(ctx, sessionID); err == nil {
		return &ConfirmResult{OrderRef: existing.Reference, Email: existing.Email, Replayed: true}, nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrOrderPending)
	}

	o := c.orderFromSession(details)
	if err := o.Validate(); err != nil {
		return nil, errs.Mark(err, ErrOrderPending)
	}

	if err := c.orders.Insert(ctx, o); err != nil {
		// Money has been taken; surface processing-pending, never failure.
		return nil, errs.Mark(err, ErrOrderPending)
	}

	c.notifier.NotifyOrderPlaced(o)
	c.clearCart(ctx, cartID)

	return &ConfirmResult{OrderRef: o.Reference, Email: o.Email}, nil
}

func (c *checkoutCommandsImpl) orderFromSession(details *shared.SessionDetails) *order.Order {
	var shippingPence int64
	lines := make([]order.Line, 0, len(details.Lines))
	for _, li := range details.Lines {
		if li.Description == ShippingLineLabel {
			shippingPence += li.AmountTotalPence
			continue
		}
		qty := li.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, order.Line{
			ProductName: li.Description,
			Quantity:    int(qty),
			UnitPence:   li.AmountTotalPence / qty,
		})
	}

	subtotal := details.AmountTotalPence - shippingPence
	meta := details.Metadata

	return &order.Order{
		ID:               uuid.New(),
		Reference:        ref.New(),
		Email:            details.CustomerEmail,
		FirstName:        meta["firstName"],
		LastName:         meta["lastName"],
		Phone:            meta["phone"],
		Address:          meta["address"],
		City:             meta["city"],
		Postcode:         meta["postcode"],
		Country:          meta["country"],
		Lines:            lines,
		SubtotalPence:    subtotal,
		ShippingPence:    shippingPence,
		TotalPence:       details.AmountTotalPence,
		PaymentSessionID: details.ID,
		CreatedAt:        c.clock.Now(),
	}
}

func (c *checkoutCommandsImpl) clearCart(ctx context.Context, cartID *uuid.UUID) {
	if cartID == nil {
		return
	}
	if _, err := c.carts.Update(ctx, *cartID, func(s cart.State) cart.State {
		return s.Clear()
	}); err != nil {
		// The order stands either way; an uncleared cart self-corrects on
		// the next session.
		slog.Warn("failed to clear cart after order", "cart_id", cartID, "error", err)
	}
}

func lineName(it cart.Item) string {
	if it.VariantID == "" {
		return it.Product.Name
	}
	if v, ok := it.Product.Variant(it.VariantID); ok {
		return it.Product.Name + " — " + v.Name
	}
	return it.Product.Name
}
