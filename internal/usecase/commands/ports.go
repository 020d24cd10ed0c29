package commands

import (
	"context"

	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/domain/order"

	"github.com/google/uuid"
)

// CartStore holds live cart snapshots keyed by cart id. Each cart is owned
// by a single browser session; the store only guards the map itself.
type CartStore interface {
	Create(ctx context.Context) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (cart.State, error)
	// Update applies fn to the current snapshot and stores the result.
	Update(ctx context.Context, id uuid.UUID, fn func(cart.State) cart.State) (cart.State, error)
}

// OrderRepository is insert-only: nothing in this system updates or deletes
// an order after it is written.
type OrderRepository interface {
	Insert(ctx context.Context, o *order.Order) error
	// FindBySessionID backs the confirm replay guard. A missing order is a
	// NOT_FOUND repository error, not a nil result.
	FindBySessionID(ctx context.Context, sessionID string) (*order.Order, error)
}
