package commands

import (
	"context"

	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/domain/catalog"
	"github.com/cermartin/sr/internal/infra"
	"github.com/cermartin/sr/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound    = errs.New("cart not found")
	ErrProductNotFound = errs.New("product not found")
	ErrVariantNotFound = errs.New("variant not found")
)

type CartCommands interface {
	Create(ctx context.Context) (uuid.UUID, cart.State, error)
	Get(ctx context.Context, id uuid.UUID) (cart.State, error)
	AddItem(ctx context.Context, id uuid.UUID, productID, variantID string) (cart.State, error)
	SetQuantity(ctx context.Context, id uuid.UUID, key cart.Key, quantity int) (cart.State, error)
	RemoveItem(ctx context.Context, id uuid.UUID, key cart.Key) (cart.State, error)
	Clear(ctx context.Context, id uuid.UUID) (cart.State, error)
	ToggleDrawer(ctx context.Context, id uuid.UUID) (cart.State, error)
	CloseDrawer(ctx context.Context, id uuid.UUID) (cart.State, error)
}

type cartCommandsImpl struct {
	store   CartStore
	catalog *catalog.Catalog
}

func NewCartCommands(store CartStore, c *catalog.Catalog) CartCommands {
	return &cartCommandsImpl{store: store, catalog: c}
}

func (c *cartCommandsImpl) Create(ctx context.Context) (uuid.UUID, cart.State, error) {
	id, err := c.store.Create(ctx)
	if err != nil {
		return uuid.Nil, cart.State{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, cart.State{}, nil
}

func (c *cartCommandsImpl) Get(ctx context.Context, id uuid.UUID) (cart.State, error) {
	state, err := c.store.Get(ctx, id)
	if err != nil {
		return cart.State{}, c.mapStoreErr(err)
	}
	return state, nil
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, id uuid.UUID, productID, variantID string) (cart.State, error) {
	product, ok := c.catalog.FindByID(productID)
	if !ok {
		return cart.State{}, ErrProductNotFound
	}
	if variantID != "" {
		if _, ok := product.Variant(variantID); !ok {
			return cart.State{}, ErrVariantNotFound
		}
	}

	return c.update(ctx, id, func(s cart.State) cart.State {
		return s.AddItem(product, variantID)
	})
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, id uuid.UUID, key cart.Key, quantity int) (cart.State, error) {
	return c.update(ctx, id, func(s cart.State) cart.State {
		return s.SetQuantity(key, quantity)
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, id uuid.UUID, key cart.Key) (cart.State, error) {
	return c.update(ctx, id, func(s cart.State) cart.State {
		return s.RemoveItem(key)
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, id uuid.UUID) (cart.State, error) {
	return c.update(ctx, id, func(s cart.State) cart.State {
		return s.Clear()
	})
}

func (c *cartCommandsImpl) ToggleDrawer(ctx context.Context, id uuid.UUID) (cart.State, error) {
	return c.update(ctx, id, func(s cart.State) cart.State {
		return s.ToggleDrawer()
	})
}

func (c *cartCommandsImpl) CloseDrawer(ctx context.Context, id uuid.UUID) (cart.State, error) {
	return c.update(ctx, id, func(s cart.State) cart.State {
		return s.CloseDrawer()
	})
}

func (c *cartCommandsImpl) update(ctx context.Context, id uuid.UUID, fn func(cart.State) cart.State) (cart.State, error) {
	state, err := c.store.Update(ctx, id, fn)
	if err != nil {
		return cart.State{}, c.mapStoreErr(err)
	}
	return state, nil
}

func (c *cartCommandsImpl) mapStoreErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrCartNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
