// Package cart implements the shopping-cart state container. Every
// operation returns a fresh snapshot; entries are replaced by key, never
// mutated in place. One cart belongs to one browser session, so the state
// itself needs no locking; the store that holds carts guards the map.
package cart

import (
	"github.com/cermartin/sr/internal/domain/catalog"
)

// Key identifies a line: the same product in two variants is two lines,
// the same product+variant added twice is one line with a higher quantity.
type Key struct {
	ProductID string
	VariantID string
}

type Item struct {
	Product   catalog.Product
	VariantID string
	Quantity  int
}

func (i Item) Key() Key {
	return Key{ProductID: i.Product.ID, VariantID: i.VariantID}
}

// LinePence is the line total in pence.
func (i Item) LinePence() int64 {
	return i.Product.PricePence() * int64(i.Quantity)
}

// State is an immutable cart snapshot. The zero value is an empty, closed
// cart.
type State struct {
	items      []Item
	drawerOpen bool
}

// Items returns the lines in insertion order.
func (s State) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s State) DrawerOpen() bool {
	return s.drawerOpen
}

func (s State) Find(key Key) (Item, bool) {
	for _, it := range s.items {
		if it.Key() == key {
			return it, true
		}
	}
	return Item{}, false
}

// AddItem increments an existing product+variant line or appends a new one
// with quantity 1.
func (s State) AddItem(product catalog.Product, variantID string) State {
	key := Key{ProductID: product.ID, VariantID: variantID}

	if _, ok := s.Find(key); ok {
		return s.mapItems(func(it Item) (Item, bool) {
			if it.Key() == key {
				it.Quantity++
			}
			return it, true
		})
	}

	next := s.Items()
	next = append(next, Item{Product: product, VariantID: variantID, Quantity: 1})
	return State{items: next, drawerOpen: s.drawerOpen}
}

func (s State) RemoveItem(key Key) State {
	return s.mapItems(func(it Item) (Item, bool) {
		return it, it.Key() != key
	})
}

// SetQuantity replaces a line's quantity; n <= 0 removes the line.
func (s State) SetQuantity(key Key, n int) State {
	if n <= 0 {
		return s.RemoveItem(key)
	}
	return s.mapItems(func(it Item) (Item, bool) {
		if it.Key() == key {
			it.Quantity = n
		}
		return it, true
	})
}

func (s State) Clear() State {
	return State{drawerOpen: s.drawerOpen}
}

func (s State) ToggleDrawer() State {
	return State{items: s.items, drawerOpen: !s.drawerOpen}
}

func (s State) CloseDrawer() State {
	return State{items: s.items, drawerOpen: false}
}

// TotalItems is the sum of line quantities, computed fresh on every read.
func (s State) TotalItems() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPence is the cart subtotal, computed fresh on every read through the
// catalog display-price parser.
func (s State) TotalPence() int64 {
	var total int64
	for _, it := range s.items {
		total += it.LinePence()
	}
	return total
}

func (s State) mapItems(fn func(Item) (Item, bool)) State {
	next := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if mapped, keep := fn(it); keep {
			next = append(next, mapped)
		}
	}
	return State{items: next, drawerOpen: s.drawerOpen}
}
