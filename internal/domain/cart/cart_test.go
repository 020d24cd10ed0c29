//go:build unit

package cart_test

import (
	"testing"

	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

var (
	table = catalog.Product{
		ID:    "1",
		Name:  "The Nordic River",
		Price: "£200",
		Variants: []catalog.Variant{
			{ID: "midnight", Name: "Midnight"},
			{ID: "deep-ocean", Name: "Deep Ocean"},
		},
	}
	coasters = catalog.Product{ID: "2", Name: "Coastal Hex", Price: "£40"}
)

func key(p catalog.Product, variantID string) cart.Key {
	return cart.Key{ProductID: p.ID, VariantID: variantID}
}

func TestAddItemMergesSameProductVariant(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight")
	s = s.AddItem(table, "midnight")

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, s.TotalItems())
}

func TestAddItemDifferentVariantsAreSeparateLines(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight")
	s = s.AddItem(table, "deep-ocean")

	assert.Len(t, s.Items(), 2)
	assert.Equal(t, 2, s.TotalItems())
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(coasters, "")
	s = s.AddItem(table, "midnight")
	s = s.AddItem(coasters, "")

	items := s.Items()
	assert.Equal(t, "2", items[0].Product.ID)
	assert.Equal(t, "1", items[1].Product.ID)
}

func TestRemoveItem(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight")
	s = s.AddItem(coasters, "")

	s = s.RemoveItem(key(table, "midnight"))

	items := s.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
}

func TestSetQuantity(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight")

	s = s.SetQuantity(key(table, "midnight"), 5)
	assert.Equal(t, 5, s.TotalItems())

	// n <= 0 removes the line; no entry with quantity <= 0 survives
	s = s.SetQuantity(key(table, "midnight"), 0)
	assert.Empty(t, s.Items())

	s = s.AddItem(table, "midnight")
	s = s.SetQuantity(key(table, "midnight"), -3)
	assert.Empty(t, s.Items())
}

func TestNoEntryEverHasNonPositiveQuantity(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight")
	s = s.AddItem(coasters, "")
	s = s.SetQuantity(key(coasters, ""), -1)
	s = s.SetQuantity(key(table, "midnight"), 3)

	for _, it := range s.Items() {
		assert.Positive(t, it.Quantity)
	}
	assert.Equal(t, 3, s.TotalItems())
}

func TestTotalPence(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight") // £200
	s = s.AddItem(coasters, "")      // £40
	s = s.SetQuantity(key(coasters, ""), 2)

	assert.Equal(t, int64(28000), s.TotalPence())
}

func TestTotalPriceInvariantUnderReordering(t *testing.T) {
	a := cart.State{}
	a = a.AddItem(table, "midnight")
	a = a.AddItem(coasters, "")
	a = a.AddItem(table, "midnight")

	b := cart.State{}
	b = b.AddItem(coasters, "")
	b = b.AddItem(table, "midnight")
	b = b.AddItem(table, "midnight")

	assert.Equal(t, a.TotalPence(), b.TotalPence())
	assert.Equal(t, a.TotalItems(), b.TotalItems())
}

func TestClearKeepsDrawerState(t *testing.T) {
	s := cart.State{}
	s = s.AddItem(table, "midnight")
	s = s.ToggleDrawer()

	s = s.Clear()
	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalPence())
	assert.True(t, s.DrawerOpen())
}

func TestDrawerToggleAndClose(t *testing.T) {
	s := cart.State{}
	assert.False(t, s.DrawerOpen())

	s = s.ToggleDrawer()
	assert.True(t, s.DrawerOpen())

	s = s.ToggleDrawer()
	assert.False(t, s.DrawerOpen())

	s = s.ToggleDrawer()
	s = s.CloseDrawer()
	assert.False(t, s.DrawerOpen())
}

func TestSnapshotsAreImmutable(t *testing.T) {
	before := cart.State{}.AddItem(table, "midnight")

	after := before.SetQuantity(key(table, "midnight"), 9)
	assert.Equal(t, 1, before.TotalItems())
	assert.Equal(t, 9, after.TotalItems())

	// Mutating a returned slice must not leak into the snapshot.
	items := before.Items()
	items[0].Quantity = 42
	assert.Equal(t, 1, before.TotalItems())
}
