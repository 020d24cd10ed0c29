package response

import (
	"github.com/cermartin/sr/internal/domain/cart"
	"github.com/cermartin/sr/internal/domain/catalog"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	VariantID   string `json:"variantId,omitempty"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPence   int64  `json:"unitPence"`
	UnitPrice   string `json:"unitPrice"`
	LinePence   int64  `json:"linePence"`
}

type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPence int64              `json:"totalPence"`
	TotalPrice string             `json:"totalPrice"`
	DrawerOpen bool               `json:"drawerOpen"`
}

func FromCartState(id uuid.UUID, state cart.State) *CartResponse {
	items := state.Items()
	lines := make([]CartItemResponse, len(items))
	for i, it := range items {
		variantName := ""
		if v, ok := it.Product.Variant(it.VariantID); ok {
			variantName = v.Name
		}
		lines[i] = CartItemResponse{
			ProductID:   it.Product.ID,
			ProductName: it.Product.Name,
			VariantID:   it.VariantID,
			VariantName: variantName,
			Quantity:    it.Quantity,
			UnitPence:   it.Product.PricePence(),
			UnitPrice:   it.Product.Price,
			LinePence:   it.LinePence(),
		}
	}

	return &CartResponse{
		ID:         id,
		Items:      lines,
		TotalItems: state.TotalItems(),
		TotalPence: state.TotalPence(),
		TotalPrice: catalog.FormatPence(state.TotalPence()),
		DrawerOpen: state.DrawerOpen(),
	}
}
