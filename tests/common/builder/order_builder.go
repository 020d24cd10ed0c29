//go:build unit || e2e

package builder

import (
	"time"

	"github.com/cermartin/sr/internal/domain/order"
	"github.com/cermartin/sr/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	Reference        string
	Email            string
	FirstName        string
	LastName         string
	Lines            []order.Line
	SubtotalPence    int64
	ShippingPence    int64
	PaymentSessionID string
	CreatedAt        time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Reference: "A1B2C3D4",
		Email:     "buyer@example.com",
		FirstName: "Noah",
		LastName:  "Price",
		Lines: []order.Line{
			{ProductName: "Nordic River Coffee Table", VariantName: "Natural Walnut", Quantity: 1, UnitPence: 20000},
		},
		SubtotalPence:    20000,
		ShippingPence:    0,
		PaymentSessionID: "cs_test_123",
		CreatedAt:        time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() *order.Order {
	return &order.Order{
		ID:               uuid.New(),
		Reference:        b.Reference,
		Email:            b.Email,
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Lines:            b.Lines,
		SubtotalPence:    b.SubtotalPence,
		ShippingPence:    b.ShippingPence,
		TotalPence:       b.SubtotalPence + b.ShippingPence,
		PaymentSessionID: b.PaymentSessionID,
		CreatedAt:        b.CreatedAt,
	}
}

// BuildSessionDetails shapes the provider read-back that would reconcile
// into the built order.
func (b *OrderBuilder) BuildSessionDetails() *shared.SessionDetails {
	lines := make([]shared.SessionLine, 0, len(b.Lines)+1)
	for _, l := range b.Lines {
		desc := l.ProductName
		if l.VariantName != "" {
			desc = l.ProductName + " — " + l.VariantName
		}
		lines = append(lines, shared.SessionLine{
			Description:      desc,
			Quantity:         int64(l.Quantity),
			AmountTotalPence: l.LinePence(),
		})
	}
	if b.ShippingPence > 0 {
		lines = append(lines, shared.SessionLine{
			Description:      "Shipping",
			Quantity:         1,
			AmountTotalPence: b.ShippingPence,
		})
	}

	return &shared.SessionDetails{
		ID:            b.PaymentSessionID,
		Paid:          true,
		CustomerEmail: b.Email,
		Metadata: map[string]string{
			"firstName": b.FirstName,
			"lastName":  b.LastName,
		},
		AmountTotalPence: b.SubtotalPence + b.ShippingPence,
		Lines:            lines,
	}
}
