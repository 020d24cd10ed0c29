// Package order models a placed order. Orders are created exactly once per
// successful checkout, persisted to external storage, and never mutated or
// deleted afterwards.
package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines        = errors.New("order has no lines")
	ErrTotalsMismatch = errors.New("total must equal subtotal plus shipping")
)

type Line struct {
	ProductName string
	VariantName string // empty when the product has no variant
	Quantity    int
	UnitPence   int64
}

func (l Line) LinePence() int64 {
	return l.UnitPence * int64(l.Quantity)
}

// Order provenance is one of two flow variants: a payment-session id for
// hosted checkout, or the card's last four digits for the direct form.
type Order struct {
	ID               uuid.UUID
	Reference        string
	Email            string
	FirstName        string
	LastName         string
	Phone            string
	Address          string
	City             string
	Postcode         string
	Country          string
	Lines            []Line
	SubtotalPence    int64
	ShippingPence    int64
	TotalPence       int64
	PaymentSessionID string
	CardLastFour     string
	CreatedAt        time.Time
}

func (o *Order) Validate() error {
	if len(o.Lines) == 0 {
		return ErrNoLines
	}
	if o.TotalPence != o.SubtotalPence+o.ShippingPence {
		return ErrTotalsMismatch
	}
	return nil
}
