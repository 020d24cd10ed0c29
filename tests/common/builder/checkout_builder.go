//go:build unit || e2e

package builder

import (
	reqdto "github.com/cermartin/sr/internal/handler/dto/request"
	"github.com/cermartin/sr/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	CartID       uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Address      string
	City         string
	Postcode     string
	Country      string
	Phone        string
	CardLastFour string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		CartID:       uuid.New(),
		Email:        "buyer@example.com",
		FirstName:    "Noah",
		LastName:     "Price",
		Address:      "14 Harbour Lane",
		City:         "Bristol",
		Postcode:     "BS1 4DJ",
		Country:      "United Kingdom",
		Phone:        "07700 900456",
		CardLastFour: "4242",
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildContact() commands.CheckoutContact {
	return commands.CheckoutContact{
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Address:   b.Address,
		City:      b.City,
		Postcode:  b.Postcode,
		Country:   b.Country,
		Phone:     b.Phone,
	}
}

func (b *CheckoutBuilder) BuildCreateSessionRequestDTO() reqdto.CreateCheckoutSessionRequest {
	return reqdto.CreateCheckoutSessionRequest{
		CartID:    b.CartID,
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Address:   b.Address,
		City:      b.City,
		Postcode:  b.Postcode,
		Country:   b.Country,
		Phone:     b.Phone,
	}
}

func (b *CheckoutBuilder) BuildPlaceOrderRequestDTO() reqdto.PlaceOrderRequest {
	return reqdto.PlaceOrderRequest{
		CartID:       b.CartID,
		Email:        b.Email,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Address:      b.Address,
		City:         b.City,
		Postcode:     b.Postcode,
		Country:      b.Country,
		Phone:        b.Phone,
		CardLastFour: b.CardLastFour,
	}
}
