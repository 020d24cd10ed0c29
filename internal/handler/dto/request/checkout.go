package request

import (
	"github.com/cermartin/sr/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCheckoutSessionRequest struct {
	CartID    uuid.UUID `json:"cartId" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	FirstName string    `json:"firstName" binding:"required"`
	LastName  string    `json:"lastName" binding:"required"`
	Address   string    `json:"address" binding:"required"`
	City      string    `json:"city" binding:"required"`
	Postcode  string    `json:"postcode" binding:"required"`
	Country   string    `json:"country" binding:"required"`
	Phone     string    `json:"phone,omitempty"`
}

func (r CreateCheckoutSessionRequest) Contact() commands.CheckoutContact {
	return commands.CheckoutContact{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		Postcode:  r.Postcode,
		Country:   r.Country,
		Phone:     r.Phone,
	}
}

type ConfirmCheckoutRequest struct {
	SessionID string     `json:"sessionId" binding:"required"`
	CartID    *uuid.UUID `json:"cartId,omitempty"`
}

type PlaceOrderRequest struct {
	CartID       uuid.UUID `json:"cartId" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	FirstName    string    `json:"firstName" binding:"required"`
	LastName     string    `json:"lastName" binding:"required"`
	Address      string    `json:"address" binding:"required"`
	City         string    `json:"city" binding:"required"`
	Postcode     string    `json:"postcode" binding:"required"`
	Country      string    `json:"country" binding:"required"`
	Phone        string    `json:"phone,omitempty"`
	CardLastFour string    `json:"cardLastFour" binding:"required,len=4,numeric"`
}

func (r PlaceOrderRequest) ToInput() commands.PlaceOrderInput {
	return commands.PlaceOrderInput{
		CartID: r.CartID,
		Contact: commands.CheckoutContact{
			Email:     r.Email,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Address:   r.Address,
			City:      r.City,
			Postcode:  r.Postcode,
			Country:   r.Country,
			Phone:     r.Phone,
		},
		CardLastFour: r.CardLastFour,
	}
}
