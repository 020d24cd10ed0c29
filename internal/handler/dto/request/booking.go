package request

import (
	"strings"

	"github.com/cermartin/sr/internal/domain/booking"
)

type CreateBookingRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone,omitempty"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1,max=12"`
	Notes  string `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToDomain() booking.Request {
	return booking.Request{
		Name:   strings.TrimSpace(r.Name),
		Email:  strings.TrimSpace(r.Email),
		Phone:  strings.TrimSpace(r.Phone),
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.Guests,
		Notes:  strings.TrimSpace(r.Notes),
	}
}
