//go:build unit || e2e

package builder

import (
	"github.com/cermartin/sr/internal/domain/booking"
	reqdto "github.com/cermartin/sr/internal/handler/dto/request"
)

type BookingBuilder struct {
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
	Notes  string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Name:   "Ava Thompson",
		Email:  "ava@example.com",
		Phone:  "07700 900123",
		Date:   "2030-06-15",
		Time:   "08:00",
		Guests: 2,
		Notes:  "Window table please",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() booking.Request {
	return booking.Request{
		Name:   b.Name,
		Email:  b.Email,
		Phone:  b.Phone,
		Date:   b.Date,
		Time:   b.Time,
		Guests: b.Guests,
		Notes:  b.Notes,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:   b.Name,
		Email:  b.Email,
		Phone:  b.Phone,
		Date:   b.Date,
		Time:   b.Time,
		Guests: b.Guests,
		Notes:  b.Notes,
	}
}
