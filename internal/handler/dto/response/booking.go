package response

import (
	"github.com/cermartin/sr/internal/usecase/commands"
	"github.com/cermartin/sr/internal/usecase/queries"
)

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func FromAvailability(a *queries.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{Available: a.Available}
}

type BookingResponse struct {
	Success    bool   `json:"success"`
	BookingRef string `json:"bookingRef"`
	EventID    string `json:"eventId"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{Success: true, BookingRef: r.BookingRef, EventID: r.EventID}
}
