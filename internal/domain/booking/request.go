package booking

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinGuests = 1
	MaxGuests = 12
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrGuestsOutOfRange = errors.New("guests must be between 1 and 12")
)

// Request is a validated booking submission. It is transient: submitted
// once and not retained after the calendar write succeeds.
type Request struct {
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
	Notes  string
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmailRequired
	}
	if r.Guests < MinGuests || r.Guests > MaxGuests {
		return ErrGuestsOutOfRange
	}
	return nil
}

// EventSummary is the calendar event title shown to the shop staff.
func (r Request) EventSummary() string {
	plural := "s"
	if r.Guests == 1 {
		plural = ""
	}
	return fmt.Sprintf("☕ Breakfast — %s (%d guest%s)", r.Name, r.Guests, plural)
}

// EventDescription lays out the booking fields one per line, with the
// reference first so staff can find it at a glance.
func (r Request) EventDescription(bookingRef string) string {
	phone := r.Phone
	if phone == "" {
		phone = "Not provided"
	}
	notes := r.Notes
	if notes == "" {
		notes = "None"
	}
	return strings.Join([]string{
		"Booking Ref: " + bookingRef,
		"Name: " + r.Name,
		"Email: " + r.Email,
		"Phone: " + phone,
		fmt.Sprintf("Guests: %d", r.Guests),
		"Notes: " + notes,
	}, "\n")
}
