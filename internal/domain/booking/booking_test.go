//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/cermartin/sr/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tz = "Europe/London"

func TestNewSlot(t *testing.T) {
	slot, err := booking.NewSlot("2026-09-12", "08:30", tz)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-12", slot.Date())
	assert.Equal(t, "08:30", slot.Time())
	assert.Equal(t, booking.SittingDuration, slot.End().Sub(slot.Start()))

	loc, _ := time.LoadLocation(tz)
	assert.Equal(t, time.Date(2026, 9, 12, 8, 30, 0, 0, loc), slot.Start())
	assert.Equal(t, time.Date(2026, 9, 12, 10, 0, 0, 0, loc), slot.End())
}

func TestNewSlotRejectsUnofferedTime(t *testing.T) {
	_, err := booking.NewSlot("2026-09-12", "12:00", tz)
	assert.ErrorIs(t, err, booking.ErrInvalidTime)

	_, err = booking.NewSlot("2026-09-12", "08:15", tz)
	assert.ErrorIs(t, err, booking.ErrInvalidTime)
}

func TestNewSlotRejectsBadDate(t *testing.T) {
	_, err := booking.NewSlot("12/09/2026", "08:30", tz)
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}

func TestValidateNotPast(t *testing.T) {
	slot, err := booking.NewSlot("2026-09-12", "09:00", tz)
	require.NoError(t, err)

	before := slot.Start().Add(-time.Hour)
	assert.NoError(t, slot.ValidateNotPast(before))

	after := slot.Start().Add(time.Minute)
	assert.ErrorIs(t, slot.ValidateNotPast(after), booking.ErrSlotInPast)
}

func TestOverlaps(t *testing.T) {
	slot, err := booking.NewSlot("2026-09-12", "09:00", tz)
	require.NoError(t, err)

	// Event fully inside the sitting
	assert.True(t, slot.Overlaps(slot.Start().Add(10*time.Minute), slot.Start().Add(20*time.Minute)))
	// Event straddling the start
	assert.True(t, slot.Overlaps(slot.Start().Add(-time.Hour), slot.Start().Add(time.Minute)))
	// Event ending exactly at the start does not conflict
	assert.False(t, slot.Overlaps(slot.Start().Add(-time.Hour), slot.Start()))
	// Event starting exactly at the end does not conflict
	assert.False(t, slot.Overlaps(slot.End(), slot.End().Add(time.Hour)))
}

func TestRequestValidate(t *testing.T) {
	valid := booking.Request{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Date:   "2026-09-12",
		Time:   "08:30",
		Guests: 2,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *booking.Request)
		wantErr error
	}{
		{"missing name", func(r *booking.Request) { r.Name = "  " }, booking.ErrNameRequired},
		{"missing email", func(r *booking.Request) { r.Email = "" }, booking.ErrEmailRequired},
		{"zero guests", func(r *booking.Request) { r.Guests = 0 }, booking.ErrGuestsOutOfRange},
		{"too many guests", func(r *booking.Request) { r.Guests = 13 }, booking.ErrGuestsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.ErrorIs(t, r.Validate(), tt.wantErr)
		})
	}
}

func TestEventSummaryAndDescription(t *testing.T) {
	req := booking.Request{Name: "Ada", Email: "ada@example.com", Guests: 1}
	assert.Equal(t, "☕ Breakfast — Ada (1 guest)", req.EventSummary())

	req.Guests = 4
	assert.Equal(t, "☕ Breakfast — Ada (4 guests)", req.EventSummary())

	desc := req.EventDescription("AB12CD34")
	assert.Contains(t, desc, "Booking Ref: AB12CD34")
	assert.Contains(t, desc, "Phone: Not provided")
	assert.Contains(t, desc, "Notes: None")
	assert.Contains(t, desc, "Guests: 4")
}
