// Package booking models the breakfast-reservation flow: fixed morning
// sittings checked against an external calendar.
package booking

import (
	"errors"
	"fmt"
	"time"
)

// SittingDuration is the fixed length of every breakfast sitting.
const SittingDuration = 90 * time.Minute

// TimeSlots are the allowed sitting start times, local to the shop.
var TimeSlots = []string{
	"07:30", "08:00", "08:30", "09:00",
	"09:30", "10:00", "10:30", "11:00",
}

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("time is not an offered sitting")
	ErrSlotInPast      = errors.New("slot is in the past")
	ErrUnknownTimeZone = errors.New("unknown booking time zone")
)

// Slot is a concrete 90-minute sitting interval in the shop's time zone.
type Slot struct {
	date  string
	time  string
	start time.Time
	end   time.Time
}

// NewSlot builds the sitting interval for date ("2006-01-02") and one of
// the offered start times.
func NewSlot(date, startTime, timeZone string) (Slot, error) {
	if !isOfferedTime(startTime) {
		return Slot{}, ErrInvalidTime
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return Slot{}, ErrUnknownTimeZone
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", date, startTime), loc)
	if err != nil {
		return Slot{}, ErrInvalidDate
	}

	return Slot{
		date:  date,
		time:  startTime,
		start: start,
		end:   start.Add(SittingDuration),
	}, nil
}

func (s Slot) Date() string     { return s.date }
func (s Slot) Time() string     { return s.time }
func (s Slot) Start() time.Time { return s.start }
func (s Slot) End() time.Time   { return s.end }

// ValidateNotPast rejects sittings that have already started. The calendar
// would accept them; the shop would not.
func (s Slot) ValidateNotPast(now time.Time) error {
	if !s.start.After(now) {
		return ErrSlotInPast
	}
	return nil
}

// Overlaps reports whether [start, end) intersects this sitting.
func (s Slot) Overlaps(start, end time.Time) bool {
	return start.Before(s.end) && end.After(s.start)
}

func isOfferedTime(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
