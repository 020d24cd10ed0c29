package commands

import (
	"context"
	"fmt"

	"github.com/cermartin/sr/internal/domain/booking"
	"github.com/cermartin/sr/internal/pkg/async"
	"github.com/cermartin/sr/internal/pkg/clock"
	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/pkg/ref"
	"github.com/cermartin/sr/internal/usecase/shared"
)

var (
	ErrInvalidSlot     = errs.New("invalid booking slot")
	ErrSlotConflict    = errs.New("slot conflict")
	ErrBookingRejected = errs.New("booking validation failed")
	ErrCalendarFailure = errs.New("calendar call failed")
)

type BookingResult struct {
	BookingRef string
	EventID    string
}

type BookingCommands interface {
	// Submit re-checks the slot against the calendar immediately before the
	// event insert. The advisory availability read may be stale by the time
	// of submission; this check is the authoritative race guard.
	Submit(ctx context.Context, req booking.Request) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	calendar   shared.CalendarGateway
	email      shared.EmailGateway
	dispatcher async.Dispatcher
	clock      clock.Clock
	cfg        config.Config
}

func NewBookingCommands(
	calendar shared.CalendarGateway,
	email shared.EmailGateway,
	dispatcher async.Dispatcher,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		calendar:   calendar,
		email:      email,
		dispatcher: dispatcher,
		clock:      clk,
		cfg:        cfg,
	}
}

func (b *bookingCommandsImpl) Submit(ctx context.Context, req booking.Request) (*BookingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, ErrBookingRejected)
	}

	slot, err := booking.NewSlot(req.Date, req.Time, b.cfg.Calendar.TimeZone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}
	if err := slot.ValidateNotPast(b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	// Check-then-act: the final check is co-located with the write to
	// minimize the race window, not eliminate it.
	existing, err := b.calendar.ListEvents(ctx, slot.Start(), slot.End())
	if err != nil {
		return nil, errs.Mark(err, ErrCalendarFailure)
	}
	if len(existing) > 0 {
		return nil, ErrSlotConflict
	}

	bookingRef := ref.New()
	eventID, err := b.calendar.InsertEvent(ctx, shared.InsertEventInput{
		Summary:     req.EventSummary(),
		Description: req.EventDescription(bookingRef),
		Start:       slot.Start(),
		End:         slot.End(),
		TimeZone:    b.cfg.Calendar.TimeZone,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCalendarFailure)
	}

	// The calendar write already succeeded; confirmation email is
	// best-effort and never turns a booked slot into a user-facing failure.
	b.notifyGuest(req, bookingRef)

	return &BookingResult{BookingRef: bookingRef, EventID: eventID}, nil
}

func (b *bookingCommandsImpl) notifyGuest(req booking.Request, bookingRef string) {
	templateID := b.cfg.Email.BookingTemplateID
	if templateID == "" {
		return
	}

	params := map[string]string{
		"booking_ref": bookingRef,
		"to_name":     req.Name,
		"to_email":    req.Email,
		"from_name":   b.cfg.Email.FromName,
		"date":        req.Date,
		"time":        req.Time,
		"guests":      fmt.Sprintf("%d", req.Guests),
	}

	b.dispatcher.Dispatch("booking-confirmation-email", func(ctx context.Context) error {
		return b.email.Send(ctx, templateID, params)
	})
}
