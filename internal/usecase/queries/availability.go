package queries

import (
	"context"

	"github.com/cermartin/sr/internal/domain/booking"
	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/usecase/shared"
)

// Availability is advisory: it drives the UI affordance only. The booking
// submitter re-checks authoritatively at write time, because this read and
// the eventual write are not atomic.
type Availability struct {
	Available bool `json:"available"`
}

type AvailabilityQueries interface {
	Check(ctx context.Context, date, startTime string) (*Availability, error)
}

type availabilityQueriesImpl struct {
	calendar shared.CalendarGateway
	timeZone string
}

func NewAvailabilityQueries(calendar shared.CalendarGateway, cfg config.Config) AvailabilityQueries {
	return &availabilityQueriesImpl{
		calendar: calendar,
		timeZone: cfg.Calendar.TimeZone,
	}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, date, startTime string) (*Availability, error) {
	slot, err := booking.NewSlot(date, startTime, q.timeZone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSlot)
	}

	events, err := q.calendar.ListEvents(ctx, slot.Start(), slot.End())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderFailure)
	}

	return &Availability{Available: len(events) == 0}, nil
}
