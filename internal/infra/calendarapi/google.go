// Package calendarapi adapts the Google Calendar v3 API to the calendar
// gateway contract. The bookings calendar is the single source of truth for
// occupied sittings; there is no reservation hold, only read and insert.
package calendarapi

import (
	"context"
	"time"

	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/pkg/errs"
	"github.com/cermartin/sr/internal/usecase/shared"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type GoogleCalendarGateway struct {
	service    *calendar.Service
	calendarID string
}

func NewGoogleCalendarGateway(ctx context.Context, cfg config.Config) (*GoogleCalendarGateway, error) {
	service, err := calendar.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.Calendar.ServiceAccountJSON)),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, errs.Wrap(err, "calendar: failed to create service")
	}

	return &GoogleCalendarGateway{
		service:    service,
		calendarID: cfg.Calendar.CalendarID,
	}, nil
}

func (g *GoogleCalendarGateway) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]shared.CalendarEvent, error) {
	result, err := g.service.Events.List(g.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errs.Wrap(err, "calendar: failed to list events")
	}

	events := make([]shared.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, shared.CalendarEvent{
			ID:      item.Id,
			Summary: item.Summary,
			Start:   parseEventTime(item.Start),
			End:     parseEventTime(item.End),
		})
	}
	return events, nil
}

func (g *GoogleCalendarGateway) InsertEvent(ctx context.Context, input shared.InsertEventInput) (string, error) {
	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
	}

	created, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", errs.Wrap(err, "calendar: failed to insert event")
	}
	return created.Id, nil
}

func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	// All-day events carry a date only.
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
