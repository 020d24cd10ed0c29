// Package shared declares the narrow contracts this core has with its
// external collaborators: the hosted payment provider, the bookings
// calendar and the transactional email service. The usecase layers depend
// on these interfaces only; the concrete adapters live under internal/infra.
package shared

import (
	"context"
	"time"
)

type CalendarEvent struct {
	ID      string
	Summary string
	Start   time.Time
	End     time.Time
}

type InsertEventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
}

type CalendarGateway interface {
	// ListEvents returns events overlapping [timeMin, timeMax).
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]CalendarEvent, error)
	InsertEvent(ctx context.Context, input InsertEventInput) (eventID string, err error)
}

type PaymentLine struct {
	Name            string
	UnitAmountPence int64
	Quantity        int64
}

type CreateSessionInput struct {
	Lines         []PaymentLine
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

type PaymentSession struct {
	ID  string
	URL string
}

type SessionLine struct {
	Description      string
	Quantity         int64
	AmountTotalPence int64
}

// SessionDetails is the projection of a completed (or pending) checkout
// session read back from the provider.
type SessionDetails struct {
	ID               string
	Paid             bool
	CustomerEmail    string
	Metadata         map[string]string
	AmountTotalPence int64
	Lines            []SessionLine
}

type PaymentGateway interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*PaymentSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionDetails, error)
}

type EmailGateway interface {
	Send(ctx context.Context, templateID string, params map[string]string) error
}
