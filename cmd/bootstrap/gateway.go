package bootstrap

import (
	"context"

	"github.com/cermartin/sr/internal/infra/calendarapi"
	"github.com/cermartin/sr/internal/infra/email"
	"github.com/cermartin/sr/internal/infra/payment"
	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			payment.NewStripeGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			NewCalendarGateway,
			fx.As(new(shared.CalendarGateway)),
		),
		fx.Annotate(
			email.NewEmailJSGateway,
			fx.As(new(shared.EmailGateway)),
		),
	),
)

func NewCalendarGateway(cfg config.Config) (*calendarapi.GoogleCalendarGateway, error) {
	return calendarapi.NewGoogleCalendarGateway(context.Background(), cfg)
}
