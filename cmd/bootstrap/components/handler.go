package components

import (
	"github.com/cermartin/sr/internal/handler"
	"github.com/cermartin/sr/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewBookingHandler,
		api.NewCheckoutHandler,
	),
	fx.Invoke(handler.NewRouter),
)
