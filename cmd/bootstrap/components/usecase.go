package components

import (
	"github.com/cermartin/sr/internal/pkg/async"
	"github.com/cermartin/sr/internal/pkg/clock"
	"github.com/cermartin/sr/internal/usecase/commands"
	"github.com/cermartin/sr/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	async.NewGoroutineDispatcher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderNotifier,
		commands.NewCartCommands,
		commands.NewBookingCommands,
		commands.NewCheckoutCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewAvailabilityQueries,
	),
)
