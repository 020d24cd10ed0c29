package components

import (
	infracatalog "github.com/cermartin/sr/internal/infra/catalog"
	"github.com/cermartin/sr/internal/infra/cartstore"
	"github.com/cermartin/sr/internal/infra/repository"
	"github.com/cermartin/sr/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDB,
		infracatalog.NewCatalog,
		fx.Annotate(
			cartstore.NewMemoryStore,
			fx.As(new(commands.CartStore)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
	),
)

func NewDB(pool *pgxpool.Pool) repository.DB {
	return pool
}
