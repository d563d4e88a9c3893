package components

import (
	"github.com/leburgeon/ecom-backapi/internal/infra/readstore"
	"github.com/leburgeon/ecom-backapi/internal/infra/uow"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// UnitOfWork owns the write side: all repositories are reached
		// through its transactions.
		uow.NewPostgresUoW,
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewBasketReadStore,
			fx.As(new(queries.BasketReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
