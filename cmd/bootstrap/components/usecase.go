package components

import (
	"github.com/leburgeon/ecom-backapi/internal/pkg/clock"
	"github.com/leburgeon/ecom-backapi/internal/pkg/config"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBasketCommands,
		commands.NewProductCommands,
		func(
			uow shared.UnitOfWork,
			gateway commands.PaymentGateway,
			clk clock.Clock,
			cfg config.Config,
		) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(uow, gateway, clk,
				cfg.Checkout.Currency, cfg.Checkout.ReservationTTL)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewOrderQueries,
		queries.NewBasketQueries,
		queries.NewUserQueries,
	),
)
