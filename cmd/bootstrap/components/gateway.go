package components

import (
	"github.com/leburgeon/ecom-backapi/internal/infra/paypal"
	"github.com/leburgeon/ecom-backapi/internal/pkg/config"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *paypal.Client {
				return paypal.NewClient(cfg.PayPal)
			},
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
