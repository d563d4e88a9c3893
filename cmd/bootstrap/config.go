package bootstrap

import (
	"github.com/leburgeon/ecom-backapi/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
