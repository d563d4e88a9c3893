package components

import (
	"github.com/leburgeon/ecom-backapi/internal/handler"
	"github.com/leburgeon/ecom-backapi/internal/handler/api"
	"github.com/leburgeon/ecom-backapi/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewBasketHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			product *api.ProductHandler,
			basket *api.BasketHandler,
			checkout *api.CheckoutHandler,
			order *api.OrderHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:     auth,
				Product:  product,
				Basket:   basket,
				Checkout: checkout,
				Order:    order,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
