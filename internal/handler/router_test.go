//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/handler"
	"github.com/leburgeon/ecom-backapi/internal/handler/api"
	"github.com/leburgeon/ecom-backapi/internal/handler/middleware"
	"github.com/leburgeon/ecom-backapi/internal/pkg/config"
	"github.com/leburgeon/ecom-backapi/internal/pkg/jwt"
	"github.com/leburgeon/ecom-backapi/tests/common/httptest"
	commandsmock "github.com/leburgeon/ecom-backapi/tests/mock/commands"
	queriesmock "github.com/leburgeon/ecom-backapi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Builds the production router. Handlers are backed by expectation-free mocks;
// every route asserted here is rejected by middleware before a handler runs.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	engine := gin.New()
	h := handler.Handlers{
		Auth:     api.NewAuthHandler(commandsmock.NewMockAuthCommands(ctrl), queriesmock.NewMockUserQueries(ctrl)),
		Product:  api.NewProductHandler(commandsmock.NewMockProductCommands(ctrl), queriesmock.NewMockProductQueries(ctrl)),
		Basket:   api.NewBasketHandler(commandsmock.NewMockBasketCommands(ctrl), queriesmock.NewMockBasketQueries(ctrl)),
		Checkout: api.NewCheckoutHandler(commandsmock.NewMockCheckoutCommands(ctrl)),
		Order:    api.NewOrderHandler(queriesmock.NewMockOrderQueries(ctrl)),
	}
	authMw := middleware.NewAuthMiddleware(jwt.NewService("test-secret", time.Hour))
	handler.NewRouter(engine, config.NewTestConfig(), h, authMw)
	return engine
}

// Checkout rides under /api/orders: preview, initiation, and capture with the
// provider order id as a path parameter. A registered route answers 401
// without a token; an unregistered one answers 404.
func TestRouter_CheckoutRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"preview", http.MethodPost, "/api/orders/checkout", http.StatusUnauthorized},
		{"initiate", http.MethodPost, "/api/orders", http.StatusUnauthorized},
		{"capture", http.MethodPost, "/api/orders/capture/5O190127TN364715T", http.StatusUnauthorized},
		{"order list", http.MethodGet, "/api/orders", http.StatusUnauthorized},
		{"order detail", http.MethodGet, "/api/orders/ORD-20250314-abc123", http.StatusUnauthorized},
		{"no body-based capture route", http.MethodPost, "/api/checkout/orders/capture", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, tt.method, tt.path, nil, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
