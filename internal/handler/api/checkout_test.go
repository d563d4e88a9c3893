//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/handler/api"
	resdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/response"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/tests/common/httptest"
	commandsmock "github.com/leburgeon/ecom-backapi/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	authedUserID uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout)
	s.authedUserID = uuid.New()

	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.authedUserID)
			next(c)
		}
	}
	s.router.POST("/api/orders/checkout", s.handler.Preview)
	s.router.POST("/api/orders", authed(s.handler.Initiate))
	s.router.POST("/api/orders/capture/:externalOrderID", authed(s.handler.Capture))
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func checkoutBody(productID uuid.UUID) map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"productId": productID.String(), "quantity": 2},
		},
	}
}

func (s *CheckoutHandlerTestSuite) TestPreview() {
	url := "/api/orders/checkout"
	productID := uuid.New()

	s.Run("success: returns the priced basket", func() {
		total, err := order.NewMoney(2000, "GBP")
		s.Require().NoError(err)
		s.mockCheckout.EXPECT().PreviewCheckout(gomock.Any(), []basket.Line{{ProductID: productID, Quantity: 2}}).
			Return(&commands.CheckoutPreview{
				Items: []basket.Item{{ProductID: productID, Name: "Keyboard", UnitPriceCents: 1000, Quantity: 2}},
				Total: total,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody(productID), "")

		var response resdto.CheckoutPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2000), response.TotalCents)
		s.Equal("20.00", response.Total)
		s.Equal("GBP", response.Currency)
	})

	s.Run("error: 400 for an empty basket", func() {
		s.mockCheckout.EXPECT().PreviewCheckout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrEmptyBasket)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody(productID), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Basket is empty")
	})

	s.Run("error: 404 for an unknown product", func() {
		s.mockCheckout.EXPECT().PreviewCheckout(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUnknownProduct)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody(productID), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *CheckoutHandlerTestSuite) TestInitiate() {
	url := "/api/orders"
	productID := uuid.New()

	s.Run("success: 201 with the provider response verbatim", func() {
		raw := `{"id":"TX-1","status":"CREATED","links":[]}`
		s.mockCheckout.EXPECT().InitiateCheckout(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(&commands.GatewayOrder{ID: "TX-1", Status: "CREATED", Raw: []byte(raw)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody(productID), "")
		s.Equal(http.StatusCreated, rec.Code)
		s.JSONEq(raw, rec.Body.String())
	})

	s.Run("error: 409 when stock ran out", func() {
		s.mockCheckout.EXPECT().InitiateCheckout(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(nil, commands.ErrInsufficientStock)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody(productID), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})

	s.Run("error: 502 when the provider is down", func() {
		s.mockCheckout.EXPECT().InitiateCheckout(gomock.Any(), s.authedUserID, gomock.Any()).
			Return(nil, commands.ErrPaymentGateway)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody(productID), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment provider unavailable")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"items": []map[string]any{{"productId": "not-a-uuid", "quantity": 1}}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CheckoutHandlerTestSuite) TestCapture() {
	url := "/api/orders/capture/TX-1"

	s.Run("success: 200 with the provider capture response verbatim", func() {
		raw := `{"id":"TX-1","status":"COMPLETED"}`
		s.mockCheckout.EXPECT().CaptureCheckout(gomock.Any(), s.authedUserID, "TX-1").
			Return(&commands.GatewayCapture{ID: "TX-1", Status: "COMPLETED", Raw: []byte(raw)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(raw, rec.Body.String())
	})

	s.Run("success: the provider order id is read from the path", func() {
		raw := `{"id":"9XY72884GD7865","status":"COMPLETED"}`
		s.mockCheckout.EXPECT().CaptureCheckout(gomock.Any(), s.authedUserID, "9XY72884GD7865").
			Return(&commands.GatewayCapture{ID: "9XY72884GD7865", Status: "COMPLETED", Raw: []byte(raw)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/orders/capture/9XY72884GD7865", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when no pending order exists", func() {
		s.mockCheckout.EXPECT().CaptureCheckout(gomock.Any(), s.authedUserID, "TX-1").
			Return(nil, commands.ErrNoPendingOrder)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No pending order for this transaction")
	})

	s.Run("error: 422 on purchase unit mismatch, with no detail leaked", func() {
		s.mockCheckout.EXPECT().CaptureCheckout(gomock.Any(), s.authedUserID, "TX-1").
			Return(nil, commands.ErrPurchaseUnitMismatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Order could not be verified")
		s.NotContains(rec.Body.String(), "mismatch")
	})

	s.Run("error: 502 when capture fails at the provider", func() {
		s.mockCheckout.EXPECT().CaptureCheckout(gomock.Any(), s.authedUserID, "TX-1").
			Return(nil, commands.ErrCaptureFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Payment capture failed")
	})
}
