//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/leburgeon/ecom-backapi/internal/handler/api"
	resdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/response"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"
	"github.com/leburgeon/ecom-backapi/tests/common/httptest"
	commandsmock "github.com/leburgeon/ecom-backapi/tests/mock/commands"
	queriesmock "github.com/leburgeon/ecom-backapi/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/products", s.handler.List)
	s.router.GET("/api/products/:id", s.handler.GetByID)
	s.router.POST("/api/products", s.handler.Create)
	s.router.POST("/api/products/:id/stock", s.handler.AddStock)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestList() {
	s.Run("success: returns the catalog page", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListProductsFilter{Search: "key", Limit: 10}).
			Return([]queries.ProductSummary{
				{ID: uuid.New(), Name: "Keyboard", PriceCents: 4999, Stock: 10},
			}, int64(1), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products?search=key&limit=10", nil, "")

		var response resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.Total)
		s.Len(response.Products, 1)
	})

	s.Run("error: 400 for a non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})
}

func (s *ProductHandlerTestSuite) TestGetByID() {
	productID := uuid.New()

	s.Run("success: returns the detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), productID).
			Return(&queries.ProductDetail{ID: productID, Name: "Keyboard", PriceCents: 4999, Stock: 10}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/"+productID.String(), nil, "")

		var response resdto.ProductDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(productID, response.ID)
	})

	s.Run("error: 404 for a missing product", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), productID).
			Return(nil, queries.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/"+productID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID")
	})
}

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/api/products"
	reqBody := map[string]any{
		"name":       "Keyboard",
		"priceCents": 4999,
		"stock":      10,
		"seller":     "Acme",
	}

	s.Run("success: 201 with the new id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input commands.CreateProductInput) (uuid.UUID, error) {
				s.Equal("Keyboard", input.Name)
				s.Equal(int64(4999), input.PriceCents)
				return newID, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), newID.String())
	})

	s.Run("error: 400 when required fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"priceCents": 4999}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ProductHandlerTestSuite) TestAddStock() {
	productID := uuid.New()
	url := "/api/products/" + productID.String() + "/stock"

	s.Run("success: 204 on restock", func() {
		s.mockCommands.EXPECT().AddStock(gomock.Any(), productID, int32(5)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"quantity": 5}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for a missing product", func() {
		s.mockCommands.EXPECT().AddStock(gomock.Any(), productID, int32(5)).
			Return(commands.ErrUnknownProduct)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"quantity": 5}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 for a non-positive quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"quantity": 0}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
