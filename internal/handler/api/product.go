package api

import (
	"net/http"

	reqdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/request"
	resdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/response"
	"github.com/leburgeon/ecom-backapi/internal/handler/httperr"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	products commands.ProductCommands
	catalog  queries.ProductQueries
}

func NewProductHandler(products commands.ProductCommands, catalog queries.ProductQueries) *ProductHandler {
	return &ProductHandler{products: products, catalog: catalog}
}

// @Summary List products
// @Tags products
// @Produce json
// @Param search query string false "Name search"
// @Param category query string false "Category filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.ProductListResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter queries.ListProductsFilter
	filter.Search = c.Query("search")
	filter.Category = c.Query("category")
	if err := bindInt32Query(c, "limit", &filter.Limit); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}
	if err := bindInt32Query(c, "offset", &filter.Offset); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offset", nil)
		return
	}

	summaries, total, err := h.catalog.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductSummaries(summaries, total))
}

// @Summary Get product detail
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	detail, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductDetail(detail))
}

// @Summary Create a product
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.products.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Add stock to a product
// @Tags products
// @Security BearerAuth
// @Accept json
// @Param id path string true "Product ID"
// @Param request body reqdto.AddStockRequest true "Restock request"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/stock [post]
func (h *ProductHandler) AddStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	var req reqdto.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.products.AddStock(c.Request.Context(), id, req.Quantity); err != nil {
		httperr.Map(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
