package api

import (
	"net/http"

	resdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/response"
	"github.com/leburgeon/ecom-backapi/internal/handler/httperr"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders queries.OrderQueries
}

func NewOrderHandler(orders queries.OrderQueries) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// @Summary List the authenticated user's orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.OrderListResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var filter queries.ListOrdersFilter
	if err := bindInt32Query(c, "limit", &filter.Limit); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
		return
	}
	if err := bindInt32Query(c, "offset", &filter.Offset); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offset", nil)
		return
	}

	summaries, total, err := h.orders.ListByUser(c.Request.Context(), userID, filter)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderSummaries(summaries, total))
}

// @Summary Get one of the authenticated user's orders by number
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param number path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{number} [get]
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	summary, err := h.orders.GetByNumber(c.Request.Context(), userID, c.Param("number"))
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderSummary(summary))
}
