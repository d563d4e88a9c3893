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

type BasketHandler struct {
	baskets commands.BasketCommands
	views   queries.BasketQueries
}

func NewBasketHandler(baskets commands.BasketCommands, views queries.BasketQueries) *BasketHandler {
	return &BasketHandler{baskets: baskets, views: views}
}

// @Summary Get the authenticated user's basket
// @Tags basket
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BasketResponse
// @Router /basket [get]
func (h *BasketHandler) Get(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	view, err := h.views.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBasketView(view))
}

// @Summary Add an item to the basket
// @Tags basket
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.BasketItemRequest true "Item"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /basket/items [post]
func (h *BasketHandler) AddItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req reqdto.BasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.baskets.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity); err != nil {
		httperr.Map(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reduce an item's quantity
// @Tags basket
// @Security BearerAuth
// @Accept json
// @Param productID path string true "Product ID"
// @Param request body reqdto.ReduceBasketItemRequest true "Reduction"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /basket/items/{productID} [patch]
func (h *BasketHandler) ReduceItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	var req reqdto.ReduceBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.baskets.ReduceItem(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		httperr.Map(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Remove an item from the basket
// @Tags basket
// @Security BearerAuth
// @Param productID path string true "Product ID"
// @Success 204 "No Content"
// @Router /basket/items/{productID} [delete]
func (h *BasketHandler) RemoveItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	if err := h.baskets.RemoveItem(c.Request.Context(), userID, productID); err != nil {
		httperr.Map(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Clear the basket
// @Tags basket
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /basket [delete]
func (h *BasketHandler) Clear(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	if err := h.baskets.Clear(c.Request.Context(), userID); err != nil {
		httperr.Map(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
