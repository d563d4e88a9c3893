package api

import (
	"net/http"

	reqdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/request"
	resdto "github.com/leburgeon/ecom-backapi/internal/handler/dto/response"
	"github.com/leburgeon/ecom-backapi/internal/handler/httperr"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Price a basket without reserving stock
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Basket lines"
// @Success 200 {object} resdto.CheckoutPreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/checkout [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	preview, err := h.checkout.PreviewCheckout(c.Request.Context(), req.ToLines())
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutPreview(preview))
}

// @Summary Create a payment order and reserve stock
// @Description Returns the payment provider's create-order response verbatim.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Basket lines"
// @Success 201 {object} object
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /orders [post]
func (h *CheckoutHandler) Initiate(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	gatewayOrder, err := h.checkout.InitiateCheckout(c.Request.Context(), userID, req.ToLines())
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.Data(http.StatusCreated, "application/json", gatewayOrder.Raw)
}

// @Summary Capture an approved payment order and settle it
// @Description Returns the payment provider's capture response verbatim.
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param externalOrderID path string true "Provider order id"
// @Success 200 {object} object
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /orders/capture/{externalOrderID} [post]
func (h *CheckoutHandler) Capture(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	transactionID := c.Param("externalOrderID")
	if transactionID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing external order id"), "Missing order id", nil)
		return
	}

	capture, err := h.checkout.CaptureCheckout(c.Request.Context(), userID, transactionID)
	if err != nil {
		httperr.Map(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", capture.Raw)
}
