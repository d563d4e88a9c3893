package httperr

import (
	"errors"
	"net/http"

	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// Client messages stay generic on purpose: validation mismatches and gateway
// details are logged server-side but never echoed back.
var mappings = []mapping{
	{commands.ErrValidationFailed, http.StatusBadRequest, "Invalid request data"},
	{commands.ErrInvalidQuantity, http.StatusBadRequest, "Invalid request data"},
	{commands.ErrEmptyBasket, http.StatusBadRequest, "Basket is empty"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUnknownProduct, http.StatusNotFound, "Product not found"},
	{commands.ErrNoPendingOrder, http.StatusNotFound, "No pending order for this transaction"},
	{queries.ErrNotFound, http.StatusNotFound, "Resource not found"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{commands.ErrInsufficientStock, http.StatusConflict, "Insufficient stock"},
	{commands.ErrPurchaseUnitMismatch, http.StatusUnprocessableEntity, "Order could not be verified"},
	{commands.ErrPaymentGateway, http.StatusBadGateway, "Payment provider unavailable"},
	{commands.ErrCaptureFailed, http.StatusBadGateway, "Payment capture failed"},
	{commands.ErrSettlementInconsistency, http.StatusInternalServerError, "Internal server error"},
	{commands.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
	{queries.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
}

// Map translates a use-case error into an HTTP response.
func Map(c *gin.Context, err error) {
	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
