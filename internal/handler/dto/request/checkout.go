package request

import (
	"github.com/leburgeon/ecom-backapi/internal/domain/basket"

	"github.com/google/uuid"
)

type CheckoutLine struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest carries the raw basket lines the client wants to buy.
// Prices never come from the client; they are resolved server-side.
type CheckoutRequest struct {
	Items []CheckoutLine `json:"items" binding:"required,dive"`
}

func (r CheckoutRequest) ToLines() []basket.Line {
	lines := make([]basket.Line, len(r.Items))
	for i, item := range r.Items {
		lines[i] = basket.Line{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return lines
}
