package request

import (
	"github.com/google/uuid"
)

type BasketItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,min=1"`
}

type ReduceBasketItemRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}
