package basket

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrEmptyBasket = errors.New("basket is empty")

// Line is one raw basket entry as submitted by a client. The same product may
// appear on several lines; Process merges them.
type Line struct {
	ProductID uuid.UUID
	Quantity  int32
}

type UnknownProductError struct {
	ProductID uuid.UUID
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %s", e.ProductID)
}

type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int32
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
