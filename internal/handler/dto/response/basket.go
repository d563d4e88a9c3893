package response

import (
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
)

type BasketItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
	LineTotalCents int64     `json:"lineTotalCents"`
	Stock          int32     `json:"stock"`
}

type BasketResponse struct {
	Items      []BasketItemResponse `json:"items"`
	TotalCents int64                `json:"totalCents"`
}

func FromBasketView(view *queries.BasketView) BasketResponse {
	out := BasketResponse{
		Items:      make([]BasketItemResponse, len(view.Items)),
		TotalCents: view.TotalCents,
	}
	for i, item := range view.Items {
		out.Items[i] = BasketItemResponse{
			ProductID:      item.ProductID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			LineTotalCents: item.LineTotalCents,
			Stock:          item.Stock,
		}
	}
	return out
}
