package response

import (
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/usecase/commands"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	Number         string              `json:"orderNumber"`
	Status         string              `json:"status"`
	TotalCents     int64               `json:"totalCents"`
	Currency       string              `json:"currency"`
	Items          []OrderItemResponse `json:"items"`
	PaymentMethod  string              `json:"paymentMethod"`
	PaymentStatus  string              `json:"paymentStatus"`
	TransactionID  string              `json:"transactionId"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

type CheckoutPreviewResponse struct {
	Items      []OrderItemResponse `json:"items"`
	TotalCents int64               `json:"totalCents"`
	Total      string              `json:"total"`
	Currency   string              `json:"currency"`
}

func FromOrderSummary(summary *queries.OrderSummary) OrderResponse {
	out := OrderResponse{
		ID:            summary.ID,
		Number:        summary.Number,
		Status:        summary.Status.String(),
		TotalCents:    summary.TotalCents,
		Currency:      summary.Currency,
		Items:         make([]OrderItemResponse, len(summary.Items)),
		PaymentMethod: summary.Payment.Method,
		PaymentStatus: summary.Payment.ProviderStatus,
		TransactionID: summary.Payment.TransactionID,
		CreatedAt:     summary.CreatedAt,
	}
	for i, item := range summary.Items {
		out.Items[i] = fromOrderItem(item)
	}
	return out
}

func FromOrderSummaries(summaries []queries.OrderSummary, total int64) OrderListResponse {
	out := OrderListResponse{
		Orders: make([]OrderResponse, len(summaries)),
		Total:  total,
	}
	for i := range summaries {
		out.Orders[i] = FromOrderSummary(&summaries[i])
	}
	return out
}

func FromCheckoutPreview(preview *commands.CheckoutPreview) CheckoutPreviewResponse {
	out := CheckoutPreviewResponse{
		Items:      make([]OrderItemResponse, len(preview.Items)),
		TotalCents: preview.Total.Cents(),
		Total:      preview.Total.Amount(),
		Currency:   preview.Total.Currency(),
	}
	for i, item := range preview.Items {
		out.Items[i] = fromBasketItem(item)
	}
	return out
}

func fromOrderItem(item order.Item) OrderItemResponse {
	return OrderItemResponse{
		ProductID:      item.ProductID,
		Name:           item.Name,
		UnitPriceCents: item.UnitPriceCents,
		Quantity:       item.Quantity,
	}
}

func fromBasketItem(item basket.Item) OrderItemResponse {
	return OrderItemResponse{
		ProductID:      item.ProductID,
		Name:           item.Name,
		UnitPriceCents: item.UnitPriceCents,
		Quantity:       item.Quantity,
	}
}
