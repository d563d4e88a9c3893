package commands

import (
	"context"
	"encoding/json"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/domain/order"
)

// PaymentGateway is the external payment processor, treated as a black box.
// Raw responses are passed through to clients verbatim; the coordinator only
// interprets the fields it validates against the reservation record.
type PaymentGateway interface {
	// CreateOrder registers the priced basket with the processor and returns
	// its transaction id plus the raw client-facing response.
	CreateOrder(ctx context.Context, processed *basket.Processed, total order.Money) (*GatewayOrder, error)
	// GetOrder fetches the processor's current view of an order, including
	// the purchase units validated during capture.
	GetOrder(ctx context.Context, transactionID string) (*GatewayOrderDetail, error)
	// CaptureOrder finalizes payment for an approved order.
	CaptureOrder(ctx context.Context, transactionID string) (*GatewayCapture, error)
}

type GatewayOrder struct {
	ID     string
	Status string
	Raw    json.RawMessage
}

type GatewayOrderDetail struct {
	ID            string
	Status        string
	PurchaseUnits []PurchaseUnit
}

type GatewayCapture struct {
	ID     string
	Status string
	Raw    json.RawMessage
}

// PurchaseUnit mirrors the processor's order breakdown: one amount plus the
// line items it was built from. SKU carries the product id, which is the
// stable per-item key capture validation matches on.
type PurchaseUnit struct {
	Amount PurchaseAmount
	Items  []PurchaseUnitItem
}

type PurchaseAmount struct {
	Value        string
	CurrencyCode string
}

type PurchaseUnitItem struct {
	SKU        string
	Name       string
	Quantity   string
	UnitAmount PurchaseAmount
}
