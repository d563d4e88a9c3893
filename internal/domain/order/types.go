package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Item is a priced snapshot of one basket line, frozen at checkout initiation.
// The same shape is used by pending orders and permanent orders.
type Item struct {
	ProductID      uuid.UUID `json:"productId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
}

type Payment struct {
	Method         string `json:"method"`
	ProviderStatus string `json:"providerStatus"`
	TransactionID  string `json:"transactionId"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PendingOrder is the reservation record: a short-lived hold binding a user,
// a priced item snapshot, and the gateway transaction id until settlement or
// reclamation consumes it.
type PendingOrder struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	Items                []Item
	Total                Money
	PaymentTransactionID string
	ExpiresAt            time.Time
	CreatedAt            time.Time
}

func (p *PendingOrder) HasExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
