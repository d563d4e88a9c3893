package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoItems = errors.New("order must contain at least one item")

type Order struct {
	id              uuid.UUID
	number          string
	userID          uuid.UUID
	items           []Item
	total           Money
	status          Status
	payment         Payment
	shippingAddress ShippingAddress
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSettled builds the permanent order produced by a successful capture.
// The item snapshot and total come from the pending order, never from the
// client request.
func NewSettled(number string, pending *PendingOrder, payment Payment) (*Order, error) {
	if len(pending.Items) == 0 {
		return nil, ErrNoItems
	}

	items := make([]Item, len(pending.Items))
	copy(items, pending.Items)

	return &Order{
		id:      uuid.New(),
		number:  number,
		userID:  pending.UserID,
		items:   items,
		total:   pending.Total,
		status:  StatusPaid,
		payment: payment,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	number string,
	userID uuid.UUID,
	items []Item,
	total Money,
	status Status,
	payment Payment,
	shippingAddress ShippingAddress,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:              id,
		number:          number,
		userID:          userID,
		items:           items,
		total:           total,
		status:          status,
		payment:         payment,
		shippingAddress: shippingAddress,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) Number() string                   { return o.number }
func (o *Order) UserID() uuid.UUID                { return o.userID }
func (o *Order) Items() []Item                    { return o.items }
func (o *Order) Total() Money                     { return o.total }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Payment() Payment                 { return o.payment }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
