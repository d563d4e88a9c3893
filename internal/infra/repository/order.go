package repository

import (
	"context"
	"encoding/json"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/infra"
)

// ON CONFLICT DO NOTHING keeps a number collision from poisoning the open
// transaction; the zero-row result is reported as KindDuplicateKey so the
// caller can retry with a fresh number inside the same transaction.
const insertOrderQuery = `
	INSERT INTO orders (
		id, order_number, user_id, items, total_cents, currency, status,
		payment_method, payment_provider_status, payment_transaction_id,
		shipping_full_name, shipping_address, shipping_city, shipping_postal_code,
		shipping_country, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
	ON CONFLICT (order_number) DO NOTHING`

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}

	payment := o.Payment()
	shipping := o.ShippingAddress()

	tag, err := r.db.Exec(ctx, insertOrderQuery,
		o.ID(), o.Number(), o.UserID(), items,
		o.Total().Cents(), o.Total().Currency(), string(o.Status()),
		payment.Method, payment.ProviderStatus, payment.TransactionID,
		shipping.FullName, shipping.Address, shipping.City, shipping.PostalCode,
		shipping.Country)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order number collision", nil, infra.KindDuplicateKey)
	}
	return nil
}
