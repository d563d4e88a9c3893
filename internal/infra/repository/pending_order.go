package repository

import (
	"context"
	"encoding/json"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/infra"

	"github.com/google/uuid"
)

const (
	insertPendingOrderQuery = `
		INSERT INTO pending_orders (
			id, user_id, items, total_cents, currency,
			payment_transaction_id, expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	deletePendingOrderQuery = `DELETE FROM pending_orders WHERE id = $1`
)

type PendingOrderRepository struct {
	db DBTX
}

func NewPendingOrderRepository(db DBTX) *PendingOrderRepository {
	return &PendingOrderRepository{db: db}
}

func (r *PendingOrderRepository) Create(ctx context.Context, pending *order.PendingOrder) error {
	items, err := json.Marshal(pending.Items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode pending order items", err)
	}

	_, err = r.db.Exec(ctx, insertPendingOrderQuery,
		pending.ID, pending.UserID, items,
		pending.Total.Cents(), pending.Total.Currency(),
		pending.PaymentTransactionID, pending.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("pending order already exists for transaction", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create pending order", err)
	}
	return nil
}

// Delete is the settle-vs-reclaim arbiter. Zero rows affected means the
// racing consumer already deleted the record; the caller must abort without
// touching the ledger.
func (r *PendingOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deletePendingOrderQuery, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pending order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pending order already consumed", nil, infra.KindNotFound)
	}
	return nil
}
