package readstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listOrdersByUserQuery = `
		SELECT id, order_number, status, total_cents, currency, items,
		       payment_method, payment_provider_status, payment_transaction_id,
		       created_at,
		       count(*) OVER () AS total
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	orderByNumberQuery = `
		SELECT id, order_number, status, total_cents, currency, items,
		       payment_method, payment_provider_status, payment_transaction_id,
		       created_at
		FROM orders
		WHERE user_id = $1 AND order_number = $2`
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (s *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID, filter queries.ListOrdersFilter) ([]queries.OrderSummary, int64, error) {
	rows, err := s.pool.Query(ctx, listOrdersByUserQuery, userID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var (
		summaries []queries.OrderSummary
		total     int64
	)
	for rows.Next() {
		var (
			summary   queries.OrderSummary
			itemsJSON []byte
		)
		err := rows.Scan(&summary.ID, &summary.Number, &summary.Status,
			&summary.TotalCents, &summary.Currency, &itemsJSON,
			&summary.Payment.Method, &summary.Payment.ProviderStatus,
			&summary.Payment.TransactionID, &summary.CreatedAt, &total)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan order summary", err)
		}
		if err := json.Unmarshal(itemsJSON, &summary.Items); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to decode order items", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read orders", err)
	}
	return summaries, total, nil
}

func (s *OrderReadStore) ByNumber(ctx context.Context, userID uuid.UUID, number string) (*queries.OrderSummary, error) {
	var (
		summary   queries.OrderSummary
		itemsJSON []byte
	)
	err := s.pool.QueryRow(ctx, orderByNumberQuery, userID, number).Scan(
		&summary.ID, &summary.Number, &summary.Status,
		&summary.TotalCents, &summary.Currency, &itemsJSON,
		&summary.Payment.Method, &summary.Payment.ProviderStatus,
		&summary.Payment.TransactionID, &summary.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	if err := json.Unmarshal(itemsJSON, &summary.Items); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order items", err)
	}
	return &summary, nil
}
