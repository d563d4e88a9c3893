package readstore

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const basketViewQuery = `
	SELECT b.product_id, p.name, p.price_cents, b.quantity, p.stock
	FROM basket_items b
	JOIN products p ON p.id = b.product_id
	WHERE b.user_id = $1
	ORDER BY b.product_id`

type BasketReadStore struct {
	pool *pgxpool.Pool
}

func NewBasketReadStore(pool *pgxpool.Pool) *BasketReadStore {
	return &BasketReadStore{pool: pool}
}

func (s *BasketReadStore) View(ctx context.Context, userID uuid.UUID) (*queries.BasketView, error) {
	rows, err := s.pool.Query(ctx, basketViewQuery, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load basket", err)
	}
	defer rows.Close()

	view := &queries.BasketView{Items: []queries.BasketItemView{}}
	for rows.Next() {
		var item queries.BasketItemView
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPriceCents, &item.Quantity, &item.Stock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan basket item", err)
		}
		item.LineTotalCents = item.UnitPriceCents * int64(item.Quantity)
		view.TotalCents += item.LineTotalCents
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read basket", err)
	}
	return view, nil
}
