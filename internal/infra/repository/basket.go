package repository

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/infra"

	"github.com/google/uuid"
)

const (
	upsertBasketItemQuery = `
		INSERT INTO basket_items (user_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = basket_items.quantity + EXCLUDED.quantity, updated_at = now()`

	// Reducing to zero or below removes the line; the delete runs first so
	// the update never violates the quantity >= 1 check.
	dropDepletedBasketItemQuery = `
		DELETE FROM basket_items
		WHERE user_id = $1 AND product_id = $2 AND quantity <= $3`

	reduceBasketItemQuery = `
		UPDATE basket_items
		SET quantity = quantity - $3, updated_at = now()
		WHERE user_id = $1 AND product_id = $2 AND quantity > $3`

	removeBasketItemQuery = `DELETE FROM basket_items WHERE user_id = $1 AND product_id = $2`

	clearBasketQuery = `DELETE FROM basket_items WHERE user_id = $1`
)

type BasketRepository struct {
	db DBTX
}

func NewBasketRepository(db DBTX) *BasketRepository {
	return &BasketRepository{db: db}
}

func (r *BasketRepository) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	_, err := r.db.Exec(ctx, upsertBasketItemQuery, userID, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to add basket item", err)
	}
	return nil
}

func (r *BasketRepository) ReduceItem(ctx context.Context, userID, productID uuid.UUID, quantity int32) error {
	tag, err := r.db.Exec(ctx, dropDepletedBasketItemQuery, userID, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to reduce basket item", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	tag, err = r.db.Exec(ctx, reduceBasketItemQuery, userID, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to reduce basket item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("basket item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BasketRepository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, removeBasketItemQuery, userID, productID); err != nil {
		return infra.WrapRepoErr("failed to remove basket item", err)
	}
	return nil
}

func (r *BasketRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, clearBasketQuery, userID); err != nil {
		return infra.WrapRepoErr("failed to clear basket", err)
	}
	return nil
}
