package repository

import (
	"context"
	"errors"

	"github.com/leburgeon/ecom-backapi/internal/domain/basket"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// The three ledger mutations are single conditional updates. The WHERE guard
// carries the invariant: an update that would drive stock or reserved negative
// matches zero rows, and a zero-row result aborts the caller's transaction.
const (
	reserveStockQuery = `
		UPDATE products
		SET stock = stock - $2, reserved = reserved + $2, updated_at = now()
		WHERE id = $1 AND stock >= $2`

	commitSaleQuery = `
		UPDATE products
		SET reserved = reserved - $2, updated_at = now()
		WHERE id = $1 AND reserved >= $2`

	releaseStockQuery = `
		UPDATE products
		SET stock = stock + $2, reserved = reserved - $2, updated_at = now()
		WHERE id = $1 AND reserved >= $2`

	addStockQuery = `
		UPDATE products
		SET stock = stock + $2, updated_at = now()
		WHERE id = $1`

	probeStockQuery = `SELECT stock FROM products WHERE id = $1`

	insertProductQuery = `
		INSERT INTO products (
			id, name, description, categories, price_cents, stock, reserved,
			seller, first_image, gallery, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, now(), now())`
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Reserve(ctx context.Context, items []shared.ReservedItem) error {
	for _, item := range items {
		tag, err := r.db.Exec(ctx, reserveStockQuery, item.ProductID, item.Quantity)
		if err != nil {
			return infra.WrapRepoErr("failed to reserve stock", err)
		}
		if tag.RowsAffected() == 1 {
			continue
		}

		// The guard rejected; probe the row to tell a missing product
		// apart from insufficient stock.
		var available int32
		err = r.db.QueryRow(ctx, probeStockQuery, item.ProductID).Scan(&available)
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("product not found",
				&basket.UnknownProductError{ProductID: item.ProductID}, infra.KindNotFound)
		}
		if err != nil {
			return infra.WrapRepoErr("failed to probe stock", err)
		}
		return infra.WrapRepoErr("insufficient stock", &basket.InsufficientStockError{
			ProductID: item.ProductID,
			Requested: item.Quantity,
			Available: available,
		}, infra.KindInsufficientStock)
	}
	return nil
}

func (r *ProductRepository) CommitSale(ctx context.Context, items []shared.ReservedItem) error {
	for _, item := range items {
		tag, err := r.db.Exec(ctx, commitSaleQuery, item.ProductID, item.Quantity)
		if err != nil {
			return infra.WrapRepoErr("failed to commit sale", err)
		}
		if tag.RowsAffected() != 1 {
			return infra.WrapRepoErr("reserved count below committed quantity", nil, infra.KindConflict)
		}
	}
	return nil
}

func (r *ProductRepository) Release(ctx context.Context, items []shared.ReservedItem) error {
	for _, item := range items {
		tag, err := r.db.Exec(ctx, releaseStockQuery, item.ProductID, item.Quantity)
		if err != nil {
			return infra.WrapRepoErr("failed to release stock", err)
		}
		if tag.RowsAffected() != 1 {
			return infra.WrapRepoErr("reserved count below released quantity", nil, infra.KindConflict)
		}
	}
	return nil
}

func (r *ProductRepository) AddStock(ctx context.Context, productID uuid.UUID, quantity int32) error {
	tag, err := r.db.Exec(ctx, addStockQuery, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to add stock", err)
	}
	if tag.RowsAffected() != 1 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, p *shared.ProductRecord) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, insertProductQuery,
		id, p.Name, p.Description, p.Categories, p.PriceCents, p.Stock,
		p.Seller, p.FirstImage, p.Gallery)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("product already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}
