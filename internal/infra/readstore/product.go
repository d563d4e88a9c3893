// Package readstore holds pool-backed query-side stores. They return read
// models directly and never touch domain entities.
package readstore

import (
	"context"
	"errors"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listProductsQuery = `
		SELECT id, name, price_cents, stock, first_image,
		       CASE WHEN rating_count > 0
		            THEN rating_total::float8 / rating_count
		            ELSE 0 END AS rating_avg,
		       count(*) OVER () AS total
		FROM products
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR $2 = ANY(categories))
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`

	productByIDQuery = `
		SELECT id, name, description, categories, price_cents, stock, seller,
		       first_image, gallery, rating_total, rating_count, created_at
		FROM products
		WHERE id = $1`
)

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

func (s *ProductReadStore) List(ctx context.Context, filter queries.ListProductsFilter) ([]queries.ProductSummary, int64, error) {
	rows, err := s.pool.Query(ctx, listProductsQuery,
		filter.Search, filter.Category, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var (
		summaries []queries.ProductSummary
		total     int64
	)
	for rows.Next() {
		var s queries.ProductSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceCents, &s.Stock, &s.FirstImage, &s.RatingAvg, &total); err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan product summary", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to read products", err)
	}
	return summaries, total, nil
}

func (s *ProductReadStore) ByID(ctx context.Context, id uuid.UUID) (*queries.ProductDetail, error) {
	var (
		detail      queries.ProductDetail
		ratingTotal int64
	)
	err := s.pool.QueryRow(ctx, productByIDQuery, id).Scan(
		&detail.ID, &detail.Name, &detail.Description, &detail.Categories,
		&detail.PriceCents, &detail.Stock, &detail.Seller,
		&detail.FirstImage, &detail.Gallery,
		&ratingTotal, &detail.RatingCount, &detail.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	if detail.RatingCount > 0 {
		detail.RatingAvg = float64(ratingTotal) / float64(detail.RatingCount)
	}
	return &detail, nil
}
