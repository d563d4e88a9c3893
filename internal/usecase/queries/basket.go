package queries

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"

	"github.com/google/uuid"
)

// BasketItemView is a basket line joined with its current catalog row.
// Stock rides along so clients can flag lines that would fail checkout,
// without the view itself rejecting them: the basket is advisory and only
// checkout initiation enforces availability.
type BasketItemView struct {
	ProductID      uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int32
	LineTotalCents int64
	Stock          int32
}

type BasketView struct {
	Items      []BasketItemView
	TotalCents int64
}

type BasketReadStore interface {
	// View returns an empty view, not an error, for a user with no basket.
	View(ctx context.Context, userID uuid.UUID) (*BasketView, error)
}

type BasketQueries interface {
	Get(ctx context.Context, userID uuid.UUID) (*BasketView, error)
}

type basketQueriesImpl struct {
	store BasketReadStore
}

func NewBasketQueries(store BasketReadStore) BasketQueries {
	return &basketQueriesImpl{store: store}
}

func (q *basketQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*BasketView, error) {
	view, err := q.store.View(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
