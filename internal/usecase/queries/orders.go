package queries

import (
	"context"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/order"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderSummary struct {
	ID         uuid.UUID
	Number     string
	Status     order.Status
	TotalCents int64
	Currency   string
	Items      []order.Item
	Payment    order.Payment
	CreatedAt  time.Time
}

type ListOrdersFilter struct {
	Limit  int32
	Offset int32
}

func (f *ListOrdersFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

type OrderReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListOrdersFilter) ([]OrderSummary, int64, error)
	// ByNumber is scoped to the owning user; admins query through the same
	// path with the buyer's id.
	ByNumber(ctx context.Context, userID uuid.UUID, number string) (*OrderSummary, error)
}

type OrderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListOrdersFilter) ([]OrderSummary, int64, error)
	GetByNumber(ctx context.Context, userID uuid.UUID, number string) (*OrderSummary, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter ListOrdersFilter) ([]OrderSummary, int64, error) {
	filter.Normalize()
	items, total, err := q.store.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return items, total, nil
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, userID uuid.UUID, number string) (*OrderSummary, error) {
	summary, err := q.store.ByNumber(ctx, userID, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return summary, nil
}
