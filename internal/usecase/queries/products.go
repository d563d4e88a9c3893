package queries

import (
	"context"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotFound                = errs.New("resource not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ProductSummary is the catalog listing shape. Stock is surfaced as the
// purchasable count, which already excludes reserved units.
type ProductSummary struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Stock      int32
	FirstImage string
	RatingAvg  float64
}

type ProductDetail struct {
	ID          uuid.UUID
	Name        string
	Description string
	Categories  []string
	PriceCents  int64
	Stock       int32
	Seller      string
	FirstImage  string
	Gallery     []string
	RatingAvg   float64
	RatingCount int32
	CreatedAt   time.Time
}

type ListProductsFilter struct {
	Search   string
	Category string
	Limit    int32
	Offset   int32
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps paging to sane bounds.
func (f *ListProductsFilter) Normalize() {
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

type ProductReadStore interface {
	List(ctx context.Context, filter ListProductsFilter) ([]ProductSummary, int64, error)
	ByID(ctx context.Context, id uuid.UUID) (*ProductDetail, error)
}

type ProductQueries interface {
	List(ctx context.Context, filter ListProductsFilter) ([]ProductSummary, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDetail, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) List(ctx context.Context, filter ListProductsFilter) ([]ProductSummary, int64, error) {
	filter.Normalize()
	items, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return items, total, nil
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductDetail, error) {
	detail, err := q.store.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return detail, nil
}
