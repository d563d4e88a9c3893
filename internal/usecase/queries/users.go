package queries

import (
	"context"
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserProfile struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      user.Role
	CreatedAt time.Time
}

type UserReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*UserProfile, error)
}

type UserQueries interface {
	Me(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) Me(ctx context.Context, userID uuid.UUID) (*UserProfile, error) {
	profile, err := q.store.ByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return profile, nil
}
