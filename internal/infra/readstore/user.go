package readstore

import (
	"context"
	"errors"

	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userProfileQuery = `
	SELECT id, name, email, role, created_at
	FROM users
	WHERE id = $1`

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) ByID(ctx context.Context, id uuid.UUID) (*queries.UserProfile, error) {
	var (
		profile queries.UserProfile
		role    string
	)
	err := s.pool.QueryRow(ctx, userProfileQuery, id).Scan(
		&profile.ID, &profile.Name, &profile.Email, &role, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	profile.Role = user.Role(role)
	return &profile, nil
}
