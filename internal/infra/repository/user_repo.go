package repository

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/infra"

	"github.com/google/uuid"
)

const insertUserQuery = `
	INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, insertUserQuery,
		id, u.Name(), u.Email().Value(), u.PasswordHash(), string(u.Role()))
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
