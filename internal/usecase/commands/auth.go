package commands

import (
	"context"

	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/infra"
	"github.com/leburgeon/ecom-backapi/internal/pkg/errs"
	"github.com/leburgeon/ecom-backapi/internal/pkg/jwt"
	"github.com/leburgeon/ecom-backapi/internal/pkg/password"
	"github.com/leburgeon/ecom-backapi/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailTaken         = errs.New("email already registered")
	ErrValidationFailed   = errs.New("validation failed")
)

type AuthResult struct {
	Token string
	User  *user.User
}

type AuthCommands interface {
	Register(ctx context.Context, name, email, rawPassword string) (uuid.UUID, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow shared.UnitOfWork
	jwt *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{uow: uow, jwt: jwtService}
}

func (a *authCommandsImpl) Register(ctx context.Context, name, email, rawPassword string) (uuid.UUID, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}
	passwordVO, err := user.NewPassword(rawPassword)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}
	if name == "" {
		return uuid.Nil, errs.Mark(errs.New("name required"), ErrValidationFailed)
	}

	hash, err := password.HashPassword(passwordVO.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	newUser := user.NewUser(name, emailVO, hash, user.RoleCustomer)

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, newUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	found, err := a.uow.Reads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(found.PasswordHash(), rawPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwt.GenerateToken(found.ID(), found.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	return &AuthResult{Token: token, User: found}, nil
}
