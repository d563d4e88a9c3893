package response

import (
	"time"

	"github.com/leburgeon/ecom-backapi/internal/domain/user"
	"github.com/leburgeon/ecom-backapi/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func FromUserProfile(p *queries.UserProfile) UserResponse {
	return UserResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role.String(),
		CreatedAt: p.CreatedAt,
	}
}
