package ports

import (
	"context"

	"github.com/craftlink/community-api/internal/core/domain"
)

// RegisterInput carries the sign-up form. Skills and Bio are mandatory for
// the mentor role.
type RegisterInput struct {
	Email      string
	Password   string
	FullName   string
	Role       string
	Location   string
	Skills     []string
	Materials  []string
	Bio        string
	Experience string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
}
