package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email       string
	Password    string
	Role        string
	DisplayName string
}

// AuthService implements registration, login, and session lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}
