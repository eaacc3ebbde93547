package ports

import (
	"context"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// AuthService handles account registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
