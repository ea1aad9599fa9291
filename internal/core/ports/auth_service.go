package ports

import (
	"context"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

// AuthService implements registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout deny-lists the given raw token for its remaining lifetime.
	Logout(ctx context.Context, rawToken string) error
}
