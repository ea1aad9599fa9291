package ports

import (
	"context"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Delete removes the user; a missing user yields domain.ErrUserNotFound.
	Delete(ctx context.Context, username string) error
	// List returns a page of users and the total user count.
	List(ctx context.Context, page PageRequest) ([]*domain.User, int64, error)
}
