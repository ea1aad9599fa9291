package ports

import (
	"context"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

// ListUsersResult is returned by UserService.List.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// UserService defines the admin-only user directory operations.
type UserService interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context, page PageRequest) (*ListUsersResult, error)
}
