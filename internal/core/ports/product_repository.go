package ports

import (
	"context"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

// ProductFilter carries all query parameters for listing products.
// Owner is enforced by the service layer: empty means no owner scoping
// (admin-wide listing), non-empty restricts to that owner's products.
type ProductFilter struct {
	Owner  string
	Search string // optional: case-insensitive substring match on name
	Page   PageRequest
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	// Delete removes the product; a missing product yields domain.ErrProductNotFound.
	Delete(ctx context.Context, id string) error
	// List returns a page of products matching filter and the total count.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, int64, error)
}
