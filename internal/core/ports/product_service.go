package ports

import (
	"context"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

// CreateProductInput carries the data needed to create a product. The
// authenticated principal becomes the owner.
type CreateProductInput struct {
	Name     string
	Quantity int
	Price    float64
}

// UpdateProductInput carries the mutable product fields.
type UpdateProductInput struct {
	Name     string
	Quantity int
	Price    float64
}

// ListProductsInput carries all parameters for the product listing endpoint.
// Scope is derived from the principal: admins see every product, everyone
// else only their own.
type ListProductsInput struct {
	Principal domain.Principal
	Search    string
	Page      PageRequest
}

// ListProductsResult is returned by ProductService.List.
type ListProductsResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// ProductService defines the ownership-scoped product use cases.
type ProductService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Product, error)
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
	List(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
}
