package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

const (
	defaultPageSize = 5
	maxPageSize     = 100
)

// productSortFields maps accepted sort parameters to stored field names.
var productSortFields = map[string]string{
	"name":       "name",
	"quantity":   "quantity",
	"price":      "price",
	"created_at": "created_at",
}

// ProductService implements ownership-scoped product CRUD and listing.
// Authorization is decided here from the resolved principal; the principal's
// role is already live (re-derived by the auth middleware), so no user
// lookup is repeated per operation.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// Create stores a new product owned by the principal.
func (s *ProductService) Create(ctx context.Context, principal domain.Principal, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:      strings.TrimSpace(input.Name),
		Quantity:  input.Quantity,
		Price:     input.Price,
		Owner:     principal.Username,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("id", created.ID).Str("owner", created.Owner).Msg("product created")
	return created, nil
}

// Get returns the product iff the principal owns it or is an admin.
func (s *ProductService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.CanAccess(principal) {
		s.logger.Warn().Str("id", id).Str("username", principal.Username).Msg("product access denied")
		return nil, domain.ErrForbidden
	}

	return product, nil
}

// Update overwrites the mutable fields of a product. Owner and creation
// timestamp never change.
func (s *ProductService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !product.CanAccess(principal) {
		s.logger.Warn().Str("id", id).Str("username", principal.Username).Msg("product update denied")
		return nil, domain.ErrForbidden
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Quantity = input.Quantity
	product.Price = input.Price

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("product updated")
	return product, nil
}

// Delete removes a product. A second delete of the same id yields
// domain.ErrProductNotFound.
func (s *ProductService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !product.CanAccess(principal) {
		s.logger.Warn().Str("id", id).Str("username", principal.Username).Msg("product delete denied")
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Str("username", principal.Username).Msg("product deleted")
	return nil
}

// List returns one page of products visible to the principal: admins see
// every product, everyone else only their own. Search narrows the scope by
// case-insensitive name substring.
func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	sortBy, ok := productSortFields[input.Page.SortBy]
	if !ok {
		return nil, domain.ErrInvalidSortField
	}
	input.Page.SortBy = sortBy
	input.Page = clampPage(input.Page)

	owner := input.Principal.Username
	if input.Principal.IsAdmin() {
		owner = ""
	}

	items, total, err := s.repo.List(ctx, ports.ProductFilter{
		Owner:  owner,
		Search: strings.TrimSpace(input.Search),
		Page:   input.Page,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       input.Page.Page,
		Size:       input.Page.Size,
		TotalPages: input.Page.TotalPages(total),
	}, nil
}

// clampPage normalizes out-of-range pagination values.
func clampPage(p ports.PageRequest) ports.PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	return p
}
