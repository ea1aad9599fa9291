package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

// userSortFields maps accepted sort parameters to stored field names.
var userSortFields = map[string]string{
	"username":   "username",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
}

// UserService implements the admin-only user directory operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// Delete removes a user. Deleting an absent user yields domain.ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("user deleted")
	return nil
}

// List returns one page of the user directory.
func (s *UserService) List(ctx context.Context, page ports.PageRequest) (*ports.ListUsersResult, error) {
	sortBy, ok := userSortFields[page.SortBy]
	if !ok {
		return nil, domain.ErrInvalidSortField
	}
	page.SortBy = sortBy
	page = clampPage(page)

	items, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		Size:       page.Size,
		TotalPages: page.TotalPages(total),
	}, nil
}
