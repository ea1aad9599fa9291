// Package seed creates the bootstrap admin account at startup. Admin is
// assigned only here: registration through the API always yields USER.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

// EnsureAdmin creates the configured admin user if it does not exist yet.
// With no username or password configured it does nothing.
func EnsureAdmin(ctx context.Context, repo ports.UserRepository, username, password string, log zerolog.Logger) error {
	if username == "" || password == "" {
		return nil
	}

	exists, err := repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// Another replica may have seeded the account first.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	log.Info().Str("username", username).Msg("bootstrap admin created")
	return nil
}
