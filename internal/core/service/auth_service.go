package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
	"github.com/NatePombi/inventory-management-system-api/internal/pkg/token"
)

// AuthService implements registration, login and logout.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *token.Service
	denylist ports.TokenDenylist
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *token.Service, denylist ports.TokenDenylist, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, denylist: denylist, logger: logger}
}

// Register creates a new account. Self-service registration always yields
// the USER role; admin accounts exist only through the startup seed.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn().Str("username", username).Msg("registration rejected: username taken")
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index covers the race between the exists check and the insert.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies credentials against the stored bcrypt hash and issues a
// signed session token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("username", username).Msg("login rejected: bad password")
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return signed, user, nil
}

// Logout deny-lists the token for its remaining lifetime so it can no longer
// authenticate requests. An already-expired token is a no-op.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.tokens.Parse(rawToken)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.denylist.Revoke(ctx, rawToken, ttl); err != nil {
		return err
	}

	s.logger.Info().Str("username", claims.Username).Msg("token revoked")
	return nil
}
