// Package token issues and validates the HMAC-SHA256 session tokens used by
// the API. Tokens are stateless: validity is determined solely by signature
// and expiry, so every accessor goes through Parse and re-validates both.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the validated view of a token.
type Claims struct {
	Username  string
	Role      domain.Role
	ExpiresAt time.Time
}

// Service signs and verifies session tokens with a process-wide symmetric key.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token with subject, role, issued-at and expiry claims.
func (s *Service) Issue(username string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"Role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse validates signature and expiry, then returns the token's claims.
// Any structural, cryptographic or expiry failure yields ErrInvalidToken.
func (s *Service) Parse(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}
	role, _ := claims["Role"].(string)

	return &Claims{
		Username:  sub,
		Role:      domain.Role(role),
		ExpiresAt: exp.Time,
	}, nil
}

// Verify reports whether the token is well formed, correctly signed and unexpired.
func (s *Service) Verify(raw string) bool {
	_, err := s.Parse(raw)
	return err == nil
}
