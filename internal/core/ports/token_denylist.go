package ports

import (
	"context"
	"time"
)

// TokenDenylist records revoked tokens until their natural expiry, so a
// logout can invalidate an otherwise stateless token.
type TokenDenylist interface {
	Revoke(ctx context.Context, rawToken string, ttl time.Duration) error
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}
