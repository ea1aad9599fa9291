package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewService("secret", time.Hour)

	raw, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Username)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role USER, got %q", claims.Role)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
	if !svc.Verify(raw) {
		t.Fatalf("expected Verify to pass")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	raw, err := NewService("secret-a", time.Hour).Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewService("secret-b", time.Hour).Parse(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"Role": string(domain.RoleUser),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	raw, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if svc.Verify(raw) {
		t.Fatalf("expected expired token to fail verification")
	}
	if _, err := svc.Parse(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	svc := NewService("secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if svc.Verify(raw) {
			t.Fatalf("expected %q to fail verification", raw)
		}
	}
}

func TestParse_RejectsUnsignedAlg(t *testing.T) {
	svc := NewService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Parse(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestNewService_DefaultTTL(t *testing.T) {
	if got := NewService("secret", 0).TTL(); got != defaultTTL {
		t.Fatalf("expected default TTL %v, got %v", defaultTTL, got)
	}
}
