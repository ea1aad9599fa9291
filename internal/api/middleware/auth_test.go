package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
	"github.com/NatePombi/inventory-management-system-api/internal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.users[user.Username] = user
	return user, nil
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func (s *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := s.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, username)
	return nil
}

func (s *stubUserRepo) List(_ context.Context, _ ports.PageRequest) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

type stubDenylist struct {
	revoked map[string]bool
}

func (s *stubDenylist) Revoke(_ context.Context, rawToken string, _ time.Duration) error {
	s.revoked[rawToken] = true
	return nil
}

func (s *stubDenylist) IsRevoked(_ context.Context, rawToken string) (bool, error) {
	return s.revoked[rawToken], nil
}

func authFixture(t *testing.T) (*token.Service, *stubUserRepo, *stubDenylist) {
	t.Helper()
	tokens := token.NewService("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"alice": {ID: "1", Username: "alice", Role: domain.RoleUser},
	}}
	return tokens, repo, &stubDenylist{revoked: map[string]bool{}}
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (echo.Context, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return c, mw(next)(c)
}

func TestAuthValidToken(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	signed, err := tokens.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	c, err := invoke(Auth(tokens, repo, denylist), req)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	principal, ok := c.Get(PrincipalKey).(domain.Principal)
	if !ok {
		t.Fatal("expected principal in context")
	}
	if principal.Username != "alice" || principal.Role != domain.RoleUser {
		t.Errorf("unexpected principal %+v", principal)
	}
	if raw, _ := c.Get(RawTokenKey).(string); raw != signed {
		t.Error("expected raw token in context")
	}
}

func TestAuthRoleIsLive(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	// Token carries USER, but the stored record was promoted afterwards.
	signed, _ := tokens.Issue("alice", domain.RoleUser)
	repo.users["alice"].Role = domain.RoleAdmin

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	c, err := invoke(Auth(tokens, repo, denylist), req)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	principal := c.Get(PrincipalKey).(domain.Principal)
	if principal.Role != domain.RoleAdmin {
		t.Errorf("expected live role ADMIN, got %q", principal.Role)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	_, err := invoke(Auth(tokens, repo, denylist), req)

	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthBadScheme(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	_, err := invoke(Auth(tokens, repo, denylist), req)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthInvalidToken(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	_, err := invoke(Auth(tokens, repo, denylist), req)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthWrongKey(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	other := token.NewService("another-secret", time.Hour)
	signed, _ := other.Issue("alice", domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	_, err := invoke(Auth(tokens, repo, denylist), req)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthRevokedToken(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	signed, _ := tokens.Issue("alice", domain.RoleUser)
	denylist.revoked[signed] = true

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	_, err := invoke(Auth(tokens, repo, denylist), req)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestAuthDeletedSubject(t *testing.T) {
	tokens, repo, denylist := authFixture(t)

	signed, _ := tokens.Issue("ghost", domain.RoleUser)

	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	_, err := invoke(Auth(tokens, repo, denylist), req)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected HTTP %d error, got nil", want)
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	if he.Code != want {
		t.Errorf("expected status %d, got %d", want, he.Code)
	}
}
