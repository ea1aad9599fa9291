package service

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
	"github.com/NatePombi/inventory-management-system-api/internal/pkg/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = strconv.Itoa(r.nextID)
	r.users[stored.Username] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

func (r *stubUserRepo) List(_ context.Context, page ports.PageRequest) ([]*domain.User, int64, error) {
	all := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, cloneUser(u))
	}
	sort.Slice(all, func(i, j int) bool {
		if page.Desc {
			return all[i].Username > all[j].Username
		}
		return all[i].Username < all[j].Username
	})

	start := int(page.Offset())
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type stubDenylist struct {
	revoked map[string]bool
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]bool)}
}

func (d *stubDenylist) Revoke(_ context.Context, rawToken string, _ time.Duration) error {
	d.revoked[rawToken] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, rawToken string) (bool, error) {
	return d.revoked[rawToken], nil
}

func newAuthService(repo ports.UserRepository, denylist ports.TokenDenylist) (*AuthService, *token.Service) {
	tokens := token.NewService("test-secret", time.Hour)
	return NewAuthService(repo, tokens, denylist, zerolog.Nop()), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDenylist())

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role USER, got %s", user.Role)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDenylist())

	if _, err := svc.Register(context.Background(), "bob", "", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "pw2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, tokens := newAuthService(newStubUserRepo(), newStubDenylist())

	if _, err := svc.Register(context.Background(), "alice", "", "pw1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, user, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user == nil || user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Username)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role USER, got %q", claims.Role)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDenylist())

	_, _ = svc.Register(context.Background(), "alice", "", "pw1")
	if _, _, err := svc.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDenylist())

	if _, _, err := svc.Login(context.Background(), "ghost", "pw"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDenylist())

	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	denylist := newStubDenylist()
	svc, _ := newAuthService(newStubUserRepo(), denylist)

	_, _ = svc.Register(context.Background(), "alice", "", "pw1")
	signed, _, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), signed); err != nil {
		t.Fatalf("logout: %v", err)
	}
	revoked, _ := denylist.IsRevoked(context.Background(), signed)
	if !revoked {
		t.Fatalf("expected token to be deny-listed")
	}
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDenylist())

	if err := svc.Logout(context.Background(), "not-a-token"); err != token.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
