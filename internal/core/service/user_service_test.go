package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NatePombi/inventory-management-system-api/internal/core/domain"
	"github.com/NatePombi/inventory-management-system-api/internal/core/ports"
)

func seedUsers(t *testing.T, repo *stubUserRepo, usernames ...string) {
	t.Helper()
	for _, name := range usernames {
		if _, err := repo.Create(context.Background(), &domain.User{Username: name, Role: domain.RoleUser}); err != nil {
			t.Fatalf("seed user %q: %v", name, err)
		}
	}
}

func TestUserService_GetByUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, "alice")
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetByUsername(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, "alice")
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Second delete is not idempotent success.
	if err := svc.Delete(context.Background(), "alice"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}

func TestUserService_List(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo, "carol", "alice", "bob")
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.List(context.Background(), ports.PageRequest{Page: 0, Size: 2, SortBy: "username"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 3 || res.TotalPages != 2 {
		t.Fatalf("unexpected totals: total=%d pages=%d", res.Total, res.TotalPages)
	}
	if len(res.Items) != 2 || res.Items[0].Username != "alice" || res.Items[1].Username != "bob" {
		t.Fatalf("unexpected first page: %+v", res.Items)
	}

	res, err = svc.List(context.Background(), ports.PageRequest{Page: 1, Size: 2, SortBy: "username"})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Username != "carol" {
		t.Fatalf("unexpected second page: %+v", res.Items)
	}
}

func TestUserService_List_InvalidSortField(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.PageRequest{Size: 5, SortBy: "password"}); err != domain.ErrInvalidSortField {
		t.Fatalf("expected ErrInvalidSortField, got %v", err)
	}
}
