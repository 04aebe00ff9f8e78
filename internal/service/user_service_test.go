package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tabshare/tabshare/internal/ledger"
)

func TestUserServiceCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store)
	ctx := context.Background()

	t.Run("registers a user", func(t *testing.T) {
		user, err := svc.Create(ctx, "Alice", "alice@example.com")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if user.ID == "" {
			t.Error("expected user ID to be generated")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		for _, tc := range []struct{ name, email string }{
			{"", "x@example.com"},
			{"  ", "x@example.com"},
			{"X", ""},
		} {
			_, err := svc.Create(ctx, tc.name, tc.email)
			var validationErr *ledger.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("Create(%q, %q): expected ValidationError, got %v", tc.name, tc.email, err)
			}
		}
	})

	t.Run("rejects duplicate email and keeps first record", func(t *testing.T) {
		_, err := svc.Create(ctx, "Fake Alice", "alice@example.com")
		var conflictErr *ledger.ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}

		users, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("expected 1 user, got %d", len(users))
		}
		if users[0].Name != "Alice" {
			t.Errorf("first record changed: %+v", users[0])
		}
	})

	t.Run("lists users in creation order", func(t *testing.T) {
		if _, err := svc.Create(ctx, "Bob", "bob@example.com"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := svc.Create(ctx, "Charlie", "charlie@example.com"); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		users, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		want := []string{"Alice", "Bob", "Charlie"}
		if len(users) != len(want) {
			t.Fatalf("expected %d users, got %d", len(want), len(users))
		}
		for i, name := range want {
			if users[i].Name != name {
				t.Errorf("users[%d].Name = %s, want %s", i, users[i].Name, name)
			}
		}
	})
}
