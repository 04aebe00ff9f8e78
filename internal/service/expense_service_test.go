package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tabshare/tabshare/internal/ledger"
	"github.com/tabshare/tabshare/internal/models"
	"github.com/tabshare/tabshare/internal/storage"
	"github.com/tabshare/tabshare/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func registerUser(t *testing.T, store storage.Store, name string) *models.User {
	t.Helper()

	user, err := NewUserService(store).Create(context.Background(), name, name+"@example.com")
	if err != nil {
		t.Fatalf("failed to register %s: %v", name, err)
	}
	return user
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestExpenseServiceCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	alice := registerUser(t, store, "alice")
	bob := registerUser(t, store, "bob")

	in := CreateExpenseInput{
		Description: "Dinner",
		Amount:      dec("30"),
		PayerID:     alice.ID,
		Splits: []SplitInput{
			{UserID: alice.ID, Amount: dec("15")},
			{UserID: bob.ID, Amount: dec("15")},
		},
	}

	expense, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if expense.ID == "" {
		t.Error("expected expense ID to be generated")
	}
	if len(expense.Splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(expense.Splits))
	}
	for _, split := range expense.Splits {
		if split.Settled {
			t.Error("new split should start unsettled")
		}
	}

	details, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(details))
	}
	if details[0].PayerName != "alice" {
		t.Errorf("payer name = %q, want %q", details[0].PayerName, "alice")
	}
}

func TestExpenseServiceValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store)
	ctx := context.Background()

	alice := registerUser(t, store, "alice")
	bob := registerUser(t, store, "bob")

	valid := func() CreateExpenseInput {
		return CreateExpenseInput{
			Description: "Lunch",
			Amount:      dec("20"),
			PayerID:     alice.ID,
			Splits: []SplitInput{
				{UserID: alice.ID, Amount: dec("10")},
				{UserID: bob.ID, Amount: dec("10")},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(in *CreateExpenseInput)
		wantErr interface{}
	}{
		{
			name:    "empty description",
			mutate:  func(in *CreateExpenseInput) { in.Description = "  " },
			wantErr: &ledger.ValidationError{},
		},
		{
			name:    "zero amount",
			mutate:  func(in *CreateExpenseInput) { in.Amount = decimal.Zero },
			wantErr: &ledger.ValidationError{},
		},
		{
			name:    "negative amount",
			mutate:  func(in *CreateExpenseInput) { in.Amount = dec("-5") },
			wantErr: &ledger.ValidationError{},
		},
		{
			name:    "missing payer",
			mutate:  func(in *CreateExpenseInput) { in.PayerID = "" },
			wantErr: &ledger.ValidationError{},
		},
		{
			name:    "negative split amount",
			mutate:  func(in *CreateExpenseInput) { in.Splits[0].Amount = dec("-1") },
			wantErr: &ledger.ValidationError{},
		},
		{
			name:    "splits do not sum to amount",
			mutate:  func(in *CreateExpenseInput) { in.Splits[1].Amount = dec("9.99") },
			wantErr: &ledger.ValidationError{},
		},
		{
			name:    "unknown payer",
			mutate:  func(in *CreateExpenseInput) { in.PayerID = "ghost" },
			wantErr: &ledger.NotFoundError{},
		},
		{
			name:    "unknown split user",
			mutate:  func(in *CreateExpenseInput) { in.Splits[1].UserID = "ghost" },
			wantErr: &ledger.NotFoundError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			_, err := svc.Create(ctx, in)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			switch tt.wantErr.(type) {
			case *ledger.ValidationError:
				var validationErr *ledger.ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
			case *ledger.NotFoundError:
				var notFoundErr *ledger.NotFoundError
				if !errors.As(err, &notFoundErr) {
					t.Errorf("expected NotFoundError, got %v", err)
				}
			}
		})
	}

	// Every rejected create must leave the ledger untouched.
	details, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected empty ledger after rejected creates, got %d expenses", len(details))
	}
}
