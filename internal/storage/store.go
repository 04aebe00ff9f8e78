// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"

	"github.com/tabshare/tabshare/internal/models"
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. The user.ID and user.CreatedAt
	// fields are populated by the store if unset. Returns a
	// ledger.ConflictError if the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users by their IDs, keyed by ID.
	// IDs that don't resolve are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// CreateExpense persists an expense together with all of its splits in
	// a single transaction: either every record is written or none is.
	// IDs and the expense date are populated by the store if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns all expenses with their splits, oldest first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// SettleSplit sets the settled flag on a split. Settling an already
	// settled split is a no-op. Returns a ledger.NotFoundError if the
	// split does not exist.
	SettleSplit(ctx context.Context, splitID string) error

	// Snapshot reads all users and expenses inside one read transaction,
	// so callers computing derived views never observe a half-committed
	// expense write.
	Snapshot(ctx context.Context) ([]*models.User, []*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
