package service

import (
	"context"
	"log/slog"

	"github.com/tabshare/tabshare/internal/calculator"
	"github.com/tabshare/tabshare/internal/storage"
)

// BalanceService derives each user's owes/owed/net position from the full
// ledger. No caching: every call recomputes from a fresh snapshot.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService with the given storage
// backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// Compute returns the balance for every registered user, keyed by user ID.
// The snapshot is read in one transaction, so a concurrent expense write is
// either fully visible or not at all.
func (s *BalanceService) Compute(ctx context.Context) (map[string]*calculator.Balance, error) {
	users, expenses, err := s.store.Snapshot(ctx)
	if err != nil {
		slog.Error("Balance snapshot failed", "error", err)
		return nil, err
	}
	return calculator.ComputeBalances(users, expenses), nil
}
