package service

import (
	"context"
	"log/slog"

	"github.com/tabshare/tabshare/internal/storage"
)

// SettlementService marks individual expense splits as settled.
type SettlementService struct {
	store storage.Store
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

// MarkSettled sets the settled flag on a split. It is idempotent: settling
// an already settled split succeeds without changing anything. An unknown
// split ID fails with a ledger.NotFoundError.
func (s *SettlementService) MarkSettled(ctx context.Context, splitID string) error {
	if err := s.store.SettleSplit(ctx, splitID); err != nil {
		slog.Warn("Mark settled failed", "split_id", splitID, "error", err)
		return err
	}
	slog.Info("Split settled", "split_id", splitID)
	return nil
}
