package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tabshare/tabshare/internal/ledger"
	"github.com/tabshare/tabshare/internal/models"
	"github.com/tabshare/tabshare/internal/storage"
)

// SplitInput is one user's share of a new expense.
type SplitInput struct {
	UserID string
	Amount decimal.Decimal
}

// CreateExpenseInput carries the validated-on-entry fields for a new
// expense. Date is optional; zero means "now".
type CreateExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	PayerID     string
	Date        int64
	Splits      []SplitInput
}

// ExpenseDetail joins an expense to its payer's display name for listings.
type ExpenseDetail struct {
	Expense   *models.Expense
	PayerName string
}

// ExpenseService validates and atomically records expenses with their
// splits.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Create records a new expense together with all of its splits. All checks
// run before any write: on failure the ledger is unchanged.
//
// Rules: description non-empty, amount positive, every split amount
// non-negative, splits sum exactly to the amount, and payer plus every
// split user must be registered.
func (s *ExpenseService) Create(ctx context.Context, in CreateExpenseInput) (*models.Expense, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        in.Date,
		PayerID:     in.PayerID,
		Splits:      make([]models.ExpenseSplit, len(in.Splits)),
	}
	for i, split := range in.Splits {
		expense.Splits[i] = models.ExpenseSplit{
			UserID: split.UserID,
			Amount: split.Amount,
		}
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("Create expense failed", "payer_id", in.PayerID, "error", err)
		return nil, err
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"payer_id", expense.PayerID,
		"splits", len(expense.Splits),
	)
	return expense, nil
}

func (s *ExpenseService) validate(ctx context.Context, in *CreateExpenseInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return &ledger.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if !in.Amount.IsPositive() {
		return &ledger.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if in.PayerID == "" {
		return &ledger.ValidationError{Field: "payer_id", Reason: "must not be empty"}
	}

	splitSum := decimal.Zero
	for _, split := range in.Splits {
		if split.UserID == "" {
			return &ledger.ValidationError{Field: "splits", Reason: "split user_id must not be empty"}
		}
		if split.Amount.IsNegative() {
			return &ledger.ValidationError{Field: "splits", Reason: "split amount must not be negative"}
		}
		splitSum = splitSum.Add(split.Amount)
	}
	if !splitSum.Equal(in.Amount) {
		return &ledger.ValidationError{Field: "splits", Reason: "split amounts must sum to the expense amount"}
	}

	// Resolve the payer and every split user in one lookup.
	ids := make([]string, 0, len(in.Splits)+1)
	ids = append(ids, in.PayerID)
	for _, split := range in.Splits {
		ids = append(ids, split.UserID)
	}
	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		slog.Error("Create expense: user lookup failed", "error", err)
		return err
	}
	for _, id := range ids {
		if _, ok := users[id]; !ok {
			return &ledger.NotFoundError{Resource: "user", ID: id}
		}
	}

	return nil
}

// List returns every expense with its splits, joined to the payer's
// display name, oldest first.
func (s *ExpenseService) List(ctx context.Context) ([]ExpenseDetail, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("List expenses failed", "error", err)
		return nil, err
	}

	payerIDs := make([]string, 0, len(expenses))
	for _, expense := range expenses {
		payerIDs = append(payerIDs, expense.PayerID)
	}
	payers, err := s.store.GetUsersByIDs(ctx, payerIDs)
	if err != nil {
		slog.Error("List expenses: payer lookup failed", "error", err)
		return nil, err
	}

	details := make([]ExpenseDetail, len(expenses))
	for i, expense := range expenses {
		detail := ExpenseDetail{Expense: expense}
		if payer, ok := payers[expense.PayerID]; ok {
			detail.PayerName = payer.Name
		}
		details[i] = detail
	}

	return details, nil
}
