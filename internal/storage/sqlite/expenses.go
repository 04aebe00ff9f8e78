package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tabshare/tabshare/internal/ledger"
	"github.com/tabshare/tabshare/internal/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so read helpers can run
// inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// CreateExpense persists an expense and all of its splits in one
// transaction. No partially-created expense is ever visible to readers.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.Date == 0 {
		expense.Date = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, description, amount, date, payer_id) VALUES (?, ?, ?, ?, ?)",
		expense.ID, expense.Description, expense.Amount.String(), expense.Date, expense.PayerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		if split.ID == "" {
			split.ID = uuid.New().String()
		}
		split.ExpenseID = expense.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (id, expense_id, user_id, amount, settled) VALUES (?, ?, ?, ?, 0)",
			split.ID, split.ExpenseID, split.UserID, split.Amount.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpenses returns all expenses with their splits, oldest first.
func (s *Store) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return listExpenses(ctx, s.db)
}

func listExpenses(ctx context.Context, q querier) ([]*models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, description, amount, date, payer_id FROM expenses ORDER BY date, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{}
		var amount string
		if err := rows.Scan(&expense.ID, &expense.Description, &amount, &expense.Date, &expense.PayerID); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if expense.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse expense amount: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splitRows, err := q.QueryContext(ctx,
		"SELECT id, expense_id, user_id, amount, settled FROM expense_splits ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.ExpenseSplit
		var amount string
		if err := splitRows.Scan(&split.ID, &split.ExpenseID, &split.UserID, &amount, &split.Settled); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if split.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse split amount: %w", err)
		}
		expense, ok := byID[split.ExpenseID]
		if !ok {
			// Split of an expense committed after the expense query ran;
			// skip rather than invent a parent.
			continue
		}
		expense.Splits = append(expense.Splits, split)
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return expenses, nil
}

// SettleSplit marks a split as settled. Settling twice is a no-op.
func (s *Store) SettleSplit(ctx context.Context, splitID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expense_splits SET settled = 1 WHERE id = ?",
		splitID,
	)
	if err != nil {
		return fmt.Errorf("failed to settle split: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check settle result: %w", err)
	}
	if affected == 0 {
		return &ledger.NotFoundError{Resource: "split", ID: splitID}
	}

	return nil
}

// Snapshot reads users and expenses inside one transaction so derived views
// (balances) see a consistent ledger even under concurrent writers.
func (s *Store) Snapshot(ctx context.Context) ([]*models.User, []*models.Expense, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	users, err := listUsers(ctx, tx)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := listExpenses(ctx, tx)
	if err != nil {
		return nil, nil, err
	}

	return users, expenses, nil
}
