package models

import "github.com/shopspring/decimal"

// Expense represents a shared expense paid by one user on behalf of several.
// The record is immutable after creation.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is the human-readable label (e.g., "Dinner", "Groceries").
	Description string

	// Amount is the full amount the payer put down. Always positive.
	Amount decimal.Decimal

	// Date is the Unix timestamp of the expense. Defaults to creation time
	// when the caller does not supply one.
	Date int64

	// PayerID references the user who paid.
	PayerID string

	// Splits are the per-user shares of this expense. They are written in
	// the same transaction as the expense and sum exactly to Amount.
	Splits []ExpenseSplit
}

// ExpenseSplit represents one user's share of an expense.
type ExpenseSplit struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// ExpenseID is the owning expense.
	ExpenseID string

	// UserID references the user who owes this share. May equal the
	// expense's payer (the payer's own share).
	UserID string

	// Amount is this user's share. Non-negative.
	Amount decimal.Decimal

	// Settled marks the share as paid back. This is the only field in the
	// model that is ever mutated.
	Settled bool
}
