// Package models defines the core domain records for the tabshare ledger.
//
// # Records
//
//   - User: a registered participant, identified by a unique email
//   - Expense: a shared expense paid by one user
//   - ExpenseSplit: one user's share of an expense
//
// An Expense owns its splits: splits are created together with the expense
// in a single transaction and never outlive it. Users and expenses are
// append-only; the only mutable field in the whole model is
// ExpenseSplit.Settled.
//
// # Design notes
//
// Amounts are decimal.Decimal throughout — balance arithmetic must be exact,
// so floats never enter the core. Relationships are ID strings rather than
// pointers to avoid circular references between records.
package models
