// Package calculator derives net balances from ledger state.
// It is pure: no storage access, deterministic for a given snapshot.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/tabshare/tabshare/internal/models"
)

// Balance is one user's position across the whole ledger.
type Balance struct {
	// Name is the user's display name.
	Name string

	// Owes is the sum of this user's shares of expenses paid by others.
	Owes decimal.Decimal

	// Owed is the sum of other users' shares of expenses this user paid.
	Owed decimal.Decimal

	// Net is Owed - Owes. Positive = owed money, negative = owes money.
	Net decimal.Decimal
}

// ComputeBalances folds every expense split into per-user accumulators.
//
// For each split S of expense E where S.UserID != E.PayerID, S.Amount is
// added to owes[S.UserID] and to owed[E.PayerID]. Splits where the split
// user is the payer are the payer's own share: they net to zero and are
// excluded from both accumulators. Finally net = owed - owes per user.
//
// Every registered user gets an entry, including users with no activity.
// Settled splits still count; settling tracks repayment but does not
// rewrite history. Cost is linear in the total number of splits.
func ComputeBalances(users []*models.User, expenses []*models.Expense) map[string]*Balance {
	balances := make(map[string]*Balance, len(users))
	for _, user := range users {
		balances[user.ID] = &Balance{
			Name: user.Name,
			Owes: decimal.Zero,
			Owed: decimal.Zero,
			Net:  decimal.Zero,
		}
	}

	for _, expense := range expenses {
		payer, ok := balances[expense.PayerID]
		if !ok {
			// Payer unknown to the snapshot; nothing to attribute.
			continue
		}
		for _, split := range expense.Splits {
			if split.UserID == expense.PayerID {
				continue
			}
			debtor, ok := balances[split.UserID]
			if !ok {
				continue
			}
			debtor.Owes = debtor.Owes.Add(split.Amount)
			payer.Owed = payer.Owed.Add(split.Amount)
		}
	}

	for _, bal := range balances {
		bal.Net = bal.Owed.Sub(bal.Owes)
	}

	return balances
}
