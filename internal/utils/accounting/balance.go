// Package accounting holds the running-balance arithmetic shared by the ledger
// service and its tests.
package accounting

import (
	"fmt"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceEffect returns the signed effect of a transaction on its account's
// running balance.
//
// SALE and PURCHASE increase the balance (the party owes / is owed more);
// PAYMENT, RECEIPT and CREDIT decrease it. CREDIT is a pure balance
// adjustment: it carries no gross-total meaning.
func BalanceEffect(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.Type {
	case domain.Sale, domain.Purchase:
		return txn.Amount, nil
	case domain.Payment, domain.Receipt, domain.Credit:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q for transaction %s", txn.Type, txn.TransactionID)
	}
}

// Rebalance recomputes the stored Balance of every entry in a most-recent-first
// list, seeding the newest entry with currentBalance and deriving each older
// entry as newer.Balance minus newer's own effect.
//
// It mutates entries in place. This is the recomputation pass run after a
// removal: entries newer than the removed one keep their stored balances (the
// updated currentBalance already reflects the removal), while every older entry
// is restored to a value consistent with a chronological replay.
func Rebalance(entries []domain.Transaction, currentBalance decimal.Decimal) error {
	if len(entries) == 0 {
		return nil
	}
	entries[0].Balance = currentBalance
	for i := 1; i < len(entries); i++ {
		effect, err := BalanceEffect(entries[i-1])
		if err != nil {
			return err
		}
		entries[i].Balance = entries[i-1].Balance.Sub(effect)
	}
	return nil
}

// Replay applies the effect table over a most-recent-first list in
// chronological order (oldest first) and returns the final balance. It is the
// reference computation behind the account invariant: each entry's stored
// Balance must equal the replayed balance as of that entry.
func Replay(entries []domain.Transaction) (decimal.Decimal, error) {
	balance := decimal.Zero
	for i := len(entries) - 1; i >= 0; i-- {
		effect, err := BalanceEffect(entries[i])
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(effect)
	}
	return balance, nil
}

// VerifyInvariant checks that every stored balance in a most-recent-first list
// matches a chronological replay and that the final replayed balance equals
// currentBalance. Used by tests and the memory adapter's consistency checks.
func VerifyInvariant(entries []domain.Transaction, currentBalance decimal.Decimal) error {
	balance := decimal.Zero
	for i := len(entries) - 1; i >= 0; i-- {
		effect, err := BalanceEffect(entries[i])
		if err != nil {
			return err
		}
		balance = balance.Add(effect)
		if !entries[i].Balance.Equal(balance) {
			return fmt.Errorf("stored balance %s of transaction %s does not match replayed balance %s",
				entries[i].Balance, entries[i].TransactionID, balance)
		}
	}
	if !balance.Equal(currentBalance) {
		return fmt.Errorf("replayed balance %s does not match current balance %s", balance, currentBalance)
	}
	return nil
}
