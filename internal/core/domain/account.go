package domain

import (
	"github.com/shopspring/decimal"
)

// Account is the running-balance ledger for one party.
//
// Transactions are kept most-recent-first: new entries are prepended, so
// Transactions[0] is the newest and its Balance always equals CurrentBalance.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	PartyID        string          `json:"partyID"`
	Kind           PartyKind       `json:"kind"`
	Transactions   []Transaction   `json:"transactions"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields
}

// TotalSales sums the face value of all SALE entries on the account.
// Gross totals are derived on read rather than maintained incrementally, so
// add/remove cycles can never leave them out of step with the entry list.
func (a *Account) TotalSales() decimal.Decimal {
	return a.sumByType(Sale)
}

// TotalPurchases sums the face value of all PURCHASE entries on the account.
func (a *Account) TotalPurchases() decimal.Decimal {
	return a.sumByType(Purchase)
}

// TotalPayments sums the face value of all PAYMENT and RECEIPT entries.
// CREDIT entries adjust the balance only and are counted in no gross total.
func (a *Account) TotalPayments() decimal.Decimal {
	return a.sumByType(Payment).Add(a.sumByType(Receipt))
}

func (a *Account) sumByType(t TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for i := range a.Transactions {
		if a.Transactions[i].Type == t {
			sum = sum.Add(a.Transactions[i].Amount)
		}
	}
	return sum
}
