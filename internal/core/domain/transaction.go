package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry by the business event that produced it.
type TransactionType string

const (
	Sale     TransactionType = "SALE"     // sales invoice saved against a customer
	Purchase TransactionType = "PURCHASE" // purchase invoice saved against a supplier
	Payment  TransactionType = "PAYMENT"  // payment voucher (shop pays a supplier)
	Receipt  TransactionType = "RECEIPT"  // receipt voucher (customer pays the shop)
	Credit   TransactionType = "CREDIT"   // manual balance adjustment
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Sale, Purchase, Payment, Receipt, Credit:
		return true
	}
	return false
}

// TransactionDraft is the caller-supplied part of a new ledger entry: every
// Transaction field except the assigned id, the computed balance and audit data.
type TransactionDraft struct {
	Date        time.Time
	Type        TransactionType
	Description string
	Amount      decimal.Decimal // Must be non-negative
	VATAmount   decimal.Decimal
	InvoiceNo   string
	VoucherNo   string
}

// Transaction represents a single ledger entry on a party account.
//
// Balance is the account's running balance as of and including this entry. It is
// computed when the entry is appended (or when a later removal forces a
// recomputation) and is never set directly by callers.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`          // Calendar date of the business event (UTC midnight)
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`    // Face value, always non-negative
	Balance       decimal.Decimal `json:"balance"`   // Running balance including this entry
	VATAmount     decimal.Decimal `json:"vatAmount"` // Tax portion of Amount, zero when not applicable
	InvoiceNo     string          `json:"invoiceNo"` // Correlation key for invoice reversal, nullable
	VoucherNo     string          `json:"voucherNo"` // Correlation key for voucher reversal, nullable
	AuditFields
}
