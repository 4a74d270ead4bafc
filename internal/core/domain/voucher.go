package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherKind distinguishes receipt vouchers (customer pays the shop) from
// payment vouchers (the shop pays a supplier).
type VoucherKind string

const (
	ReceiptVoucher VoucherKind = "RECEIPT"
	PaymentVoucher VoucherKind = "PAYMENT"
)

// IsValid reports whether k is a known voucher kind.
func (k VoucherKind) IsValid() bool {
	return k == ReceiptVoucher || k == PaymentVoucher
}

// PartyKind returns the side of the ledger this voucher kind posts to.
func (k VoucherKind) PartyKind() PartyKind {
	if k == ReceiptVoucher {
		return Customer
	}
	return Supplier
}

// TransactionType returns the ledger entry type this voucher kind produces.
func (k VoucherKind) TransactionType() TransactionType {
	if k == ReceiptVoucher {
		return Receipt
	}
	return Payment
}

// PaymentMethod is how money changed hands for a voucher.
type PaymentMethod string

const (
	Cash   PaymentMethod = "CASH"
	Bank   PaymentMethod = "BANK"
	Cheque PaymentMethod = "CHEQUE"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	return m == Cash || m == Bank || m == Cheque
}

// Voucher represents a receipt or payment voucher.
type Voucher struct {
	VoucherID string          `json:"voucherID"` // Primary Key (UUID)
	VoucherNo string          `json:"voucherNo"` // Human-facing number, ledger correlation key
	Kind      VoucherKind     `json:"kind"`
	PartyID   string          `json:"partyID"`
	Date      time.Time       `json:"date"` // Calendar date (UTC midnight)
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference"` // Cheque no, transfer ref, nullable
	Notes     string          `json:"notes"`
	AuditFields
}
