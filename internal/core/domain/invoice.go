package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind distinguishes sales invoices (customers) from purchase invoices (suppliers).
type InvoiceKind string

const (
	SalesInvoice    InvoiceKind = "SALES"
	PurchaseInvoice InvoiceKind = "PURCHASE"
)

// IsValid reports whether k is a known invoice kind.
func (k InvoiceKind) IsValid() bool {
	return k == SalesInvoice || k == PurchaseInvoice
}

// PartyKind returns the side of the ledger this invoice kind posts to.
func (k InvoiceKind) PartyKind() PartyKind {
	if k == SalesInvoice {
		return Customer
	}
	return Supplier
}

// TransactionType returns the ledger entry type this invoice kind produces.
func (k InvoiceKind) TransactionType() TransactionType {
	if k == SalesInvoice {
		return Sale
	}
	return Purchase
}

// InvoiceItem is one line of an invoice. Unit price is snapshotted from the
// product at invoice time so later catalog edits do not rewrite history.
type InvoiceItem struct {
	ItemID    string          `json:"itemID"` // Primary Key (UUID)
	ProductID string          `json:"productID"`
	Name      string          `json:"name"` // Product name snapshot
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"` // Quantity * UnitPrice
}

// Invoice represents a sales or purchase invoice. All totals are computed
// server-side; GrandTotal (SubTotal + VATAmount) is the amount posted to the ledger.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNo  string          `json:"invoiceNo"` // Human-facing number, ledger correlation key
	Kind       InvoiceKind     `json:"kind"`
	PartyID    string          `json:"partyID"`
	Date       time.Time       `json:"date"` // Calendar date (UTC midnight)
	Items      []InvoiceItem   `json:"items"`
	SubTotal   decimal.Decimal `json:"subTotal"`
	VATRate    decimal.Decimal `json:"vatRate"` // e.g. 0.15
	VATAmount  decimal.Decimal `json:"vatAmount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Notes      string          `json:"notes"`
	AuditFields
}
