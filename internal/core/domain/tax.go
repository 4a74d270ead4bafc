package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxDeclaration is the VAT summary for a reporting period. It is computed
// from the ledger on demand and never stored.
type TaxDeclaration struct {
	PeriodStart    time.Time       `json:"periodStart"` // Inclusive
	PeriodEnd      time.Time       `json:"periodEnd"`   // Inclusive
	SalesAmount    decimal.Decimal `json:"salesAmount"`
	SalesVAT       decimal.Decimal `json:"salesVAT"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
	PurchaseVAT    decimal.Decimal `json:"purchaseVAT"`
	NetVAT         decimal.Decimal `json:"netVAT"` // SalesVAT - PurchaseVAT
}
