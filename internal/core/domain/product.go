package domain

import "github.com/shopspring/decimal"

// Product represents a battery model in the shop's catalog.
type Product struct {
	ProductID  string          `json:"productID"` // Primary Key (UUID)
	Name       string          `json:"name"`      // e.g. "NS70 MF"
	Brand      string          `json:"brand"`     // Nullable
	CapacityAh int             `json:"capacityAh"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	StockQty   int             `json:"stockQty"`
	IsActive   bool            `json:"isActive"`
	AuditFields
}
