package dto

import (
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxDeclarationParams defines query parameters for the VAT declaration report.
type TaxDeclarationParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// TaxDeclarationResponse is the VAT summary for a reporting period.
type TaxDeclarationResponse struct {
	PeriodStart    string          `json:"periodStart"`
	PeriodEnd      string          `json:"periodEnd"`
	SalesAmount    decimal.Decimal `json:"salesAmount"`
	SalesVAT       decimal.Decimal `json:"salesVAT"`
	PurchaseAmount decimal.Decimal `json:"purchaseAmount"`
	PurchaseVAT    decimal.Decimal `json:"purchaseVAT"`
	NetVAT         decimal.Decimal `json:"netVAT"`
}

// ToTaxDeclarationResponse converts a domain.TaxDeclaration to a response DTO.
func ToTaxDeclarationResponse(d *domain.TaxDeclaration) TaxDeclarationResponse {
	return TaxDeclarationResponse{
		PeriodStart:    d.PeriodStart.Format(domain.DateFormat),
		PeriodEnd:      d.PeriodEnd.Format(domain.DateFormat),
		SalesAmount:    d.SalesAmount,
		SalesVAT:       d.SalesVAT,
		PurchaseAmount: d.PurchaseAmount,
		PurchaseVAT:    d.PurchaseVAT,
		NetVAT:         d.NetVAT,
	}
}
