package dto

import (
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceItemRequest is one requested invoice line. UnitPrice is
// optional; when omitted the product's catalog price is snapshotted.
type CreateInvoiceItemRequest struct {
	ProductID string           `json:"productID" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest defines the data needed to save an invoice.
// Totals are never accepted from the client; the service computes them.
type CreateInvoiceRequest struct {
	Kind    domain.InvoiceKind         `json:"kind" binding:"required,oneof=SALES PURCHASE"`
	PartyID string                     `json:"partyID" binding:"required"`
	Date    string                     `json:"date" binding:"required,datetime=2006-01-02"`
	Items   []CreateInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	VATRate *decimal.Decimal           `json:"vatRate"` // Defaults to the configured rate
	Notes   string                     `json:"notes"`
}

// UpdateInvoiceRequest replaces the mutable parts of an invoice. Kind and
// party are fixed at creation time.
type UpdateInvoiceRequest struct {
	Date    string                     `json:"date" binding:"required,datetime=2006-01-02"`
	Items   []CreateInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	VATRate *decimal.Decimal           `json:"vatRate"`
	Notes   string                     `json:"notes"`
}

// InvoiceItemResponse defines the data returned for one invoice line.
type InvoiceItemResponse struct {
	ItemID    string          `json:"itemID"`
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNo     string                `json:"invoiceNo"`
	Kind          domain.InvoiceKind    `json:"kind"`
	PartyID       string                `json:"partyID"`
	Date          string                `json:"date"`
	Items         []InvoiceItemResponse `json:"items"`
	SubTotal      decimal.Decimal       `json:"subTotal"`
	VATRate       decimal.Decimal       `json:"vatRate"`
	VATAmount     decimal.Decimal       `json:"vatAmount"`
	GrandTotal    decimal.Decimal       `json:"grandTotal"`
	Notes         string                `json:"notes"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ItemID:    it.ItemID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNo:     inv.InvoiceNo,
		Kind:          inv.Kind,
		PartyID:       inv.PartyID,
		Date:          inv.Date.Format(domain.DateFormat),
		Items:         items,
		SubTotal:      inv.SubTotal,
		VATRate:       inv.VATRate,
		VATAmount:     inv.VATAmount,
		GrandTotal:    inv.GrandTotal,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		LastUpdatedAt: inv.LastUpdatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Kind    string `form:"kind" binding:"omitempty,oneof=SALES PURCHASE"`
	PartyID string `form:"partyID"`
	Limit   int    `form:"limit,default=50"`
	Offset  int    `form:"offset,default=0"`
}
