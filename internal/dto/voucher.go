package dto

import (
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherRequest defines the data needed to save a receipt/payment voucher.
type CreateVoucherRequest struct {
	Kind      domain.VoucherKind   `json:"kind" binding:"required,oneof=RECEIPT PAYMENT"`
	PartyID   string               `json:"partyID" binding:"required"`
	Date      string               `json:"date" binding:"required,datetime=2006-01-02"`
	Amount    decimal.Decimal      `json:"amount" binding:"required,gt=0"`
	Method    domain.PaymentMethod `json:"method" binding:"required,oneof=CASH BANK CHEQUE"`
	Reference string               `json:"reference"`
	Notes     string               `json:"notes"`
}

// UpdateVoucherRequest replaces the mutable parts of a voucher.
type UpdateVoucherRequest struct {
	Date      string               `json:"date" binding:"required,datetime=2006-01-02"`
	Amount    decimal.Decimal      `json:"amount" binding:"required,gt=0"`
	Method    domain.PaymentMethod `json:"method" binding:"required,oneof=CASH BANK CHEQUE"`
	Reference string               `json:"reference"`
	Notes     string               `json:"notes"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string               `json:"voucherID"`
	VoucherNo     string               `json:"voucherNo"`
	Kind          domain.VoucherKind   `json:"kind"`
	PartyID       string               `json:"partyID"`
	Date          string               `json:"date"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        domain.PaymentMethod `json:"method"`
	Reference     string               `json:"reference"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// ToVoucherResponse converts a domain.Voucher to a VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		VoucherNo:     v.VoucherNo,
		Kind:          v.Kind,
		PartyID:       v.PartyID,
		Date:          v.Date.Format(domain.DateFormat),
		Amount:        v.Amount,
		Method:        v.Method,
		Reference:     v.Reference,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

// ToListVoucherResponse converts a slice of domain.Voucher to response DTOs.
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToVoucherResponse(&vouchers[i])
	}
	return res
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	Kind    string `form:"kind" binding:"omitempty,oneof=RECEIPT PAYMENT"`
	PartyID string `form:"partyID"`
	Limit   int    `form:"limit,default=50"`
	Offset  int    `form:"offset,default=0"`
}
