package domain_test

import (
	"testing"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		txType domain.TransactionType
		want   bool
	}{
		{"sale", domain.Sale, true},
		{"purchase", domain.Purchase, true},
		{"payment", domain.Payment, true},
		{"receipt", domain.Receipt, true},
		{"credit", domain.Credit, true},
		{"empty", domain.TransactionType(""), false},
		{"unknown", domain.TransactionType("REFUND"), false},
		{"lowercase is not valid", domain.TransactionType("sale"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txType.IsValid())
		})
	}
}

func TestInvoiceKind_Mapping(t *testing.T) {
	assert.Equal(t, domain.Customer, domain.SalesInvoice.PartyKind())
	assert.Equal(t, domain.Supplier, domain.PurchaseInvoice.PartyKind())
	assert.Equal(t, domain.Sale, domain.SalesInvoice.TransactionType())
	assert.Equal(t, domain.Purchase, domain.PurchaseInvoice.TransactionType())
}

func TestVoucherKind_Mapping(t *testing.T) {
	assert.Equal(t, domain.Customer, domain.ReceiptVoucher.PartyKind())
	assert.Equal(t, domain.Supplier, domain.PaymentVoucher.PartyKind())
	assert.Equal(t, domain.Receipt, domain.ReceiptVoucher.TransactionType())
	assert.Equal(t, domain.Payment, domain.PaymentVoucher.TransactionType())
}

func TestParseDate(t *testing.T) {
	parsed, err := domain.ParseDate("2025-06-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = domain.ParseDate("15/06/2025")
	assert.Error(t, err)

	_, err = domain.ParseDate("")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 01:30 on the 15th in UTC+3 is still the 14th in UTC.
	in := time.Date(2025, 6, 15, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), domain.DateOnly(in))

	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, domain.DateOnly(midnight))
}
