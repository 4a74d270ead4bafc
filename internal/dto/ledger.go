package dto

import (
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAdjustmentRequest appends a manual CREDIT entry to a party account.
// Credits lower the balance without touching any gross total.
type CreateAdjustmentRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// TransactionResponse defines the data returned for one ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          string                 `json:"date"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Balance       decimal.Decimal        `json:"balance"`
	VATAmount     decimal.Decimal        `json:"vatAmount"`
	InvoiceNo     string                 `json:"invoiceNo,omitempty"`
	VoucherNo     string                 `json:"voucherNo,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date.Format(domain.DateFormat),
		Type:          t.Type,
		Description:   t.Description,
		Amount:        t.Amount,
		Balance:       t.Balance,
		VATAmount:     t.VATAmount,
		InvoiceNo:     t.InvoiceNo,
		VoucherNo:     t.VoucherNo,
	}
}

// AccountResponse defines the data returned for a party's ledger account.
// Gross totals are derived from the transaction list on every read.
type AccountResponse struct {
	PartyID        string                `json:"partyID"`
	Kind           domain.PartyKind      `json:"kind"`
	CurrentBalance decimal.Decimal       `json:"currentBalance"`
	TotalSales     decimal.Decimal       `json:"totalSales"`
	TotalPurchases decimal.Decimal       `json:"totalPurchases"`
	TotalPayments  decimal.Decimal       `json:"totalPayments"`
	Transactions   []TransactionResponse `json:"transactions"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	txns := make([]TransactionResponse, len(a.Transactions))
	for i := range a.Transactions {
		txns[i] = ToTransactionResponse(&a.Transactions[i])
	}
	return AccountResponse{
		PartyID:        a.PartyID,
		Kind:           a.Kind,
		CurrentBalance: a.CurrentBalance,
		TotalSales:     a.TotalSales(),
		TotalPurchases: a.TotalPurchases(),
		TotalPayments:  a.TotalPayments(),
		Transactions:   txns,
	}
}

// StatementParams defines query parameters for a paginated account statement.
type StatementParams struct {
	Limit     int    `form:"limit,default=25"`
	NextToken string `form:"nextToken"`
}

// StatementResponse is one page of a party's ledger history.
type StatementResponse struct {
	PartyID      string                `json:"partyID"`
	Kind         domain.PartyKind      `json:"kind"`
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}
