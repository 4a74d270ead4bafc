package services

import (
	"context"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// LedgerReaderSvc defines read access to party ledger accounts.
type LedgerReaderSvc interface {
	// GetAccount retrieves a party's account with its full transaction list,
	// most-recent-first. Returns apperrors.ErrNotFound when the party has no
	// account yet (no transaction was ever appended).
	GetAccount(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error)

	// Statement returns one page of a party's ledger history (newest first)
	// and an opaque token for the next page (empty when exhausted).
	Statement(ctx context.Context, kind domain.PartyKind, partyID string, limit int, nextToken string) ([]domain.Transaction, string, error)

	// AggregateForPeriod sums customer SALE entries and supplier PURCHASE
	// entries whose calendar date falls inside [from, to] (both inclusive)
	// into a VAT declaration.
	AggregateForPeriod(ctx context.Context, from, to time.Time) (*domain.TaxDeclaration, error)
}

// LedgerWriterSvc defines the mutations on party ledger accounts.
type LedgerWriterSvc interface {
	// AppendTransaction creates the party's account if needed, applies the
	// draft's balance effect, stamps the running balance on the new entry and
	// prepends it. Returns the created transaction.
	AppendTransaction(ctx context.Context, kind domain.PartyKind, partyID string, draft domain.TransactionDraft, userID string) (*domain.Transaction, error)

	// RemoveTransaction reverses one entry's balance effect and recomputes the
	// stored balance of every older entry. Returns apperrors.ErrNotFound when
	// the account or the transaction does not exist.
	RemoveTransaction(ctx context.Context, kind domain.PartyKind, partyID string, transactionID string) error

	// RemoveByInvoiceNo removes the entry correlated with an invoice number.
	RemoveByInvoiceNo(ctx context.Context, kind domain.PartyKind, partyID string, invoiceNo string) error

	// RemoveByVoucherNo removes the entry correlated with a voucher number.
	RemoveByVoucherNo(ctx context.Context, kind domain.PartyKind, partyID string, voucherNo string) error
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
