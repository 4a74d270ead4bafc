package repositories

import (
	"context"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// LedgerReader defines read operations on party ledger accounts.
type LedgerReader interface {
	// FindAccountByParty retrieves the account for a party, with its
	// transactions in most-recent-first order. Returns apperrors.ErrNotFound
	// if no transaction was ever appended for the party.
	FindAccountByParty(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error)

	// ListAccountsByKind retrieves every account on one side of the ledger,
	// each with its full transaction list in most-recent-first order.
	ListAccountsByKind(ctx context.Context, kind domain.PartyKind) ([]domain.Account, error)
}

// LedgerWriter defines the mutations the ledger service needs. The service
// owns all balance arithmetic; implementations only persist what they are
// handed, atomically per call.
type LedgerWriter interface {
	// AppendTransaction persists a new head entry. The account carries the
	// already-updated CurrentBalance; txn carries its stamped Balance. The
	// account row is created if this is the party's first entry.
	AppendTransaction(ctx context.Context, account domain.Account, txn domain.Transaction) error

	// RemoveTransaction deletes one entry, stores the account's updated
	// CurrentBalance and rewrites the stored Balance of the surviving entries
	// given in rebalanced (most-recent-first, already recomputed).
	RemoveTransaction(ctx context.Context, account domain.Account, transactionID string, rebalanced []domain.Transaction) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
