// Package pgsql provides repository implementations backed by PostgreSQL
// via pgx. Each ledger mutation runs inside one database transaction.
package pgsql

import (
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates the full set of PostgreSQL repositories over
// one shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		LedgerRepo:  NewPgxLedgerRepository(pool),
		PartyRepo:   NewPgxPartyRepository(pool),
		ProductRepo: NewPgxProductRepository(pool),
		InvoiceRepo: NewPgxInvoiceRepository(pool),
		VoucherRepo: NewPgxVoucherRepository(pool),
		NoteRepo:    NewPgxNoteRepository(pool),
		UserRepo:    NewPgxUserRepository(pool),
	}
}
