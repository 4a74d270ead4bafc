// Package memory provides repository implementations backed by in-process
// maps. It is the default store when no database is configured and the
// backing store for service tests. All implementations are safe for
// concurrent use and return defensive copies.
package memory

import (
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider creates the full set of in-memory repositories.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		LedgerRepo:  NewLedgerRepository(),
		PartyRepo:   NewPartyRepository(),
		ProductRepo: NewProductRepository(),
		InvoiceRepo: NewInvoiceRepository(),
		VoucherRepo: NewVoucherRepository(),
		NoteRepo:    NewNoteRepository(),
		UserRepo:    NewUserRepository(),
	}
}
