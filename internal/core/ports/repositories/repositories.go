package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo  LedgerRepositoryFacade
	PartyRepo   PartyRepositoryFacade
	ProductRepo ProductRepositoryFacade
	InvoiceRepo InvoiceRepositoryFacade
	VoucherRepo VoucherRepositoryFacade
	NoteRepo    NoteRepositoryFacade
	UserRepo    UserRepositoryFacade
}
