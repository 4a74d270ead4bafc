package services

import (
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ContainerConfig carries the settings the service layer needs beyond its
// repositories.
type ContainerConfig struct {
	Auth           AuthConfig
	DefaultVATRate decimal.Decimal
}

// NewServiceContainer wires every service over the given repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg ContainerConfig) *portssvc.ServiceContainer {
	ledgerService := NewLedgerServiceImpl(repos.LedgerRepo)
	userService := NewUserServiceImpl(repos.UserRepo)

	return &portssvc.ServiceContainer{
		Ledger:  ledgerService,
		Party:   NewPartyServiceImpl(repos.PartyRepo),
		Product: NewProductServiceImpl(repos.ProductRepo),
		Invoice: NewInvoiceServiceImpl(repos.InvoiceRepo, repos.PartyRepo, repos.ProductRepo, ledgerService,
			WithDefaultVATRate(cfg.DefaultVATRate)),
		Voucher: NewVoucherServiceImpl(repos.VoucherRepo, repos.PartyRepo, ledgerService),
		Tax:     NewTaxServiceImpl(ledgerService),
		Note:    NewNoteServiceImpl(repos.NoteRepo),
		User:    userService,
		Auth:    NewAuthServiceImpl(repos.UserRepo, userService, cfg.Auth),
	}
}
