package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
)

// taxServiceImpl implements the TaxSvcFacade interface on top of the ledger.
type taxServiceImpl struct {
	BaseService
	ledgerService portssvc.LedgerReaderSvc
}

// NewTaxServiceImpl creates a new tax reporting service.
func NewTaxServiceImpl(ledgerService portssvc.LedgerReaderSvc) portssvc.TaxSvcFacade {
	return &taxServiceImpl{ledgerService: ledgerService}
}

var _ portssvc.TaxSvcFacade = (*taxServiceImpl)(nil)

func (s *taxServiceImpl) DeclarationForPeriod(ctx context.Context, from, to time.Time) (*domain.TaxDeclaration, error) {
	decl, err := s.ledgerService.AggregateForPeriod(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate tax period",
			slog.Time("from", from), slog.Time("to", to))
		return nil, err
	}
	s.LogInfo(ctx, "Tax declaration computed",
		slog.String("from", decl.PeriodStart.Format(domain.DateFormat)),
		slog.String("to", decl.PeriodEnd.Format(domain.DateFormat)),
		slog.String("net_vat", decl.NetVAT.String()))
	return decl, nil
}
