package services

import (
	"context"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
)

// TaxSvcFacade produces VAT declaration reports from the ledger.
type TaxSvcFacade interface {
	// DeclarationForPeriod aggregates ledger activity for [from, to], both
	// boundaries inclusive by calendar date.
	DeclarationForPeriod(ctx context.Context, from, to time.Time) (*domain.TaxDeclaration, error)
}
