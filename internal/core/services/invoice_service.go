package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/dto"
	"github.com/bsmapp/battery_shop_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrPartyKindMismatch is returned when an invoice targets the wrong side of
// the ledger, e.g. a sales invoice for a supplier.
var ErrPartyKindMismatch = errors.New("party kind does not match document kind")

// ErrPartyInactive is returned when a document targets a deactivated party.
var ErrPartyInactive = errors.New("party is inactive")

// invoiceServiceImpl implements the InvoiceSvcFacade interface. Every invoice
// mutation posts its counterpart to the party ledger, correlated by invoice
// number, and keeps catalog stock quantities in step.
type invoiceServiceImpl struct {
	BaseService
	invoiceRepo    portsrepo.InvoiceRepositoryFacade
	partyRepo      portsrepo.PartyReader
	productRepo    portsrepo.ProductRepositoryFacade
	ledgerService  portssvc.LedgerWriterSvc
	defaultVATRate decimal.Decimal
}

// InvoiceServiceOption is a functional option for configuring the invoice service.
type InvoiceServiceOption func(*invoiceServiceImpl)

// WithDefaultVATRate overrides the VAT rate applied when a request omits one.
func WithDefaultVATRate(rate decimal.Decimal) InvoiceServiceOption {
	return func(s *invoiceServiceImpl) {
		s.defaultVATRate = rate
	}
}

// NewInvoiceServiceImpl creates a new invoice service with the provided options.
func NewInvoiceServiceImpl(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	partyRepo portsrepo.PartyReader,
	productRepo portsrepo.ProductRepositoryFacade,
	ledgerService portssvc.LedgerWriterSvc,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceServiceImpl{
		invoiceRepo:    invoiceRepo,
		partyRepo:      partyRepo,
		productRepo:    productRepo,
		ledgerService:  ledgerService,
		defaultVATRate: decimal.NewFromFloat(0.15),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceServiceImpl)(nil)

func (s *invoiceServiceImpl) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %s", apperrors.ErrValidation, req.Date)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to find party %s: %w", req.PartyID, err)
	}
	if party.Kind != req.Kind.PartyKind() {
		return nil, fmt.Errorf("%w: %s invoice for %s party", apperrors.ErrValidation, req.Kind, party.Kind)
	}
	if !party.IsActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPartyInactive)
	}

	vatRate := s.defaultVATRate
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}
	if vatRate.IsNegative() {
		return nil, fmt.Errorf("%w: VAT rate must be non-negative", apperrors.ErrValidation)
	}

	items, subTotal, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	vatAmount := subTotal.Mul(vatRate).Round(2)

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:  uuid.NewString(),
		InvoiceNo:  newInvoiceNo(req.Kind),
		Kind:       req.Kind,
		PartyID:    req.PartyID,
		Date:       date,
		Items:      items,
		SubTotal:   subTotal,
		VATRate:    vatRate,
		VATAmount:  vatAmount,
		GrandTotal: subTotal.Add(vatAmount),
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	if err := s.applyStock(ctx, invoice, false, userID); err != nil {
		s.LogError(ctx, err, "Failed to adjust stock for invoice", slog.String("invoice_no", invoice.InvoiceNo))
		return nil, err
	}

	draft := domain.TransactionDraft{
		Date:        date,
		Type:        req.Kind.TransactionType(),
		Description: fmt.Sprintf("Invoice %s", invoice.InvoiceNo),
		Amount:      invoice.GrandTotal,
		VATAmount:   vatAmount,
		InvoiceNo:   invoice.InvoiceNo,
	}
	if _, err := s.ledgerService.AppendTransaction(ctx, party.Kind, party.PartyID, draft, userID); err != nil {
		s.LogError(ctx, err, "Failed to post invoice to ledger", slog.String("invoice_no", invoice.InvoiceNo))
		return nil, fmt.Errorf("failed to post invoice to ledger: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_no", invoice.InvoiceNo),
		slog.String("party_id", party.PartyID),
		slog.String("grand_total", invoice.GrandTotal.String()))
	return &invoice, nil
}

func (s *invoiceServiceImpl) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceServiceImpl) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter, limit int, offset int) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx, filter, limit, offset)
}

// UpdateInvoice replaces the invoice's mutable fields, reverses the old ledger
// entry and posts a fresh one under the same invoice number.
func (s *invoiceServiceImpl) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %s", apperrors.ErrValidation, req.Date)
	}

	vatRate := invoice.VATRate
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}

	items, subTotal, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	vatAmount := subTotal.Mul(vatRate).Round(2)

	// Revert the old stock movement before applying the new one.
	if err := s.applyStock(ctx, *invoice, true, userID); err != nil {
		return nil, err
	}

	invoice.Date = date
	invoice.Items = items
	invoice.SubTotal = subTotal
	invoice.VATRate = vatRate
	invoice.VATAmount = vatAmount
	invoice.GrandTotal = subTotal.Add(vatAmount)
	invoice.Notes = req.Notes
	invoice.LastUpdatedAt = time.Now().UTC()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}
	if err := s.applyStock(ctx, *invoice, false, userID); err != nil {
		return nil, err
	}

	partyKind := invoice.Kind.PartyKind()
	if err := s.ledgerService.RemoveByInvoiceNo(ctx, partyKind, invoice.PartyID, invoice.InvoiceNo); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to reverse ledger entry for %s: %w", invoice.InvoiceNo, err)
	}
	draft := domain.TransactionDraft{
		Date:        date,
		Type:        invoice.Kind.TransactionType(),
		Description: fmt.Sprintf("Invoice %s", invoice.InvoiceNo),
		Amount:      invoice.GrandTotal,
		VATAmount:   vatAmount,
		InvoiceNo:   invoice.InvoiceNo,
	}
	if _, err := s.ledgerService.AppendTransaction(ctx, partyKind, invoice.PartyID, draft, userID); err != nil {
		return nil, fmt.Errorf("failed to post invoice to ledger: %w", err)
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("invoice_no", invoice.InvoiceNo))
	return invoice, nil
}

// DeleteInvoice removes the invoice, reverses its ledger entry and restores
// stock. A ledger entry that is already gone is not an error here: the
// invoice itself is the thing being deleted.
func (s *invoiceServiceImpl) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		s.LogError(ctx, err, "Failed to delete invoice", slog.String("invoice_id", invoiceID))
		return err
	}

	if err := s.applyStock(ctx, *invoice, true, userID); err != nil {
		return err
	}

	if err := s.ledgerService.RemoveByInvoiceNo(ctx, invoice.Kind.PartyKind(), invoice.PartyID, invoice.InvoiceNo); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to reverse ledger entry for %s: %w", invoice.InvoiceNo, err)
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_no", invoice.InvoiceNo))
	return nil
}

// buildItems resolves products, snapshots prices and computes line totals.
func (s *invoiceServiceImpl) buildItems(ctx context.Context, reqItems []dto.CreateInvoiceItemRequest) ([]domain.InvoiceItem, decimal.Decimal, error) {
	items := make([]domain.InvoiceItem, 0, len(reqItems))
	subTotal := decimal.Zero
	for _, ri := range reqItems {
		product, err := s.productRepo.FindProductByID(ctx, ri.ProductID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to find product %s: %w", ri.ProductID, err)
		}
		if !product.IsActive {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s is inactive", apperrors.ErrValidation, product.ProductID)
		}

		unitPrice := product.UnitPrice
		if ri.UnitPrice != nil {
			unitPrice = *ri.UnitPrice
		}
		if unitPrice.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: unit price must be non-negative", apperrors.ErrValidation)
		}

		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(ri.Quantity)))
		items = append(items, domain.InvoiceItem{
			ItemID:    uuid.NewString(),
			ProductID: product.ProductID,
			Name:      product.Name,
			Quantity:  ri.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
		})
		subTotal = subTotal.Add(lineTotal)
	}
	return items, subTotal, nil
}

// applyStock moves catalog quantities for an invoice: sales ship batteries
// out, purchases bring them in. revert undoes a previous application.
func (s *invoiceServiceImpl) applyStock(ctx context.Context, invoice domain.Invoice, revert bool, userID string) error {
	now := time.Now().UTC()
	for _, item := range invoice.Items {
		delta := item.Quantity
		if invoice.Kind == domain.SalesInvoice {
			delta = -delta
		}
		if revert {
			delta = -delta
		}
		if err := s.productRepo.AdjustStock(ctx, item.ProductID, delta, userID, now); err != nil {
			return fmt.Errorf("failed to adjust stock for product %s: %w", item.ProductID, err)
		}
	}
	return nil
}

// newInvoiceNo builds a human-facing invoice number: INV- for sales,
// PIN- for purchases, with a short random suffix.
func newInvoiceNo(kind domain.InvoiceKind) string {
	prefix := "INV"
	if kind == domain.PurchaseInvoice {
		prefix = "PIN"
	}
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		// crypto/rand failing is not survivable in any meaningful way;
		// fall back to a uuid fragment rather than panic.
		suffix = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(suffix))
}
