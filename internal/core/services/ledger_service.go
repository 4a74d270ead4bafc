package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	portssvc "github.com/bsmapp/battery_shop_backend/internal/core/ports/services"
	"github.com/bsmapp/battery_shop_backend/internal/utils/accounting"
	"github.com/bsmapp/battery_shop_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeAmount is returned when a draft carries a negative face value.
	ErrNegativeAmount = errors.New("transaction amount must be non-negative")

	// ErrInvalidPeriod is returned when a reporting period ends before it starts.
	ErrInvalidPeriod = errors.New("period end must not be before period start")
)

// ledgerServiceImpl maintains the running-balance accounts of customers and
// suppliers. All balance arithmetic happens here; the repository only
// persists what it is handed.
type ledgerServiceImpl struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade

	// Serializes read-modify-write cycles. Each repository call is atomic on
	// its own, but an append or removal spans a read and a write.
	mu sync.Mutex
}

// NewLedgerServiceImpl creates the ledger service over a repository.
func NewLedgerServiceImpl(repo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerServiceImpl{ledgerRepo: repo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerServiceImpl)(nil)

// AppendTransaction applies a draft to a party's account. The account is
// created lazily on the first entry; the new entry is stamped with the
// updated running balance and prepended (most-recent-first order).
func (s *ledgerServiceImpl) AppendTransaction(ctx context.Context, kind domain.PartyKind, partyID string, draft domain.TransactionDraft, userID string) (*domain.Transaction, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown party kind %q", apperrors.ErrValidation, kind)
	}
	if !draft.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, draft.Type)
	}
	if draft.Amount.IsNegative() || draft.VATAmount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNegativeAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	account, err := s.ledgerRepo.FindAccountByParty(ctx, kind, partyID)
	if errors.Is(err, apperrors.ErrNotFound) {
		account = &domain.Account{
			AccountID:      uuid.NewString(),
			PartyID:        partyID,
			Kind:           kind,
			CurrentBalance: decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				CreatedBy: userID,
			},
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load account for party %s: %w", partyID, err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          domain.DateOnly(draft.Date),
		Type:          draft.Type,
		Description:   draft.Description,
		Amount:        draft.Amount,
		VATAmount:     draft.VATAmount,
		InvoiceNo:     draft.InvoiceNo,
		VoucherNo:     draft.VoucherNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	effect, err := accounting.BalanceEffect(txn)
	if err != nil {
		return nil, err
	}
	account.CurrentBalance = account.CurrentBalance.Add(effect)
	txn.Balance = account.CurrentBalance
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	if err := s.ledgerRepo.AppendTransaction(ctx, *account, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	s.LogInfo(ctx, "Ledger entry appended",
		slog.String("party_id", partyID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
		slog.String("balance", txn.Balance.String()))
	return &txn, nil
}

// GetAccount retrieves a party's account with its transactions, newest first.
func (s *ledgerServiceImpl) GetAccount(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error) {
	return s.ledgerRepo.FindAccountByParty(ctx, kind, partyID)
}

// RemoveTransaction reverses one entry and restores the invariant that every
// stored balance matches a chronological replay.
func (s *ledgerServiceImpl) RemoveTransaction(ctx context.Context, kind domain.PartyKind, partyID string, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, kind, partyID, func(t *domain.Transaction) bool {
		return t.TransactionID == transactionID
	})
}

// RemoveByInvoiceNo removes the entry whose InvoiceNo matches. Used when an
// invoice is deleted or replaced and its ledger side effect must be undone.
func (s *ledgerServiceImpl) RemoveByInvoiceNo(ctx context.Context, kind domain.PartyKind, partyID string, invoiceNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, kind, partyID, func(t *domain.Transaction) bool {
		return t.InvoiceNo != "" && t.InvoiceNo == invoiceNo
	})
}

// RemoveByVoucherNo removes the entry whose VoucherNo matches.
func (s *ledgerServiceImpl) RemoveByVoucherNo(ctx context.Context, kind domain.PartyKind, partyID string, voucherNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, kind, partyID, func(t *domain.Transaction) bool {
		return t.VoucherNo != "" && t.VoucherNo == voucherNo
	})
}

// removeLocked removes the first (newest) entry matching the predicate.
// Caller must hold s.mu.
//
// Removal seeds the newest surviving entry with the reversed CurrentBalance
// and walks the list toward older entries, deriving each stored balance from
// the newer neighbour's balance minus that neighbour's own effect. Older
// entries end up with their original values; entries newer than the removed
// one shift by the reversed effect.
func (s *ledgerServiceImpl) removeLocked(ctx context.Context, kind domain.PartyKind, partyID string, match func(*domain.Transaction) bool) error {
	account, err := s.ledgerRepo.FindAccountByParty(ctx, kind, partyID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range account.Transactions {
		if match(&account.Transactions[i]) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("ledger entry: %w", apperrors.ErrNotFound)
	}
	removed := account.Transactions[idx]

	effect, err := accounting.BalanceEffect(removed)
	if err != nil {
		return err
	}

	remaining := make([]domain.Transaction, 0, len(account.Transactions)-1)
	remaining = append(remaining, account.Transactions[:idx]...)
	remaining = append(remaining, account.Transactions[idx+1:]...)

	account.CurrentBalance = account.CurrentBalance.Sub(effect)
	if err := accounting.Rebalance(remaining, account.CurrentBalance); err != nil {
		return err
	}
	account.Transactions = remaining
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.ledgerRepo.RemoveTransaction(ctx, *account, removed.TransactionID, remaining); err != nil {
		return fmt.Errorf("failed to remove transaction %s: %w", removed.TransactionID, err)
	}

	s.LogInfo(ctx, "Ledger entry removed",
		slog.String("party_id", partyID),
		slog.String("transaction_id", removed.TransactionID),
		slog.String("balance", account.CurrentBalance.String()))
	return nil
}

// Statement returns one page of a party's ledger history, newest first.
func (s *ledgerServiceImpl) Statement(ctx context.Context, kind domain.PartyKind, partyID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	account, err := s.ledgerRepo.FindAccountByParty(ctx, kind, partyID)
	if err != nil {
		return nil, "", err
	}
	if limit <= 0 {
		limit = 25
	}

	start := 0
	if nextToken != "" {
		_, lastID, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		for i := range account.Transactions {
			if account.Transactions[i].TransactionID == lastID {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end > len(account.Transactions) {
		end = len(account.Transactions)
	}
	page := account.Transactions[start:end]

	token := ""
	if end < len(account.Transactions) && len(page) > 0 {
		last := page[len(page)-1]
		token = pagination.EncodeToken(last.CreatedAt, last.TransactionID)
	}
	return page, token, nil
}

// AggregateForPeriod computes the VAT declaration for an inclusive calendar
// date range: customer SALE entries feed the sales side, supplier PURCHASE
// entries the purchase side. Other entry types never contribute.
func (s *ledgerServiceImpl) AggregateForPeriod(ctx context.Context, from, to time.Time) (*domain.TaxDeclaration, error) {
	from = domain.DateOnly(from)
	to = domain.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidPeriod)
	}

	decl := &domain.TaxDeclaration{
		PeriodStart:    from,
		PeriodEnd:      to,
		SalesAmount:    decimal.Zero,
		SalesVAT:       decimal.Zero,
		PurchaseAmount: decimal.Zero,
		PurchaseVAT:    decimal.Zero,
	}

	customers, err := s.ledgerRepo.ListAccountsByKind(ctx, domain.Customer)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer accounts: %w", err)
	}
	for i := range customers {
		for _, txn := range customers[i].Transactions {
			if txn.Type == domain.Sale && inPeriod(txn.Date, from, to) {
				decl.SalesAmount = decl.SalesAmount.Add(txn.Amount)
				decl.SalesVAT = decl.SalesVAT.Add(txn.VATAmount)
			}
		}
	}

	suppliers, err := s.ledgerRepo.ListAccountsByKind(ctx, domain.Supplier)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplier accounts: %w", err)
	}
	for i := range suppliers {
		for _, txn := range suppliers[i].Transactions {
			if txn.Type == domain.Purchase && inPeriod(txn.Date, from, to) {
				decl.PurchaseAmount = decl.PurchaseAmount.Add(txn.Amount)
				decl.PurchaseVAT = decl.PurchaseVAT.Add(txn.VATAmount)
			}
		}
	}

	decl.NetVAT = decl.SalesVAT.Sub(decl.PurchaseVAT)
	return decl, nil
}

// inPeriod reports whether a calendar date falls inside [from, to], both inclusive.
func inPeriod(date, from, to time.Time) bool {
	d := domain.DateOnly(date)
	return !d.Before(from) && !d.After(to)
}
