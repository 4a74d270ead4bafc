package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
)

// LedgerRepository keeps ledger accounts in a map keyed by kind and party.
type LedgerRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewLedgerRepository creates an empty in-memory ledger store.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{accounts: make(map[string]*domain.Account)}
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func accountKey(kind domain.PartyKind, partyID string) string {
	return fmt.Sprintf("%s/%s", kind, partyID)
}

func (r *LedgerRepository) FindAccountByParty(_ context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountKey(kind, partyID)]
	if !ok {
		return nil, fmt.Errorf("account for party %s: %w", partyID, apperrors.ErrNotFound)
	}
	return copyAccount(account), nil
}

func (r *LedgerRepository) ListAccountsByKind(_ context.Context, kind domain.PartyKind) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.Kind == kind {
			out = append(out, *copyAccount(account))
		}
	}
	return out, nil
}

func (r *LedgerRepository) AppendTransaction(_ context.Context, account domain.Account, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := accountKey(account.Kind, account.PartyID)
	stored, ok := r.accounts[key]
	if !ok {
		created := account
		created.Transactions = nil
		stored = &created
		r.accounts[key] = stored
	}

	// New head entry: most-recent-first order.
	stored.Transactions = append([]domain.Transaction{txn}, stored.Transactions...)
	stored.CurrentBalance = account.CurrentBalance
	stored.LastUpdatedAt = account.LastUpdatedAt
	stored.LastUpdatedBy = account.LastUpdatedBy
	return nil
}

func (r *LedgerRepository) RemoveTransaction(_ context.Context, account domain.Account, transactionID string, rebalanced []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := accountKey(account.Kind, account.PartyID)
	stored, ok := r.accounts[key]
	if !ok {
		return fmt.Errorf("account for party %s: %w", account.PartyID, apperrors.ErrNotFound)
	}

	found := false
	for i := range stored.Transactions {
		if stored.Transactions[i].TransactionID == transactionID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	stored.Transactions = append([]domain.Transaction(nil), rebalanced...)
	stored.CurrentBalance = account.CurrentBalance
	stored.LastUpdatedAt = account.LastUpdatedAt
	stored.LastUpdatedBy = account.LastUpdatedBy
	return nil
}

// copyAccount returns a deep enough copy that callers cannot mutate the store.
func copyAccount(a *domain.Account) *domain.Account {
	out := *a
	out.Transactions = append([]domain.Transaction(nil), a.Transactions...)
	return &out
}
