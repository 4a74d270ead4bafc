package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/adapters/memory"
	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/bsmapp/battery_shop_backend/internal/core/services"
	"github.com/bsmapp/battery_shop_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_FindAccountByParty_NotFound(t *testing.T) {
	repo := memory.NewLedgerRepository()

	_, err := repo.FindAccountByParty(context.Background(), domain.Customer, uuid.NewString())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerRepository_ReturnsDefensiveCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	partyID := uuid.NewString()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		PartyID:        partyID,
		Kind:           domain.Customer,
		CurrentBalance: decimal.NewFromInt(100),
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Sale,
		Amount:        decimal.NewFromInt(100),
		Balance:       decimal.NewFromInt(100),
	}
	require.NoError(t, repo.AppendTransaction(ctx, account, txn))

	got, err := repo.FindAccountByParty(ctx, domain.Customer, partyID)
	require.NoError(t, err)

	// Mutating the returned copy must not reach into the store.
	got.Transactions[0].Amount = decimal.NewFromInt(999)
	got.CurrentBalance = decimal.NewFromInt(999)

	again, err := repo.FindAccountByParty(ctx, domain.Customer, partyID)
	require.NoError(t, err)
	assert.True(t, again.Transactions[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, again.CurrentBalance.Equal(decimal.NewFromInt(100)))
}

func TestLedgerRepository_AccountsAreKeyedByKind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	partyID := uuid.NewString()

	customerAcc := domain.Account{
		AccountID:      uuid.NewString(),
		PartyID:        partyID,
		Kind:           domain.Customer,
		CurrentBalance: decimal.NewFromInt(50),
	}
	require.NoError(t, repo.AppendTransaction(ctx, customerAcc, domain.Transaction{
		TransactionID: uuid.NewString(), Type: domain.Sale,
		Amount: decimal.NewFromInt(50), Balance: decimal.NewFromInt(50),
	}))

	// The same party id on the supplier side is a distinct account.
	_, err := repo.FindAccountByParty(ctx, domain.Supplier, partyID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	customers, err := repo.ListAccountsByKind(ctx, domain.Customer)
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	suppliers, err := repo.ListAccountsByKind(ctx, domain.Supplier)
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

// End-to-end over the real service: append, remove out of order, and check
// that every stored balance still matches a chronological replay.
func TestLedgerRepository_ServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewLedgerRepository()
	svc := services.NewLedgerServiceImpl(repo)
	partyID := uuid.NewString()
	userID := uuid.NewString()

	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	sale1, err := svc.AppendTransaction(ctx, domain.Customer, partyID, domain.TransactionDraft{
		Date: day(1), Type: domain.Sale, Amount: decimal.NewFromInt(100),
	}, userID)
	require.NoError(t, err)

	sale2, err := svc.AppendTransaction(ctx, domain.Customer, partyID, domain.TransactionDraft{
		Date: day(8), Type: domain.Sale, Amount: decimal.NewFromInt(50),
	}, userID)
	require.NoError(t, err)

	receipt, err := svc.AppendTransaction(ctx, domain.Customer, partyID, domain.TransactionDraft{
		Date: day(12), Type: domain.Receipt, Amount: decimal.NewFromInt(30),
	}, userID)
	require.NoError(t, err)

	assert.True(t, sale1.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, sale2.Balance.Equal(decimal.NewFromInt(150)))
	assert.True(t, receipt.Balance.Equal(decimal.NewFromInt(120)))

	// Remove the middle sale: the newer receipt shifts, the older sale doesn't.
	require.NoError(t, svc.RemoveTransaction(ctx, domain.Customer, partyID, sale2.TransactionID))

	account, err := svc.GetAccount(ctx, domain.Customer, partyID)
	require.NoError(t, err)
	require.Len(t, account.Transactions, 2)
	assert.True(t, account.CurrentBalance.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, receipt.TransactionID, account.Transactions[0].TransactionID)
	assert.True(t, account.Transactions[0].Balance.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, sale1.TransactionID, account.Transactions[1].TransactionID)
	assert.True(t, account.Transactions[1].Balance.Equal(decimal.NewFromInt(100)))

	assert.NoError(t, accounting.VerifyInvariant(account.Transactions, account.CurrentBalance))

	// Gross totals are derived from the surviving entries.
	assert.True(t, account.TotalSales().Equal(decimal.NewFromInt(100)))
	assert.True(t, account.TotalPayments().Equal(decimal.NewFromInt(30)))
}
