package accounting

import (
	"testing"
	"time"

	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, txType domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:          txType,
		Amount:        decimal.RequireFromString(amount),
	}
}

func TestBalanceEffect(t *testing.T) {
	tests := []struct {
		name   string
		txType domain.TransactionType
		amount string
		want   string
	}{
		{"sale increases balance", domain.Sale, "100.50", "100.50"},
		{"purchase increases balance", domain.Purchase, "250", "250"},
		{"payment decreases balance", domain.Payment, "75.25", "-75.25"},
		{"receipt decreases balance", domain.Receipt, "40", "-40"},
		{"credit decreases balance", domain.Credit, "10", "-10"},
		{"zero amount has zero effect", domain.Sale, "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, err := BalanceEffect(txn("t1", tt.txType, tt.amount))
			require.NoError(t, err)
			assert.True(t, effect.Equal(decimal.RequireFromString(tt.want)),
				"effect %s, want %s", effect, tt.want)
		})
	}
}

func TestBalanceEffect_UnknownType(t *testing.T) {
	_, err := BalanceEffect(txn("t1", "REFUND", "10"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
}

func TestReplay(t *testing.T) {
	// Most-recent-first: receipt of 30 happened after sales of 100 and 50.
	entries := []domain.Transaction{
		txn("t3", domain.Receipt, "30"),
		txn("t2", domain.Sale, "50"),
		txn("t1", domain.Sale, "100"),
	}

	balance, err := Replay(entries)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(120)), "replayed balance %s, want 120", balance)
}

func TestReplay_Empty(t *testing.T) {
	balance, err := Replay(nil)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestRebalance(t *testing.T) {
	// Stored balances are stale on purpose; Rebalance must rewrite all of them.
	entries := []domain.Transaction{
		txn("t3", domain.Receipt, "30"),
		txn("t2", domain.Sale, "50"),
		txn("t1", domain.Sale, "100"),
	}
	currentBalance := decimal.NewFromInt(120)

	err := Rebalance(entries, currentBalance)
	require.NoError(t, err)

	assert.True(t, entries[0].Balance.Equal(decimal.NewFromInt(120)))
	assert.True(t, entries[1].Balance.Equal(decimal.NewFromInt(150)))
	assert.True(t, entries[2].Balance.Equal(decimal.NewFromInt(100)))

	assert.NoError(t, VerifyInvariant(entries, currentBalance))
}

func TestRebalance_Empty(t *testing.T) {
	assert.NoError(t, Rebalance(nil, decimal.NewFromInt(5)))
}

func TestVerifyInvariant_DetectsDrift(t *testing.T) {
	entries := []domain.Transaction{
		txn("t2", domain.Sale, "50"),
		txn("t1", domain.Sale, "100"),
	}
	entries[1].Balance = decimal.NewFromInt(100)
	entries[0].Balance = decimal.NewFromInt(151) // off by one

	err := VerifyInvariant(entries, decimal.NewFromInt(151))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match replayed balance")
}

func TestVerifyInvariant_CurrentBalanceMismatch(t *testing.T) {
	entries := []domain.Transaction{txn("t1", domain.Sale, "100")}
	entries[0].Balance = decimal.NewFromInt(100)

	err := VerifyInvariant(entries, decimal.NewFromInt(90))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match current balance")
}
