package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmapp/battery_shop_backend/internal/apperrors"
	"github.com/bsmapp/battery_shop_backend/internal/core/domain"
	portsrepo "github.com/bsmapp/battery_shop_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a new repository for ledger accounts and entries.
func NewPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{pool: pool}
}

// FindAccountByParty retrieves an account with its entries in append order,
// newest first.
func (r *PgxLedgerRepository) FindAccountByParty(ctx context.Context, kind domain.PartyKind, partyID string) (*domain.Account, error) {
	query := `
		SELECT account_id, party_id, kind, current_balance, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE kind = $1 AND party_id = $2;
	`
	var account domain.Account
	err := r.pool.QueryRow(ctx, query, kind, partyID).Scan(
		&account.AccountID,
		&account.PartyID,
		&account.Kind,
		&account.CurrentBalance,
		&account.CreatedAt,
		&account.CreatedBy,
		&account.LastUpdatedAt,
		&account.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account for party %s: %w", partyID, err)
	}

	account.Transactions, err = r.loadTransactions(ctx, account.AccountID)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ListAccountsByKind retrieves every account on one side of the ledger with
// its full entry list.
func (r *PgxLedgerRepository) ListAccountsByKind(ctx context.Context, kind domain.PartyKind) ([]domain.Account, error) {
	query := `
		SELECT account_id, party_id, kind, current_balance, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE kind = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		var account domain.Account
		err := row.Scan(
			&account.AccountID,
			&account.PartyID,
			&account.Kind,
			&account.CurrentBalance,
			&account.CreatedAt,
			&account.CreatedBy,
			&account.LastUpdatedAt,
			&account.LastUpdatedBy,
		)
		return account, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	for i := range accounts {
		accounts[i].Transactions, err = r.loadTransactions(ctx, accounts[i].AccountID)
		if err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

// AppendTransaction upserts the account row with its updated balance and
// inserts the new entry, atomically. The seq column preserves append order.
func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, account domain.Account, txn domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	accountQuery := `
		INSERT INTO accounts (account_id, party_id, kind, current_balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (kind, party_id) DO UPDATE SET
			current_balance = EXCLUDED.current_balance,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = tx.Exec(ctx, accountQuery,
		account.AccountID,
		account.PartyID,
		account.Kind,
		account.CurrentBalance,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert account %s: %w", account.AccountID, err)
	}

	txnQuery := `
		INSERT INTO ledger_entries (transaction_id, account_id, entry_date, entry_type, description, amount, balance, vat_amount, invoice_no, voucher_no, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, txnQuery,
		txn.TransactionID,
		account.AccountID,
		txn.Date,
		txn.Type,
		txn.Description,
		txn.Amount,
		txn.Balance,
		txn.VATAmount,
		txn.InvoiceNo,
		txn.VoucherNo,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", txn.TransactionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ledger append: %w", err)
	}
	return nil
}

// RemoveTransaction deletes one entry and rewrites the surviving balances,
// atomically. The rebalanced slice is already recomputed by the service.
func (r *PgxLedgerRepository) RemoveTransaction(ctx context.Context, account domain.Account, transactionID string, rebalanced []domain.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE accounts SET current_balance = $1, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $4;
	`, account.CurrentBalance, account.LastUpdatedAt, account.LastUpdatedBy, account.AccountID)
	if err != nil {
		return fmt.Errorf("failed to update account balance %s: %w", account.AccountID, err)
	}

	batch := &pgx.Batch{}
	for _, entry := range rebalanced {
		batch.Queue(`UPDATE ledger_entries SET balance = $1 WHERE transaction_id = $2;`, entry.Balance, entry.TransactionID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to rewrite entry balances for account %s: %w", account.AccountID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ledger removal: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) loadTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, entry_date, entry_type, description, amount, balance, vat_amount, invoice_no, voucher_no, created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY seq DESC;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.Date,
			&txn.Type,
			&txn.Description,
			&txn.Amount,
			&txn.Balance,
			&txn.VATAmount,
			&txn.InvoiceNo,
			&txn.VoucherNo,
			&txn.CreatedAt,
			&txn.CreatedBy,
			&txn.LastUpdatedAt,
			&txn.LastUpdatedBy,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return txns, nil
}
