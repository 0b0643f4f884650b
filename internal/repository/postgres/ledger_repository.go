package postgres

import (
	"context"
	"errors"
	"fmt"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository.
// Rows are never updated or deleted; a trigger rejects both.
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertEntry appends an entry to the ledger
func (r *LedgerRepositoryImpl) InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error {
	query := `
        INSERT INTO ledger_entries (account_id, kind, amount, balance_after, reference_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.AccountID, string(entry.Kind), entry.Amount, entry.BalanceAfter, entry.ReferenceID).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s/%s", model.ErrDuplicateEntry, entry.Kind, entry.ReferenceID)
		}
		if ok, _ := isCheckViolation(err); ok {
			return fmt.Errorf("%w: entry would leave balance %d", model.ErrInsufficientFunds, entry.BalanceAfter)
		}
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}
	return nil
}

// SumEntries returns the ledger balance and entry count of an account
func (r *LedgerRepositoryImpl) SumEntries(ctx context.Context, accountID int64, tx ...pgx.Tx) (int64, int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0)::BIGINT, COUNT(*) FROM ledger_entries WHERE account_id = $1`

	var sum, count int64
	if err := r.getExecutor(tx...).QueryRow(ctx, query, accountID).Scan(&sum, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to sum ledger entries: %w", err)
	}
	return sum, count, nil
}

// ListEntries retrieves paginated entries, newest first
func (r *LedgerRepositoryImpl) ListEntries(ctx context.Context, accountID int64, limit, offset int) ([]*model.LedgerEntry, int, error) {
	query := `
        SELECT id, account_id, kind, amount, balance_after, reference_id, created_at, COUNT(*) OVER()
        FROM ledger_entries WHERE account_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var (
		entries []*model.LedgerEntry
		total   int
	)
	for rows.Next() {
		e := &model.LedgerEntry{}
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.BalanceAfter, &e.ReferenceID, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read ledger entries: %w", err)
	}
	return entries, total, nil
}

// GetEntryByReference retrieves the entry of a kind written for a reference
func (r *LedgerRepositoryImpl) GetEntryByReference(ctx context.Context, referenceID string, kind model.EntryKind, tx ...pgx.Tx) (*model.LedgerEntry, error) {
	query := `
        SELECT id, account_id, kind, amount, balance_after, reference_id, created_at
        FROM ledger_entries WHERE reference_id = $1 AND kind = $2`

	e := &model.LedgerEntry{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, referenceID, string(kind)).
		Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.BalanceAfter, &e.ReferenceID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return e, nil
}
