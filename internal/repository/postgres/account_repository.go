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
var _ repository.AccountRepository = (*AccountRepositoryImpl)(nil)

const accountColumns = `id, available_balance, pending_hold, total_deposited, total_withdrawn,
        total_wagered, total_won, spins_available, last_spin_at, status, settlement_frozen,
        version, created_at, updated_at`

// AccountRepositoryImpl is the PostgreSQL implementation of AccountRepository
type AccountRepositoryImpl struct {
	*TransactionManager
}

func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	a := &model.Account{}
	err := row.Scan(&a.ID, &a.AvailableBalance, &a.PendingHold, &a.TotalDeposited, &a.TotalWithdrawn,
		&a.TotalWagered, &a.TotalWon, &a.SpinsAvailable, &a.LastSpinAt, &a.Status, &a.SettlementFrozen,
		&a.Version, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAccount inserts a zero-balance account
func (r *AccountRepositoryImpl) CreateAccount(ctx context.Context, account *model.Account) error {
	query := `
        INSERT INTO accounts (id, spins_available, status)
        VALUES ($1, $2, $3)
        RETURNING ` + accountColumns

	created, err := scanAccount(r.pool.QueryRow(ctx, query, account.ID, account.SpinsAvailable, string(model.AccountActive)))
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrAccountExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	*account = *created
	return nil
}

// GetAccount retrieves an account without locking
func (r *AccountRepositoryImpl) GetAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.getExecutor(tx...).QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAccountForUpdate retrieves an account with row-level lock
func (r *AccountRepositoryImpl) GetAccountForUpdate(ctx context.Context, accountID int64, tx pgx.Tx) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE`

	account, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account for update: %w", err)
	}
	return account, nil
}

// UpdateAccount writes the projection of a locked account and bumps its version
func (r *AccountRepositoryImpl) UpdateAccount(ctx context.Context, account *model.Account, tx pgx.Tx) error {
	query := `
        UPDATE accounts
        SET available_balance = $2,
            pending_hold = $3,
            total_deposited = $4,
            total_withdrawn = $5,
            total_wagered = $6,
            total_won = $7,
            spins_available = $8,
            last_spin_at = $9,
            status = $10,
            version = version + 1,
            updated_at = NOW()
        WHERE id = $1
        RETURNING version, updated_at`

	err := tx.QueryRow(ctx, query, account.ID, account.AvailableBalance, account.PendingHold,
		account.TotalDeposited, account.TotalWithdrawn, account.TotalWagered, account.TotalWon,
		account.SpinsAvailable, account.LastSpinAt, string(account.Status)).
		Scan(&account.Version, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAccountNotFound
		}
		// CONSTRAINT available_balance_non_negative CHECK (available_balance >= 0)
		if ok, constraint := isCheckViolation(err); ok {
			return fmt.Errorf("%w: constraint %s", model.ErrInsufficientFunds, constraint)
		}
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// SetSettlementFrozen halts or resumes automated settlement for an account
func (r *AccountRepositoryImpl) SetSettlementFrozen(ctx context.Context, accountID int64, frozen bool, tx ...pgx.Tx) error {
	query := `UPDATE accounts SET settlement_frozen = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.getExecutor(tx...).Exec(ctx, query, accountID, frozen)
	if err != nil {
		return fmt.Errorf("failed to set settlement frozen: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}
