package repository

import (
	"context"
	"time"
	"wager-ledger/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccountRepository stores the cached balance projection of each account
type AccountRepository interface {
	// CreateAccount inserts a zero-balance account
	CreateAccount(ctx context.Context, account *model.Account) error

	// GetAccount retrieves an account without locking
	GetAccount(ctx context.Context, accountID int64, tx ...pgx.Tx) (*model.Account, error)

	// GetAccountForUpdate retrieves an account with row-level lock (must be in transaction)
	GetAccountForUpdate(ctx context.Context, accountID int64, tx pgx.Tx) (*model.Account, error)

	// UpdateAccount writes balances, counters and spin state of a locked account
	UpdateAccount(ctx context.Context, account *model.Account, tx pgx.Tx) error

	// SetSettlementFrozen halts or resumes automated settlement for an account
	SetSettlementFrozen(ctx context.Context, accountID int64, frozen bool, tx ...pgx.Tx) error
}

// LedgerRepository is the append-only entry log
type LedgerRepository interface {
	// InsertEntry appends an entry, ErrDuplicateEntry when (reference_id, kind) exists
	InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) error

	// SumEntries returns the sum of amounts and number of entries for an account
	SumEntries(ctx context.Context, accountID int64, tx ...pgx.Tx) (int64, int64, error)

	// ListEntries retrieves paginated entries in commit order, newest first
	ListEntries(ctx context.Context, accountID int64, limit, offset int) ([]*model.LedgerEntry, int, error)

	// GetEntryByReference retrieves the entry of a kind written for a reference
	GetEntryByReference(ctx context.Context, referenceID string, kind model.EntryKind, tx ...pgx.Tx) (*model.LedgerEntry, error)
}

// SpinRepository stores resolved spins
type SpinRepository interface {
	InsertSpin(ctx context.Context, spin *model.SpinRecord, tx pgx.Tx) error
	GetSpin(ctx context.Context, spinID string, tx ...pgx.Tx) (*model.SpinRecord, error)
	ListSpinsByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*model.SpinRecord, int, error)

	// FlagSpin marks a spin for review without touching its balance effect
	FlagSpin(ctx context.Context, spinID, reason string, tx ...pgx.Tx) error
}

// SettlementRepository stores deposit and withdrawal requests
type SettlementRepository interface {
	InsertRequest(ctx context.Context, req *model.SettlementRequest, tx pgx.Tx) error
	GetRequest(ctx context.Context, requestID string, tx ...pgx.Tx) (*model.SettlementRequest, error)

	// GetRequestForUpdate retrieves a request with row-level lock (must be in transaction)
	GetRequestForUpdate(ctx context.Context, requestID string, tx pgx.Tx) (*model.SettlementRequest, error)

	// UpdateRequest persists status, reviewer, notes, transfer reference and resolution time
	UpdateRequest(ctx context.Context, req *model.SettlementRequest, tx pgx.Tx) error

	// SumWithdrawalsSince sums withdrawals that still count against the daily limit
	SumWithdrawalsSince(ctx context.Context, accountID int64, since time.Time, tx pgx.Tx) (int64, error)

	// ListPendingCreated retrieves requests in one of statuses created in [from, to), oldest first
	ListPendingCreated(ctx context.Context, statuses []model.SettlementStatus, from, to time.Time, limit int) ([]*model.SettlementRequest, error)

	// ListStaleWithdrawals retrieves submitted withdrawals created before cutoff, oldest first
	ListStaleWithdrawals(ctx context.Context, cutoff time.Time, limit int) ([]*model.SettlementRequest, error)

	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*model.SettlementRequest, int, error)
	ListByStatus(ctx context.Context, status model.SettlementStatus, limit, offset int) ([]*model.SettlementRequest, int, error)
}

// SeedRepository stores committed server seeds and per-epoch nonces
type SeedRepository interface {
	// EnsureEpoch inserts the seed unless the epoch exists and returns the stored row
	EnsureEpoch(ctx context.Context, seed *model.ServerSeed) (*model.ServerSeed, error)

	GetEpoch(ctx context.Context, epoch int64) (*model.ServerSeed, error)

	// ClaimNonce records the nonce for (account, epoch). A nil nonce is assigned
	// highest+1; a supplied nonce not above the highest fails with ErrDuplicateNonce.
	ClaimNonce(ctx context.Context, accountID, epoch int64, nonce *int64, tx pgx.Tx) (int64, error)
}

// PrizeTableRepository stores every prize table version
type PrizeTableRepository interface {
	LatestPrizeTable(ctx context.Context) (*model.PrizeTableConfig, error)
	GetPrizeTable(ctx context.Context, version int64) (*model.PrizeTableConfig, error)

	// InsertPrizeTable stores a new version, ErrDuplicateEntry when the version exists
	InsertPrizeTable(ctx context.Context, cfg *model.PrizeTableConfig) error
}

// OutboxRepository stores events committed with the business transaction
type OutboxRepository interface {
	Enqueue(ctx context.Context, msg *model.OutboxMessage, tx pgx.Tx) error

	// ClaimPending leases due pending messages so other dispatchers skip them
	ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*model.OutboxMessage, error)

	MarkSent(ctx context.Context, id int64) error

	// MarkFailed records a delivery failure, next attempt time and whether the message is dead
	MarkFailed(ctx context.Context, id int64, lastErr string, nextAttempt time.Time, dead bool) error
}
