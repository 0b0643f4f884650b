package service

import (
	"context"
	"wager-ledger/internal/model"

	"github.com/jackc/pgx/v5"
)

// LedgerService is the only code path that changes account balances.
// The *Tx variants run inside the caller's transaction on an account row the
// caller already locked; the rest open their own transaction.
type LedgerService interface {
	Debit(ctx context.Context, accountID, amount int64, kind model.EntryKind, referenceID string) (*model.LedgerEntry, error)
	Credit(ctx context.Context, accountID, amount int64, kind model.EntryKind, referenceID string) (*model.LedgerEntry, error)

	// ExecuteSpin debits cost and credits prize as one unit
	ExecuteSpin(ctx context.Context, accountID, cost, prize int64, referenceID string) (*model.SpinPosting, error)

	// Reconcile compares the cached balance with the ledger and halts settlement on mismatch
	Reconcile(ctx context.Context, accountID int64) (*model.Reconciliation, error)

	// Adjust posts a signed operator correction
	Adjust(ctx context.Context, accountID, amount int64, referenceID string) (*model.LedgerEntry, error)

	// Freeze halts automated settlement for an account
	Freeze(ctx context.Context, accountID int64, reason string) error

	// Unfreeze resumes settlement after a clean reconciliation
	Unfreeze(ctx context.Context, accountID int64) (*model.Reconciliation, error)

	CreateAccount(ctx context.Context, accountID int64) (*model.Account, error)
	GetBalance(ctx context.Context, accountID int64) (*model.BalanceResponse, error)
	ListEntries(ctx context.Context, accountID int64, limit, offset int) (*model.LedgerListResponse, error)

	DebitTx(ctx context.Context, account *model.Account, amount int64, kind model.EntryKind, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error)
	CreditTx(ctx context.Context, account *model.Account, amount int64, kind model.EntryKind, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error)
	ExecuteSpinTx(ctx context.Context, account *model.Account, cost, prize int64, referenceID string, tx pgx.Tx) (*model.SpinPosting, error)

	// SettleWithdrawalTx records the confirmed transfer of held funds; the balance does not change
	SettleWithdrawalTx(ctx context.Context, account *model.Account, amount int64, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error)

	// ReconcileTx fails with a *model.CorruptionError when the locked account disagrees with its entries
	ReconcileTx(ctx context.Context, account *model.Account, tx pgx.Tx) (*model.Reconciliation, error)
}

// SpinService resolves paid spins
type SpinService interface {
	Spin(ctx context.Context, accountID int64, req *model.SpinRequest) (*model.SpinResponse, error)
	GetSpin(ctx context.Context, spinID string) (*model.SpinRecord, error)
	ListSpins(ctx context.Context, accountID int64, limit, offset int) (*model.SpinListResponse, error)
}

// SettlementService moves deposit and withdrawal requests through their state machine
type SettlementService interface {
	RequestDeposit(ctx context.Context, accountID int64, req *model.DepositRequest) (*model.SettlementResponse, error)
	RequestWithdrawal(ctx context.Context, accountID int64, req *model.WithdrawalRequest) (*model.SettlementResponse, error)

	ClaimForReview(ctx context.Context, requestID, reviewerID string) (*model.ReviewResponse, error)

	// Review applies a reviewer decision; repeating the same decision is a no-op
	Review(ctx context.Context, requestID, reviewerID string, decision model.ReviewDecision, notes string) (*model.ReviewResponse, error)

	// ConfirmPayout marks an approved withdrawal as transferred
	ConfirmPayout(ctx context.Context, requestID, reviewerID, transferRef string) (*model.ReviewResponse, error)

	// Cancel withdraws an owner's request that is not yet approved
	Cancel(ctx context.Context, requestID string, accountID int64) (*model.ReviewResponse, error)

	GetRequest(ctx context.Context, requestID string) (*model.SettlementRequest, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) (*model.SettlementListResponse, error)
	ListByStatus(ctx context.Context, status model.SettlementStatus, limit, offset int) (*model.SettlementListResponse, error)

	// AutoCancelStale cancels and releases withdrawals left in submitted too long
	AutoCancelStale(ctx context.Context) (int, error)

	// RemindPending emits reminder events; it never changes status
	RemindPending(ctx context.Context) (int, error)
}

// FairnessService publishes commitments and verifies spins after reveal
type FairnessService interface {
	CurrentEpoch(ctx context.Context) (*model.EpochResponse, error)
	GetEpoch(ctx context.Context, epoch int64) (*model.EpochResponse, error)
	VerifySpin(ctx context.Context, spinID string) (*model.VerificationResponse, error)
	Verify(ctx context.Context, req *model.VerifyRequest) (*model.VerificationResponse, error)
	Rotate(ctx context.Context) error
}

// PrizeService manages the versioned prize table
type PrizeService interface {
	Current() *model.PrizeTableResponse
	UpdateWeights(ctx context.Context, weights []string, actor string) (*model.PrizeTableResponse, error)
	ExpectedProfit(spins int64) *model.ProfitResponse

	// Refresh adopts a newer version stored by another instance
	Refresh(ctx context.Context) error
}
