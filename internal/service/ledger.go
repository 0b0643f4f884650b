package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"wager-ledger/internal/metrics"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// rollback and return the existing adjustment outside tx
var errDuplicateAdjustment = errors.New("duplicate adjustment reference")

type LedgerServiceImpl struct {
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
}

func NewLedgerService(
	accountRepo repository.AccountRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		dbManager:   dbManager,
		logger:      logger,
	}
}

func (s *LedgerServiceImpl) Debit(ctx context.Context, accountID, amount int64, kind model.EntryKind, referenceID string) (*model.LedgerEntry, error) {
	var entry *model.LedgerEntry
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		entry, err = s.DebitTx(ctx, account, amount, kind, referenceID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LedgerServiceImpl) Credit(ctx context.Context, accountID, amount int64, kind model.EntryKind, referenceID string) (*model.LedgerEntry, error) {
	var entry *model.LedgerEntry
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		entry, err = s.CreditTx(ctx, account, amount, kind, referenceID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LedgerServiceImpl) ExecuteSpin(ctx context.Context, accountID, cost, prize int64, referenceID string) (*model.SpinPosting, error) {
	var posting *model.SpinPosting
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		posting, err = s.ExecuteSpinTx(ctx, account, cost, prize, referenceID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

func (s *LedgerServiceImpl) DebitTx(ctx context.Context, account *model.Account, amount int64, kind model.EntryKind, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error) {
	if !kind.IsDebit() {
		return nil, fmt.Errorf("%w: %s is not a debit", model.ErrInvalidKind, kind)
	}
	if err := checkDebit(account, amount); err != nil {
		return nil, err
	}

	entry, err := s.apply(ctx, account, kind, -amount, referenceID, tx)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, account, tx); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("account_id", account.ID).
		Str("kind", kind.String()).
		Int64("amount", amount).
		Int64("balance_after", entry.BalanceAfter).
		Msg("ledger debit")
	return entry, nil
}

func (s *LedgerServiceImpl) CreditTx(ctx context.Context, account *model.Account, amount int64, kind model.EntryKind, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error) {
	switch kind {
	case model.KindSpinCredit, model.KindDeposit, model.KindWithdrawalRelease:
	default:
		return nil, fmt.Errorf("%w: %s is not a credit", model.ErrInvalidKind, kind)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive", model.ErrInvalidAmount)
	}

	entry, err := s.apply(ctx, account, kind, amount, referenceID, tx)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, account, tx); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("account_id", account.ID).
		Str("kind", kind.String()).
		Int64("amount", amount).
		Int64("balance_after", entry.BalanceAfter).
		Msg("ledger credit")
	return entry, nil
}

func (s *LedgerServiceImpl) ExecuteSpinTx(ctx context.Context, account *model.Account, cost, prize int64, referenceID string, tx pgx.Tx) (*model.SpinPosting, error) {
	if prize < 0 {
		return nil, fmt.Errorf("%w: prize cannot be negative", model.ErrInvalidAmount)
	}
	if err := checkDebit(account, cost); err != nil {
		return nil, err
	}

	posting := &model.SpinPosting{}
	debit, err := s.apply(ctx, account, model.KindSpinDebit, -cost, referenceID, tx)
	if err != nil {
		return nil, err
	}
	posting.Debit = debit

	if prize > 0 {
		credit, err := s.apply(ctx, account, model.KindSpinCredit, prize, referenceID, tx)
		if err != nil {
			return nil, err
		}
		posting.Credit = credit
	}

	if err := s.persist(ctx, account, tx); err != nil {
		return nil, err
	}
	posting.BalanceAfter = account.AvailableBalance
	return posting, nil
}

func (s *LedgerServiceImpl) SettleWithdrawalTx(ctx context.Context, account *model.Account, amount int64, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: settle amount must be positive", model.ErrInvalidAmount)
	}
	entry, err := s.apply(ctx, account, model.KindWithdrawalSettle, 0, referenceID, tx)
	if err != nil {
		return nil, err
	}
	if account.PendingHold < amount {
		return nil, fmt.Errorf("%w: account %d pending hold %d below settled amount %d",
			model.ErrLedgerCorruption, account.ID, account.PendingHold, amount)
	}
	account.PendingHold -= amount
	account.TotalWithdrawn += amount

	if err := s.persist(ctx, account, tx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("account_id", account.ID).
		Str("reference_id", referenceID).
		Int64("amount", amount).
		Msg("withdrawal settled")
	return entry, nil
}

// apply appends one entry and moves the in-memory projection. The caller persists the account.
func (s *LedgerServiceImpl) apply(ctx context.Context, account *model.Account, kind model.EntryKind, delta int64, referenceID string, tx pgx.Tx) (*model.LedgerEntry, error) {
	if delta > 0 && account.AvailableBalance > math.MaxInt64-delta {
		return nil, fmt.Errorf("%w: balance overflow", model.ErrInvalidAmount)
	}
	next := account.AvailableBalance + delta
	if next < 0 {
		return nil, &model.FundsError{Balance: account.AvailableBalance, Requested: -delta}
	}

	switch kind {
	case model.KindSpinDebit:
		account.TotalWagered -= delta
	case model.KindSpinCredit:
		account.TotalWon += delta
	case model.KindDeposit:
		account.TotalDeposited += delta
	case model.KindWithdrawalHold:
		account.PendingHold -= delta
	case model.KindWithdrawalRelease:
		if account.PendingHold < delta {
			return nil, fmt.Errorf("%w: account %d pending hold %d below release %d",
				model.ErrLedgerCorruption, account.ID, account.PendingHold, delta)
		}
		account.PendingHold -= delta
	}

	entry := &model.LedgerEntry{
		AccountID:    account.ID,
		Kind:         kind,
		Amount:       delta,
		BalanceAfter: next,
		ReferenceID:  referenceID,
	}
	if err := s.ledgerRepo.InsertEntry(ctx, entry, tx); err != nil {
		if errors.Is(err, model.ErrDuplicateEntry) {
			return nil, fmt.Errorf("%w: %s %s", model.ErrDuplicateEntry, kind, referenceID)
		}
		return nil, fmt.Errorf("insert ledger entry: %w", err)
	}
	account.AvailableBalance = next
	return entry, nil
}

func (s *LedgerServiceImpl) persist(ctx context.Context, account *model.Account, tx pgx.Tx) error {
	if err := s.accountRepo.UpdateAccount(ctx, account, tx); err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func checkDebit(account *model.Account, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit amount must be positive", model.ErrInvalidAmount)
	}
	if account.Status != model.AccountActive {
		return model.ErrAccountInactive
	}
	if account.AvailableBalance < amount {
		return &model.FundsError{Balance: account.AvailableBalance, Requested: amount}
	}
	return nil
}

// Adjust posts an operator correction. A repeated reference returns the original entry.
func (s *LedgerServiceImpl) Adjust(ctx context.Context, accountID, amount int64, referenceID string) (*model.LedgerEntry, error) {
	if amount == 0 {
		return nil, fmt.Errorf("%w: adjustment cannot be zero", model.ErrInvalidAmount)
	}

	var entry *model.LedgerEntry
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}

		entry, err = s.apply(ctx, account, model.KindAdjustment, amount, referenceID, tx)
		if err != nil {
			if errors.Is(err, model.ErrDuplicateEntry) {
				return errDuplicateAdjustment
			}
			return err
		}
		return s.persist(ctx, account, tx)
	})

	if errors.Is(err, errDuplicateAdjustment) {
		existing, getErr := s.ledgerRepo.GetEntryByReference(ctx, referenceID, model.KindAdjustment)
		if getErr != nil {
			return nil, fmt.Errorf("get adjustment after duplicate: %w", getErr)
		}
		if existing.AccountID != accountID || existing.Amount != amount {
			return nil, fmt.Errorf("%w: reference %s already used for a different adjustment", model.ErrDuplicateEntry, referenceID)
		}
		s.logger.Info().Str("reference_id", referenceID).Int64("account_id", accountID).Msg("adjustment already applied")
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Warn().
		Int64("account_id", accountID).
		Int64("amount", amount).
		Str("reference_id", referenceID).
		Int64("balance_after", entry.BalanceAfter).
		Msg("ledger adjustment posted")
	return entry, nil
}

// Reconcile never corrects the cached balance. A mismatch freezes settlement for the account.
func (s *LedgerServiceImpl) Reconcile(ctx context.Context, accountID int64) (*model.Reconciliation, error) {
	var rec *model.Reconciliation
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		rec, err = s.ReconcileTx(ctx, account, tx)
		return err
	})

	var corrupt *model.CorruptionError
	if errors.As(err, &corrupt) {
		// the freeze must survive the rollback above
		if freezeErr := s.Freeze(ctx, accountID, corrupt.Error()); freezeErr != nil {
			return nil, errors.Join(err, freezeErr)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *LedgerServiceImpl) ReconcileTx(ctx context.Context, account *model.Account, tx pgx.Tx) (*model.Reconciliation, error) {
	sum, count, err := s.ledgerRepo.SumEntries(ctx, account.ID, tx)
	if err != nil {
		return nil, fmt.Errorf("sum ledger entries: %w", err)
	}

	rec := &model.Reconciliation{
		AccountID:      account.ID,
		CachedBalance:  account.AvailableBalance,
		LedgerBalance:  sum,
		EntryCount:     count,
		Consistent:     sum == account.AvailableBalance,
		SettlementHalt: account.SettlementFrozen,
	}
	if !rec.Consistent {
		metrics.RecordLedgerCorruption()
		s.logger.Error().
			Int64("account_id", account.ID).
			Int64("cached_balance", account.AvailableBalance).
			Int64("ledger_balance", sum).
			Int64("entry_count", count).
			Msg("ledger corruption detected")
		return rec, &model.CorruptionError{AccountID: account.ID, Cached: account.AvailableBalance, FromEntries: sum}
	}
	return rec, nil
}

func (s *LedgerServiceImpl) Freeze(ctx context.Context, accountID int64, reason string) error {
	if err := s.accountRepo.SetSettlementFrozen(ctx, accountID, true); err != nil {
		return fmt.Errorf("freeze settlement: %w", err)
	}
	s.logger.Error().Int64("account_id", accountID).Str("reason", reason).Msg("settlement frozen")
	return nil
}

// Unfreeze refuses while the ledger still disagrees with the cached balance.
func (s *LedgerServiceImpl) Unfreeze(ctx context.Context, accountID int64) (*model.Reconciliation, error) {
	var rec *model.Reconciliation
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		rec, err = s.ReconcileTx(ctx, account, tx)
		if err != nil {
			return err
		}
		if err := s.accountRepo.SetSettlementFrozen(ctx, accountID, false, tx); err != nil {
			return fmt.Errorf("unfreeze settlement: %w", err)
		}
		rec.SettlementHalt = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Warn().Int64("account_id", accountID).Int64("ledger_balance", rec.LedgerBalance).Msg("settlement resumed")
	return rec, nil
}

func (s *LedgerServiceImpl) CreateAccount(ctx context.Context, accountID int64) (*model.Account, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: account id must be positive", model.ErrInvalidAmount)
	}
	account := &model.Account{ID: accountID, Status: model.AccountActive}
	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, model.ErrAccountExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info().Int64("account_id", accountID).Msg("account created")
	return account, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, accountID int64) (*model.BalanceResponse, error) {
	account, err := s.accountRepo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	return &model.BalanceResponse{
		AccountID:        accountID,
		AvailableBalance: account.AvailableBalance,
		PendingHold:      account.PendingHold,
		Display:          FormatMinor(account.AvailableBalance),
	}, nil
}

func (s *LedgerServiceImpl) ListEntries(ctx context.Context, accountID int64, limit, offset int) (*model.LedgerListResponse, error) {
	entries, total, err := s.ledgerRepo.ListEntries(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	return &model.LedgerListResponse{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// FormatMinor renders minor units with two decimals.
func FormatMinor(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}
