package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInvalidConfiguration   = errors.New("invalid configuration")
	ErrFairnessViolation      = errors.New("fairness violation")
	ErrDuplicateNonce         = errors.New("duplicate nonce")
	ErrLedgerCorruption       = errors.New("ledger corruption")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrBelowMinimum           = errors.New("amount below minimum")
	ErrDailyLimitExceeded     = errors.New("daily limit exceeded")
	ErrCooldownActive         = errors.New("cooldown active")

	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidKind        = errors.New("invalid ledger entry kind")
	ErrInvalidDecision    = errors.New("invalid review decision")
	ErrInvalidClientSeed  = errors.New("invalid client seed")
	ErrDuplicateEntry     = errors.New("duplicate ledger entry")
	ErrEntryNotFound      = errors.New("ledger entry not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account inactive")
	ErrSpinNotFound       = errors.New("spin not found")
	ErrSettlementNotFound = errors.New("settlement request not found")
	ErrEpochNotFound      = errors.New("seed epoch not found")
	ErrSeedNotRevealed    = errors.New("server seed not revealed yet")
	ErrPrizeTableNotFound = errors.New("prize table not found")
	ErrForbidden          = errors.New("forbidden")
)

// FundsError carries the balance the caller can react to.
type FundsError struct {
	Balance   int64
	Requested int64
}

func (e *FundsError) Error() string {
	return fmt.Sprintf("%s: balance %d, requested %d", ErrInsufficientFunds, e.Balance, e.Requested)
}

func (e *FundsError) Unwrap() error { return ErrInsufficientFunds }

// LimitError reports a withdrawal policy violation. Err is ErrBelowMinimum or ErrDailyLimitExceeded.
type LimitError struct {
	Err       error
	Limit     int64
	Used      int64
	Requested int64
}

func (e *LimitError) Error() string {
	if errors.Is(e.Err, ErrBelowMinimum) {
		return fmt.Sprintf("%s: minimum %d, requested %d", e.Err, e.Limit, e.Requested)
	}
	return fmt.Sprintf("%s: limit %d, used %d, requested %d", e.Err, e.Limit, e.Used, e.Requested)
}

func (e *LimitError) Unwrap() error { return e.Err }

type CooldownError struct {
	RetryAfter time.Duration
	Reason     string
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %s, retry after %s", ErrCooldownActive, e.Reason, e.RetryAfter.Round(time.Second))
}

func (e *CooldownError) Unwrap() error { return ErrCooldownActive }

// CorruptionError is returned by reconciliation when the cached balance disagrees with the entries.
type CorruptionError struct {
	AccountID   int64
	Cached      int64
	FromEntries int64
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s: account %d cached balance %d, ledger sum %d",
		ErrLedgerCorruption, e.AccountID, e.Cached, e.FromEntries)
}

func (e *CorruptionError) Unwrap() error { return ErrLedgerCorruption }
