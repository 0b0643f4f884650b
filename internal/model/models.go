package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the cached balance projection. Amounts are minor currency units.
type Account struct {
	ID               int64         `json:"id"`
	AvailableBalance int64         `json:"available_balance"`
	PendingHold      int64         `json:"pending_hold"`
	TotalDeposited   int64         `json:"total_deposited"`
	TotalWithdrawn   int64         `json:"total_withdrawn"`
	TotalWagered     int64         `json:"total_wagered"`
	TotalWon         int64         `json:"total_won"`
	SpinsAvailable   int           `json:"spins_available"`
	LastSpinAt       *time.Time    `json:"last_spin_at,omitempty"`
	Status           AccountStatus `json:"status"`
	SettlementFrozen bool          `json:"settlement_frozen"`
	Version          int           `json:"version"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type LedgerEntry struct {
	ID           int64     `json:"id"`
	AccountID    int64     `json:"account_id"`
	Kind         EntryKind `json:"kind"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	ReferenceID  string    `json:"reference_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type SpinRecord struct {
	ID             string    `json:"id"`
	AccountID      int64     `json:"account_id"`
	Cost           int64     `json:"cost"`
	PrizeAmount    int64     `json:"prize_amount"`
	PrizeIndex     int       `json:"prize_index"`
	ClientSeed     string    `json:"client_seed"`
	ServerSeed     string    `json:"server_seed,omitempty"`
	ServerSeedHash string    `json:"server_seed_hash"`
	Epoch          int64     `json:"epoch"`
	Nonce          int64     `json:"nonce"`
	TableVersion   int64     `json:"table_version"`
	DrawValue      string    `json:"draw_value"`
	NetResult      int64     `json:"net_result"`
	Flagged        bool      `json:"flagged"`
	FlagReason     string    `json:"flag_reason,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SettlementRequest struct {
	ID          string            `json:"id"`
	AccountID   int64             `json:"account_id"`
	Direction   Direction         `json:"direction"`
	Amount      int64             `json:"amount"`
	Evidence    map[string]string `json:"evidence"`
	Status      SettlementStatus  `json:"status"`
	ReviewerID  *string           `json:"reviewer_id,omitempty"`
	ReviewNotes string            `json:"review_notes,omitempty"`
	TransferRef string            `json:"transfer_ref,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
}

// ServerSeed is one commit-reveal epoch.
type ServerSeed struct {
	Epoch      int64     `json:"epoch"`
	ServerSeed string    `json:"-"`
	Commitment string    `json:"commitment"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

// Revealed reports whether the seed may be disclosed at now.
func (s *ServerSeed) Revealed(now time.Time) bool {
	return !now.Before(s.EndsAt)
}

type PrizeEntry struct {
	Payout int64           `json:"payout"`
	Weight decimal.Decimal `json:"weight"`
}

// PrizeTableConfig is the stored form of a prize table version.
type PrizeTableConfig struct {
	Version   int64        `json:"version"`
	SpinCost  int64        `json:"spin_cost"`
	Entries   []PrizeEntry `json:"entries"`
	CreatedBy string       `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
}

type OutboxMessage struct {
	ID            int64        `json:"id"`
	Topic         string       `json:"topic"`
	BizKey        string       `json:"biz_key"`
	Payload       []byte       `json:"payload"`
	Status        OutboxStatus `json:"status"`
	RetryCount    int          `json:"retry_count"`
	LastError     string       `json:"last_error,omitempty"`
	NextAttemptAt time.Time    `json:"next_attempt_at"`
	CreatedAt     time.Time    `json:"created_at"`
}

// SpinPosting is the ledger side of one executed spin.
type SpinPosting struct {
	Debit        *LedgerEntry
	Credit       *LedgerEntry
	BalanceAfter int64
}

type Reconciliation struct {
	AccountID      int64 `json:"account_id"`
	CachedBalance  int64 `json:"cached_balance"`
	LedgerBalance  int64 `json:"ledger_balance"`
	EntryCount     int64 `json:"entry_count"`
	Consistent     bool  `json:"consistent"`
	SettlementHalt bool  `json:"settlement_frozen"`
}

// LargeWin is one item of the public announcement feed.
type LargeWin struct {
	SpinID      string    `json:"spin_id"`
	AccountID   int64     `json:"account_id"`
	PrizeAmount int64     `json:"prize_amount"`
	CreatedAt   time.Time `json:"created_at"`
}
