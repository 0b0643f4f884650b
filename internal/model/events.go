package model

import "time"

// Outbox payloads. Consumers outside this service decode these shapes.

type SpinResolvedEvent struct {
	SpinID         string    `json:"spin_id"`
	AccountID      int64     `json:"account_id"`
	PrizeAmount    int64     `json:"prize_amount"`
	PrizeIndex     int       `json:"prize_index"`
	BalanceAfter   int64     `json:"balance_after"`
	Epoch          int64     `json:"epoch"`
	Nonce          int64     `json:"nonce"`
	ServerSeedHash string    `json:"server_seed_hash"`
	CreatedAt      time.Time `json:"created_at"`
}

type SettlementEvent struct {
	RequestID  string           `json:"request_id"`
	AccountID  int64            `json:"account_id"`
	Direction  Direction        `json:"direction"`
	Amount     int64            `json:"amount"`
	Status     SettlementStatus `json:"status"`
	ReviewerID string           `json:"reviewer_id,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	At         time.Time        `json:"at"`
}

type FairnessViolationEvent struct {
	SpinID    string    `json:"spin_id"`
	AccountID int64     `json:"account_id"`
	Epoch     int64     `json:"epoch"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}
