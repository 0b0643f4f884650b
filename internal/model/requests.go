package model

import "time"

type SpinRequest struct {
	ClientSeed string `json:"client_seed" binding:"omitempty,clientseed" example:"a1b2c3d4"`
	Nonce      *int64 `json:"nonce" binding:"omitempty,min=1" example:"1"`
}

type SpinResponse struct {
	SpinID         string `json:"spin_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	PrizeAmount    int64  `json:"prize_amount" example:"150"`
	PrizeIndex     int    `json:"prize_index" example:"2"`
	BalanceAfter   int64  `json:"balance_after" example:"1450"`
	ServerSeedHash string `json:"server_seed_hash"`
	Epoch          int64  `json:"epoch" example:"493812"`
	Nonce          int64  `json:"nonce" example:"1"`
	ClientSeed     string `json:"client_seed"`
	TableVersion   int64  `json:"table_version" example:"1"`
}

type DepositRequest struct {
	Amount   int64             `json:"amount" binding:"required,gt=0" example:"5000"`
	Evidence map[string]string `json:"evidence" binding:"required"`
}

type WithdrawalRequest struct {
	Amount      int64             `json:"amount" binding:"required,gt=0" example:"2000"`
	Destination map[string]string `json:"destination" binding:"required"`
}

type SettlementResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status" example:"submitted"`
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject" enums:"approve,reject"`
	Notes    string `json:"notes" binding:"max=1000"`
}

type ConfirmPayoutRequest struct {
	TransferRef string `json:"transfer_ref" binding:"required,max=128"`
}

type ReviewResponse struct {
	RequestID      string `json:"request_id"`
	NewStatus      string `json:"new_status" example:"approved"`
	AlreadyApplied bool   `json:"already_applied,omitempty"`
}

type BalanceResponse struct {
	AccountID        int64  `json:"account_id" example:"1"`
	AvailableBalance int64  `json:"available_balance" example:"1450"`
	PendingHold      int64  `json:"pending_hold" example:"200"`
	Display          string `json:"display" example:"14.50"`
}

type ErrorResponse struct {
	Error             string `json:"error" example:"insufficient funds"`
	Code              string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details           string `json:"details,omitempty"`
	Balance           *int64 `json:"balance,omitempty"`
	Limit             *int64 `json:"limit,omitempty"`
	RetryAfterSeconds *int64 `json:"retry_after_seconds,omitempty"`
}

type CreateAccountRequest struct {
	AccountID int64 `json:"account_id" binding:"required,gt=0"`
}

type AdjustmentRequest struct {
	Amount    int64  `json:"amount" binding:"required"`
	Reference string `json:"reference" binding:"required,max=128"`
	Notes     string `json:"notes" binding:"max=1000"`
}

type UpdateWeightsRequest struct {
	Weights []string `json:"weights" binding:"required,min=1" example:"0.5,0.3,0.2"`
}

type PrizeTableResponse struct {
	Version          int64        `json:"version"`
	SpinCost         int64        `json:"spin_cost"`
	Entries          []PrizeEntry `json:"entries"`
	ExpectedValue    string       `json:"expected_value"`
	HouseEdgePerSpin string       `json:"house_edge_per_spin"`
}

type ProfitResponse struct {
	Version        int64  `json:"version"`
	Spins          int64  `json:"spins"`
	ExpectedProfit string `json:"expected_profit"`
}

type EpochResponse struct {
	Epoch      int64     `json:"epoch"`
	Commitment string    `json:"commitment"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	ServerSeed string    `json:"server_seed,omitempty"`
}

type VerifyRequest struct {
	ServerSeed   string `json:"server_seed" binding:"required"`
	ClientSeed   string `json:"client_seed" binding:"required"`
	Nonce        int64  `json:"nonce" binding:"required,min=1"`
	AccountID    int64  `json:"account_id" binding:"required,gt=0"`
	TableVersion int64  `json:"table_version" binding:"required,gt=0"`
}

type VerificationResponse struct {
	SpinID         string `json:"spin_id,omitempty"`
	Epoch          int64  `json:"epoch,omitempty"`
	ServerSeed     string `json:"server_seed"`
	ServerSeedHash string `json:"server_seed_hash"`
	DrawValue      string `json:"draw_value"`
	PrizeIndex     int    `json:"prize_index"`
	PrizeAmount    int64  `json:"prize_amount"`
	Match          *bool  `json:"match,omitempty"`
}

type LedgerListResponse struct {
	Entries []*LedgerEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type SpinListResponse struct {
	Spins  []*SpinRecord `json:"spins"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type SettlementListResponse struct {
	Requests []*SettlementRequest `json:"requests"`
	Total    int                  `json:"total"`
	Limit    int                  `json:"limit"`
	Offset   int                  `json:"offset"`
}
