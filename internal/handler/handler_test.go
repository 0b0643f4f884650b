package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wager-ledger/internal/auth"
	"wager-ledger/internal/config"
	"wager-ledger/internal/model"
	eventmocks "wager-ledger/mocks/events"
	"wager-ledger/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	ledger      *mocks.LedgerService
	spins       *mocks.SpinService
	settlements *mocks.SettlementService
	fairness    *mocks.FairnessService
	prizes      *mocks.PrizeService
	feed        *eventmocks.LargeWinFeed
	verifier    *auth.Verifier
	router      *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	s := &testServer{
		ledger:      mocks.NewLedgerService(t),
		spins:       mocks.NewSpinService(t),
		settlements: mocks.NewSettlementService(t),
		fairness:    mocks.NewFairnessService(t),
		prizes:      mocks.NewPrizeService(t),
		feed:        eventmocks.NewLargeWinFeed(t),
		verifier:    auth.NewVerifier(config.AuthConfig{JWTSecret: "test-secret", Issuer: "wager-ledger"}),
	}
	h := NewHandler(s.ledger, s.spins, s.settlements, s.fairness, s.prizes, s.feed, s.verifier, zerolog.Nop())
	s.router = h.SetupRoutes()
	return s
}

func (s *testServer) token(t *testing.T, accountID int64, subject, role string) string {
	token, err := s.verifier.Issue(accountID, subject, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Spin_Success(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("Spin", mock.Anything, int64(42), &model.SpinRequest{ClientSeed: "lucky_seed"}).Return(&model.SpinResponse{
		SpinID:       "spin-1",
		PrizeAmount:  50,
		PrizeIndex:   1,
		BalanceAfter: 950,
		Nonce:        1,
		ClientSeed:   "lucky_seed",
	}, nil)

	w := s.do(http.MethodPost, "/api/v1/spins", player, model.SpinRequest{ClientSeed: "lucky_seed"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.SpinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "spin-1", resp.SpinID)
	assert.Equal(t, int64(950), resp.BalanceAfter)
}

func TestHandler_Spin_EmptyBody(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("Spin", mock.Anything, int64(42), &model.SpinRequest{}).Return(&model.SpinResponse{SpinID: "spin-1"}, nil)

	w := s.do(http.MethodPost, "/api/v1/spins", player, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Spin_InvalidClientSeed(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	w := s.do(http.MethodPost, "/api/v1/spins", player, map[string]any{"client_seed": "not a seed!"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_Spin_InsufficientFunds(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("Spin", mock.Anything, int64(42), mock.Anything).Return(nil, &model.FundsError{Balance: 40, Requested: 100})

	w := s.do(http.MethodPost, "/api/v1/spins", player, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Code)
	require.NotNil(t, resp.Balance)
	assert.Equal(t, int64(40), *resp.Balance)
}

func TestHandler_Spin_Cooldown(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("Spin", mock.Anything, int64(42), mock.Anything).
		Return(nil, &model.CooldownError{RetryAfter: 1500 * time.Millisecond, Reason: "minimum interval between spins"})

	w := s.do(http.MethodPost, "/api/v1/spins", player, nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	resp := decodeError(t, w)
	assert.Equal(t, "COOLDOWN_ACTIVE", resp.Code)
	require.NotNil(t, resp.RetryAfterSeconds)
	assert.Equal(t, int64(2), *resp.RetryAfterSeconds)
}

func TestHandler_Spin_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/spins", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, w).Code)
}

func TestHandler_Spin_ReviewerTokenHasNoAccount(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	w := s.do(http.MethodPost, "/api/v1/spins", reviewer, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListSpins_ClampsLimit(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("ListSpins", mock.Anything, int64(42), maxPageSize, 20).Return(&model.SpinListResponse{Limit: maxPageSize, Offset: 20}, nil)

	w := s.do(http.MethodGet, "/api/v1/spins?limit=500&offset=20", player, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetSpin_OtherAccountHidden(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("GetSpin", mock.Anything, "spin-9").Return(&model.SpinRecord{ID: "spin-9", AccountID: 7}, nil)

	w := s.do(http.MethodGet, "/api/v1/spins/spin-9", player, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SPIN_NOT_FOUND", decodeError(t, w).Code)
}

func TestHandler_GetSpin_ReviewerSeesAll(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	s.spins.On("GetSpin", mock.Anything, "spin-9").Return(&model.SpinRecord{ID: "spin-9", AccountID: 7}, nil)

	w := s.do(http.MethodGet, "/api/v1/spins/spin-9", reviewer, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_VerifySpin_NotRevealed(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.spins.On("GetSpin", mock.Anything, "spin-1").Return(&model.SpinRecord{ID: "spin-1", AccountID: 42}, nil)
	s.fairness.On("VerifySpin", mock.Anything, "spin-1").Return(nil, fmt.Errorf("%w: epoch 5", model.ErrSeedNotRevealed))

	w := s.do(http.MethodGet, "/api/v1/spins/spin-1/verify", player, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SEED_NOT_REVEALED", decodeError(t, w).Code)
}

func TestHandler_RequestWithdrawal_DailyLimit(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.settlements.On("RequestWithdrawal", mock.Anything, int64(42), mock.Anything).
		Return(nil, &model.LimitError{Err: model.ErrDailyLimitExceeded, Limit: 500000, Used: 499000, Requested: 2000})

	w := s.do(http.MethodPost, "/api/v1/settlements/withdrawals", player, model.WithdrawalRequest{
		Amount:      2000,
		Destination: map[string]string{"iban": "DE00"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "DAILY_LIMIT_EXCEEDED", resp.Code)
	require.NotNil(t, resp.Limit)
	assert.Equal(t, int64(500000), *resp.Limit)
}

func TestHandler_RequestDeposit_Success(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.settlements.On("RequestDeposit", mock.Anything, int64(42), &model.DepositRequest{
		Amount:   5000,
		Evidence: map[string]string{"receipt": "r-1"},
	}).Return(&model.SettlementResponse{RequestID: "req-1", Status: "submitted"}, nil)

	w := s.do(http.MethodPost, "/api/v1/settlements/deposits", player, model.DepositRequest{
		Amount:   5000,
		Evidence: map[string]string{"receipt": "r-1"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.SettlementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "submitted", resp.Status)
}

func TestHandler_RequestDeposit_InvalidBody(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	w := s.do(http.MethodPost, "/api/v1/settlements/deposits", player, map[string]any{"amount": -5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_Review_RequiresReviewer(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	w := s.do(http.MethodPost, "/api/v1/admin/settlements/req-1/review", player, model.ReviewRequest{Decision: "approve"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, w).Code)
}

func TestHandler_Review_Success(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	s.settlements.On("Review", mock.Anything, "req-1", "rev-1", model.DecisionApprove, "looks fine").
		Return(&model.ReviewResponse{RequestID: "req-1", NewStatus: "approved"}, nil)

	w := s.do(http.MethodPost, "/api/v1/admin/settlements/req-1/review", reviewer, model.ReviewRequest{Decision: "approve", Notes: "looks fine"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.NewStatus)
}

func TestHandler_Review_InvalidDecision(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	w := s.do(http.MethodPost, "/api/v1/admin/settlements/req-1/review", reviewer, map[string]string{"decision": "maybe"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Review_FrozenAccount(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	s.settlements.On("Review", mock.Anything, "req-1", "rev-1", model.DecisionApprove, "").
		Return(nil, &model.CorruptionError{AccountID: 42, Cached: 100, FromEntries: 90})

	w := s.do(http.MethodPost, "/api/v1/admin/settlements/req-1/review", reviewer, model.ReviewRequest{Decision: "approve"})

	assert.Equal(t, http.StatusLocked, w.Code)
	assert.Equal(t, "LEDGER_CORRUPTION", decodeError(t, w).Code)
}

func TestHandler_ListSettlementsByStatus_InvalidStatus(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	w := s.do(http.MethodGet, "/api/v1/admin/settlements?status=lost", reviewer, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Adjust_RequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	reviewer := s.token(t, 0, "rev-1", auth.RoleReviewer)

	w := s.do(http.MethodPost, "/api/v1/admin/accounts/42/adjustments", reviewer, model.AdjustmentRequest{Amount: 100, Reference: "adj-1"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Adjust_Success(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, 0, "ops-1", auth.RoleAdmin)

	s.ledger.On("Adjust", mock.Anything, int64(42), int64(-100), "adj-1").
		Return(&model.LedgerEntry{ID: 9, AccountID: 42, Kind: model.KindAdjustment, Amount: -100, BalanceAfter: 400}, nil)

	w := s.do(http.MethodPost, "/api/v1/admin/accounts/42/adjustments", admin, model.AdjustmentRequest{Amount: -100, Reference: "adj-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_GetBalance(t *testing.T) {
	s := newTestServer(t)
	player := s.token(t, 42, "", auth.RolePlayer)

	s.ledger.On("GetBalance", mock.Anything, int64(42)).
		Return(&model.BalanceResponse{AccountID: 42, AvailableBalance: 1450, PendingHold: 200, Display: "14.50"}, nil)

	w := s.do(http.MethodGet, "/api/v1/accounts/me/balance", player, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1450), resp.AvailableBalance)
	assert.Equal(t, int64(200), resp.PendingHold)
}

func TestHandler_GetLargeWins(t *testing.T) {
	s := newTestServer(t)

	s.feed.On("Recent", mock.Anything, int64(maxFeedItems)).Return([]*model.LargeWin{{SpinID: "spin-1", PrizeAmount: 20000}}, nil)

	w := s.do(http.MethodGet, "/api/v1/feed/large-wins?limit=1000", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var wins []*model.LargeWin
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wins))
	assert.Len(t, wins, 1)
}

func TestHandler_GetExpectedProfit(t *testing.T) {
	s := newTestServer(t)
	admin := s.token(t, 0, "ops-1", auth.RoleAdmin)

	s.prizes.On("ExpectedProfit", int64(1000)).Return(&model.ProfitResponse{Version: 1, Spins: 1000, ExpectedProfit: "55000.00"})

	w := s.do(http.MethodGet, "/api/v1/admin/prizes/profit?spins=1000", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/v1/admin/prizes/profit?spins=lots", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrDuplicateNonce, http.StatusConflict, "DUPLICATE_NONCE"},
		{fmt.Errorf("wrap: %w", model.ErrInvalidStateTransition), http.StatusConflict, "INVALID_STATE_TRANSITION"},
		{&model.LimitError{Err: model.ErrBelowMinimum, Limit: 1000, Requested: 10}, http.StatusBadRequest, "BELOW_MINIMUM"},
		{model.ErrFairnessViolation, http.StatusConflict, "FAIRNESS_VIOLATION"},
		{model.ErrInvalidConfiguration, http.StatusBadRequest, "INVALID_CONFIGURATION"},
		{model.ErrAccountInactive, http.StatusForbidden, "ACCOUNT_INACTIVE"},
		{model.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND"},
		{model.ErrSettlementNotFound, http.StatusNotFound, "SETTLEMENT_NOT_FOUND"},
		{model.ErrDuplicateEntry, http.StatusConflict, "DUPLICATE_ENTRY"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

			h.handleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}
