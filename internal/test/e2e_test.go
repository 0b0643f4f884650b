package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"
	"wager-ledger/internal/auth"
	"wager-ledger/internal/config"
	"wager-ledger/internal/database"
	"wager-ledger/internal/fairness"
	"wager-ledger/internal/handler"
	"wager-ledger/internal/model"
	"wager-ledger/internal/prize"
	"wager-ledger/internal/repository/postgres"
	"wager-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool *pgxpool.Pool
	testCfg  *config.Config
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	// spins are fired back to back below
	cfg.Spin.Cooldown = 0
	cfg.Spin.DailyLimit = 0

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		fmt.Printf("failed to migrate database: %v\n", err)
		pool.Close()
		os.Exit(1)
	}

	testPool = pool
	testCfg = cfg
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

type e2e struct {
	router   *gin.Engine
	verifier *auth.Verifier
	admin    string
	reviewer string
}

func setupE2E(t *testing.T) *e2e {
	if testPool == nil {
		t.Skip("Database connection not available")
	}
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	logger := zerolog.Nop()

	accountRepo := postgres.NewAccountRepository(testPool)
	ledgerRepo := postgres.NewLedgerRepository(testPool)
	spinRepo := postgres.NewSpinRepository(testPool)
	seedRepo := postgres.NewSeedRepository(testPool)
	settlementRepo := postgres.NewSettlementRepository(testPool)
	prizeRepo := postgres.NewPrizeTableRepository(testPool)
	outboxRepo := postgres.NewOutboxRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	engine := fairness.NewEngine(seedRepo, fairness.NewSchedule(testCfg.Fairness.EpochPeriod), logger)
	_, err := engine.Rotate(ctx, time.Now())
	require.NoError(t, err)
	table, err := service.LoadPrizeTable(ctx, prizeRepo, testCfg.Spin)
	require.NoError(t, err)
	prizes := prize.NewHolder(table)

	ledgerService := service.NewLedgerService(accountRepo, ledgerRepo, dbManager, logger)
	spinService := service.NewSpinService(accountRepo, spinRepo, seedRepo, outboxRepo, dbManager, ledgerService, engine, prizes, testCfg.Spin, logger)
	settlementService := service.NewSettlementService(accountRepo, settlementRepo, outboxRepo, dbManager, ledgerService, testCfg.Settlement, logger)
	fairnessService := service.NewFairnessService(spinRepo, prizeRepo, outboxRepo, dbManager, engine, logger)
	prizeService := service.NewPrizeService(prizeRepo, prizes, logger)

	verifier := auth.NewVerifier(testCfg.Auth)
	h := handler.NewHandler(ledgerService, spinService, settlementService, fairnessService, prizeService, nil, verifier, logger)

	env := &e2e{router: h.SetupRoutes(), verifier: verifier}
	env.admin = env.token(t, 0, "ops-admin", auth.RoleAdmin)
	env.reviewer = env.token(t, 0, "ops-reviewer", auth.RoleReviewer)
	return env
}

func (e *e2e) token(t *testing.T, accountID int64, subject, role string) string {
	token, err := e.verifier.Issue(accountID, subject, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *e2e) do(method, path, token string, body any) *httptest.ResponseRecorder {
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
	e.router.ServeHTTP(w, req)
	return w
}

// newFundedAccount creates a fresh account and credits it through an adjustment.
// Ledger rows are append-only, so every test works on its own account.
func (e *e2e) newFundedAccount(t *testing.T, funds int64) (int64, string) {
	accountID := 1_000_000 + time.Now().UnixNano()%1_000_000_000

	w := e.do(http.MethodPost, "/api/v1/admin/accounts", e.admin, model.CreateAccountRequest{AccountID: accountID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if funds > 0 {
		w = e.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/accounts/%d/adjustments", accountID), e.admin, model.AdjustmentRequest{
			Amount:    funds,
			Reference: "seed-" + uuid.NewString(),
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	return accountID, e.token(t, accountID, "", auth.RolePlayer)
}

func (e *e2e) balance(t *testing.T, token string) model.BalanceResponse {
	w := e.do(http.MethodGet, "/api/v1/accounts/me/balance", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp model.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (e *e2e) reconcile(t *testing.T, accountID int64) model.Reconciliation {
	w := e.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/accounts/%d/reconcile", accountID), e.admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp model.Reconciliation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// Test_ConcurrentSpins_SameAccount_BalanceReconciles verifies:
// - Concurrent spins on one account serialize on the account row
// - Every accepted spin gets a distinct nonce
// - Rejections are insufficient funds only, never a 500
// - The cached balance equals the sum of ledger entries afterwards
func Test_ConcurrentSpins_SameAccount_BalanceReconciles(t *testing.T) {
	e := setupE2E(t)
	accountID, player := e.newFundedAccount(t, 500)

	const numRequests = 20

	barrier := make(chan struct{})
	type result struct {
		statusCode int
		spin       model.SpinResponse
		err        model.ErrorResponse
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			w := e.do(http.MethodPost, "/api/v1/spins", player, model.SpinRequest{})
			res := result{statusCode: w.Code}
			if w.Code == http.StatusCreated {
				_ = json.Unmarshal(w.Body.Bytes(), &res.spin)
			} else {
				_ = json.Unmarshal(w.Body.Bytes(), &res.err)
			}
			results <- res
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)

	nonces := make(map[int64]bool)
	var successCount int
	for res := range results {
		assert.NotEqual(t, http.StatusInternalServerError, res.statusCode, "No 500 errors")
		switch res.statusCode {
		case http.StatusCreated:
			successCount++
			assert.False(t, nonces[res.spin.Nonce], "nonce %d reused", res.spin.Nonce)
			nonces[res.spin.Nonce] = true
		case http.StatusBadRequest:
			assert.Equal(t, "INSUFFICIENT_FUNDS", res.err.Code)
		default:
			t.Errorf("Unexpected response: status=%d, body=%+v", res.statusCode, res.err)
		}
	}
	assert.GreaterOrEqual(t, successCount, 5, "the starting funds cover at least five spins")

	rec := e.reconcile(t, accountID)
	assert.True(t, rec.Consistent)
	assert.Equal(t, rec.LedgerBalance, rec.CachedBalance)
	assert.GreaterOrEqual(t, rec.EntryCount, int64(1+successCount), "one adjustment plus at least a debit per spin")
	assert.Equal(t, e.balance(t, player).AvailableBalance, rec.CachedBalance)
}

// Test_SpinVerification_BeforeReveal verifies a fresh spin cannot be checked while its epoch is live
// and that the public commitment matches what the spin recorded.
func Test_SpinVerification_BeforeReveal(t *testing.T) {
	e := setupE2E(t)
	_, player := e.newFundedAccount(t, 1000)

	w := e.do(http.MethodPost, "/api/v1/spins", player, model.SpinRequest{ClientSeed: "e2e-client-seed"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var spin model.SpinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &spin))
	assert.Equal(t, "e2e-client-seed", spin.ClientSeed)

	w = e.do(http.MethodGet, "/api/v1/fairness/epochs/current", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var epoch model.EpochResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &epoch))
	assert.Equal(t, spin.Epoch, epoch.Epoch)
	assert.Equal(t, spin.ServerSeedHash, epoch.Commitment)
	assert.Empty(t, epoch.ServerSeed)

	w = e.do(http.MethodGet, "/api/v1/spins/"+spin.SpinID+"/verify", player, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	t.Run("Explicit nonce cannot be replayed", func(t *testing.T) {
		nonce := spin.Nonce + 10
		w := e.do(http.MethodPost, "/api/v1/spins", player, model.SpinRequest{ClientSeed: "e2e-client-seed", Nonce: &nonce})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = e.do(http.MethodPost, "/api/v1/spins", player, model.SpinRequest{ClientSeed: "e2e-client-seed", Nonce: &nonce})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// Test_SettlementFlow verifies deposits credit only after approval and
// withdrawals hold funds until a reviewer decides.
func Test_SettlementFlow(t *testing.T) {
	e := setupE2E(t)
	_, player := e.newFundedAccount(t, 0)

	submit := func(t *testing.T, path string, body any) string {
		w := e.do(http.MethodPost, path, player, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var resp model.SettlementResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, string(model.StatusSubmitted), resp.Status)
		return resp.RequestID
	}
	review := func(t *testing.T, id, decision string) *httptest.ResponseRecorder {
		return e.do(http.MethodPost, "/api/v1/admin/settlements/"+id+"/review", e.reviewer, model.ReviewRequest{Decision: decision})
	}

	t.Run("Approved deposit credits the balance once", func(t *testing.T) {
		id := submit(t, "/api/v1/settlements/deposits", model.DepositRequest{
			Amount:   5000,
			Evidence: map[string]string{"tx": "bank-ref-1"},
		})
		assert.Equal(t, int64(0), e.balance(t, player).AvailableBalance)

		w := review(t, id, "approve")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, int64(5000), e.balance(t, player).AvailableBalance)

		// repeating the decision is a no-op
		w = review(t, id, "approve")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp model.ReviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.AlreadyApplied)
		assert.Equal(t, int64(5000), e.balance(t, player).AvailableBalance)

		w = review(t, id, "reject")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Withdrawal holds funds and rejection releases them", func(t *testing.T) {
		id := submit(t, "/api/v1/settlements/withdrawals", model.WithdrawalRequest{
			Amount:      2000,
			Destination: map[string]string{"iban": "DE00 0000"},
		})
		bal := e.balance(t, player)
		assert.Equal(t, int64(3000), bal.AvailableBalance)
		assert.Equal(t, int64(2000), bal.PendingHold)

		w := review(t, id, "reject")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		bal = e.balance(t, player)
		assert.Equal(t, int64(5000), bal.AvailableBalance)
		assert.Equal(t, int64(0), bal.PendingHold)
	})

	t.Run("Approved withdrawal settles on confirmation", func(t *testing.T) {
		id := submit(t, "/api/v1/settlements/withdrawals", model.WithdrawalRequest{
			Amount:      1500,
			Destination: map[string]string{"iban": "DE00 0000"},
		})

		w := review(t, id, "approve")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// approved requests are past the point of owner cancellation
		w = e.do(http.MethodPost, "/api/v1/settlements/"+id+"/cancel", player, nil)
		assert.Equal(t, http.StatusConflict, w.Code)

		w = e.do(http.MethodPost, "/api/v1/admin/settlements/"+id+"/confirm", e.reviewer, model.ConfirmPayoutRequest{TransferRef: "wire-" + id})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		bal := e.balance(t, player)
		assert.Equal(t, int64(3500), bal.AvailableBalance)
		assert.Equal(t, int64(0), bal.PendingHold)
	})

	t.Run("Held funds cannot be spun", func(t *testing.T) {
		before := e.balance(t, player)
		hold := before.AvailableBalance - testCfg.Spin.Cost/2
		id := submit(t, "/api/v1/settlements/withdrawals", model.WithdrawalRequest{
			Amount:      hold,
			Destination: map[string]string{"iban": "DE00 0000"},
		})
		held := e.balance(t, player)
		require.Equal(t, hold, held.PendingHold)
		require.Less(t, held.AvailableBalance, testCfg.Spin.Cost)

		w := e.do(http.MethodPost, "/api/v1/spins", player, model.SpinRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		var errResp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, "INSUFFICIENT_FUNDS", errResp.Code)

		after := e.balance(t, player)
		assert.Equal(t, held.AvailableBalance, after.AvailableBalance)
		assert.Equal(t, hold, after.PendingHold)

		w = e.do(http.MethodPost, "/api/v1/settlements/"+id+"/cancel", player, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, before.AvailableBalance, e.balance(t, player).AvailableBalance)
	})

	t.Run("Withdrawal above available funds is refused", func(t *testing.T) {
		w := e.do(http.MethodPost, "/api/v1/settlements/withdrawals", player, model.WithdrawalRequest{
			Amount:      100000,
			Destination: map[string]string{"iban": "DE00 0000"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
