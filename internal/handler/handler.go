package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"sync"
	"wager-ledger/internal/auth"
	"wager-ledger/internal/events"
	"wager-ledger/internal/fairness"
	"wager-ledger/internal/metrics"
	"wager-ledger/internal/model"
	"wager-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Handler struct {
	ledgerService     service.LedgerService
	spinService       service.SpinService
	settlementService service.SettlementService
	fairnessService   service.FairnessService
	prizeService      service.PrizeService
	feed              events.LargeWinFeed
	verifier          *auth.Verifier
	logger            zerolog.Logger
}

func NewHandler(
	ledgerService service.LedgerService,
	spinService service.SpinService,
	settlementService service.SettlementService,
	fairnessService service.FairnessService,
	prizeService service.PrizeService,
	feed events.LargeWinFeed,
	verifier *auth.Verifier,
	logger zerolog.Logger,
) *Handler {
	if feed == nil {
		feed = events.NopFeed{}
	}
	return &Handler{
		ledgerService:     ledgerService,
		spinService:       spinService,
		settlementService: settlementService,
		fairnessService:   fairnessService,
		prizeService:      prizeService,
		feed:              feed,
		verifier:          verifier,
		logger:            logger,
	}
}

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules used by request models.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("clientseed", func(fl validator.FieldLevel) bool {
				return fairness.ValidClientSeed(fl.Field().String())
			})
		}
	})
}

func (h *Handler) SetupRoutes() *gin.Engine {
	RegisterValidators()
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		metrics.HTTPMiddleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	// Public fairness data
	fair := v1.Group("/fairness")
	fair.GET("/epochs/current", h.GetCurrentEpoch)
	fair.GET("/epochs/:epoch", h.GetEpoch)
	fair.POST("/verify", h.Verify)
	v1.GET("/prizes/table", h.GetPrizeTable)
	v1.GET("/feed/large-wins", h.GetLargeWins)

	authed := v1.Group("", AuthMiddleware(h.verifier))

	spins := authed.Group("/spins")
	spins.POST("", h.Spin)
	spins.GET("", h.ListSpins)
	spins.GET("/:id", h.GetSpin)
	spins.GET("/:id/verify", h.VerifySpin)

	settlements := authed.Group("/settlements")
	settlements.POST("/deposits", h.RequestDeposit)
	settlements.POST("/withdrawals", h.RequestWithdrawal)
	settlements.GET("", h.ListSettlements)
	settlements.GET("/:id", h.GetSettlement)
	settlements.POST("/:id/cancel", h.CancelSettlement)

	accounts := authed.Group("/accounts/me")
	accounts.GET("/balance", h.GetBalance)
	accounts.GET("/entries", h.ListEntries)

	review := authed.Group("/admin/settlements", RequireRole(auth.RoleReviewer))
	review.GET("", h.ListSettlementsByStatus)
	review.POST("/:id/claim", h.ClaimSettlement)
	review.POST("/:id/review", h.ReviewSettlement)
	review.POST("/:id/confirm", h.ConfirmPayout)

	admin := authed.Group("/admin", RequireRole(auth.RoleAdmin))
	admin.POST("/accounts", h.CreateAccount)
	admin.GET("/accounts/:id/balance", h.GetAccountBalance)
	admin.POST("/accounts/:id/reconcile", h.ReconcileAccount)
	admin.POST("/accounts/:id/adjustments", h.AdjustAccount)
	admin.POST("/accounts/:id/unfreeze", h.UnfreezeAccount)
	admin.PUT("/prizes/weights", h.UpdatePrizeWeights)
	admin.GET("/prizes/profit", h.GetExpectedProfit)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	var (
		funds    *model.FundsError
		limit    *model.LimitError
		cooldown *model.CooldownError
	)

	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
		if errors.As(err, &funds) {
			resp.Balance = &funds.Balance
		}
	case errors.Is(err, model.ErrBelowMinimum):
		status = http.StatusBadRequest
		code = "BELOW_MINIMUM"
		if errors.As(err, &limit) {
			resp.Limit = &limit.Limit
		}
	case errors.Is(err, model.ErrDailyLimitExceeded):
		status = http.StatusBadRequest
		code = "DAILY_LIMIT_EXCEEDED"
		if errors.As(err, &limit) {
			resp.Limit = &limit.Limit
			resp.Details = "used " + strconv.FormatInt(limit.Used, 10) + " of the daily limit"
		}
	case errors.Is(err, model.ErrCooldownActive):
		status = http.StatusTooManyRequests
		code = "COOLDOWN_ACTIVE"
		if errors.As(err, &cooldown) {
			secs := int64(math.Ceil(cooldown.RetryAfter.Seconds()))
			resp.RetryAfterSeconds = &secs
			c.Header("Retry-After", strconv.FormatInt(secs, 10))
		}
	case errors.Is(err, model.ErrDuplicateNonce):
		status = http.StatusConflict
		code = "DUPLICATE_NONCE"
	case errors.Is(err, model.ErrInvalidStateTransition):
		status = http.StatusConflict
		code = "INVALID_STATE_TRANSITION"
	case errors.Is(err, model.ErrLedgerCorruption):
		status = http.StatusLocked
		code = "LEDGER_CORRUPTION"
		resp.Details = "settlement is halted for this account until an operator reconciles it"
	case errors.Is(err, model.ErrFairnessViolation):
		status = http.StatusConflict
		code = "FAIRNESS_VIOLATION"
	case errors.Is(err, model.ErrSeedNotRevealed):
		status = http.StatusConflict
		code = "SEED_NOT_REVEALED"
	case errors.Is(err, model.ErrInvalidConfiguration):
		status = http.StatusBadRequest
		code = "INVALID_CONFIGURATION"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidKind):
		status = http.StatusBadRequest
		code = "INVALID_KIND"
	case errors.Is(err, model.ErrInvalidDecision):
		status = http.StatusBadRequest
		code = "INVALID_DECISION"
	case errors.Is(err, model.ErrInvalidClientSeed):
		status = http.StatusBadRequest
		code = "INVALID_CLIENT_SEED"
	case errors.Is(err, model.ErrAccountInactive):
		status = http.StatusForbidden
		code = "ACCOUNT_INACTIVE"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		code = "FORBIDDEN"
	case errors.Is(err, model.ErrAccountExists):
		status = http.StatusConflict
		code = "ACCOUNT_EXISTS"
	case errors.Is(err, model.ErrDuplicateEntry):
		status = http.StatusConflict
		code = "DUPLICATE_ENTRY"
		resp.Details = "reference already used for a different entry"
	case errors.Is(err, model.ErrAccountNotFound):
		status = http.StatusNotFound
		code = "ACCOUNT_NOT_FOUND"
	case errors.Is(err, model.ErrSpinNotFound):
		status = http.StatusNotFound
		code = "SPIN_NOT_FOUND"
	case errors.Is(err, model.ErrSettlementNotFound):
		status = http.StatusNotFound
		code = "SETTLEMENT_NOT_FOUND"
	case errors.Is(err, model.ErrEpochNotFound):
		status = http.StatusNotFound
		code = "EPOCH_NOT_FOUND"
	case errors.Is(err, model.ErrPrizeTableNotFound):
		status = http.StatusNotFound
		code = "PRIZE_TABLE_NOT_FOUND"
	case errors.Is(err, model.ErrEntryNotFound):
		status = http.StatusNotFound
		code = "ENTRY_NOT_FOUND"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
	})
}

// pagination reads limit and offset, clamping limit to [1, maxPageSize].
func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func pathAccountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "account id must be a positive integer")
		return 0, false
	}
	return id, true
}
