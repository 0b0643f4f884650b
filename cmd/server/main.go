package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"wager-ledger/internal/auth"
	"wager-ledger/internal/config"
	"wager-ledger/internal/database"
	"wager-ledger/internal/events"
	"wager-ledger/internal/fairness"
	"wager-ledger/internal/handler"
	"wager-ledger/internal/logger"
	"wager-ledger/internal/prize"
	"wager-ledger/internal/repository/postgres"
	"wager-ledger/internal/service"
	"wager-ledger/internal/worker"

	_ "wager-ledger/docs"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// @title Wager Ledger API
// @version 1.0
// @description Spin wheel wagering ledger with commit-reveal fairness and reviewed settlements
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	logg := logger.New(cfg.Log)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(dbCtx, dbPool, logg); err != nil {
			logg.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	// Optional redis for the event publisher and the large-win feed
	var rdb *redis.Client
	var feed events.LargeWinFeed = events.NopFeed{}
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(dbCtx).Err(); err != nil {
			logg.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		feed = events.NewRedisFeed(rdb, cfg.Events.FeedKey)
	}

	publisher, err := events.NewPublisher(cfg.Events, rdb, logg)
	if err != nil {
		logg.Fatal().Err(err).Str("backend", cfg.Events.Backend).Msg("failed to create event publisher")
	}
	defer publisher.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	spinRepo := postgres.NewSpinRepository(dbPool)
	seedRepo := postgres.NewSeedRepository(dbPool)
	settlementRepo := postgres.NewSettlementRepository(dbPool)
	prizeRepo := postgres.NewPrizeTableRepository(dbPool)
	outboxRepo := postgres.NewOutboxRepository(dbPool)

	// Transaction manage used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Fairness engine and prize table
	engine := fairness.NewEngine(seedRepo, fairness.NewSchedule(cfg.Fairness.EpochPeriod), logg)
	if _, err := engine.Rotate(dbCtx, time.Now()); err != nil {
		logg.Fatal().Err(err).Msg("failed to commit server seed")
	}
	table, err := service.LoadPrizeTable(dbCtx, prizeRepo, cfg.Spin)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to load prize table")
	}
	prizes := prize.NewHolder(table)
	logg.Info().
		Int64("version", table.Version()).
		Int64("spin_cost", table.SpinCost()).
		Str("expected_value", table.ExpectedValue().StringFixed(4)).
		Msg("prize table loaded")

	// Services
	ledgerService := service.NewLedgerService(accountRepo, ledgerRepo, txManager, logg)
	spinService := service.NewSpinService(accountRepo, spinRepo, seedRepo, outboxRepo, txManager, ledgerService, engine, prizes, cfg.Spin, logg)
	settlementService := service.NewSettlementService(accountRepo, settlementRepo, outboxRepo, txManager, ledgerService, cfg.Settlement, logg)
	fairnessService := service.NewFairnessService(spinRepo, prizeRepo, outboxRepo, txManager, engine, logg)
	prizeService := service.NewPrizeService(prizeRepo, prizes, logg)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background workers
	dispatcher := events.NewDispatcher(outboxRepo, publisher, cfg.Worker, logg)
	workers := worker.NewGroup(
		worker.NewWorker("outbox", cfg.Worker.OutboxInterval, worker.OutboxTask(dispatcher, cfg.Worker.OutboxBatch), logg),
		worker.NewWorker("seed_rotation", cfg.Fairness.RotationInterval, worker.RotationTask(fairnessService), logg),
		worker.NewWorker("settlement_sweep", cfg.Settlement.SweepInterval, worker.SettlementSweepTask(settlementService), logg),
		worker.NewWorker("prize_refresh", cfg.Worker.PrizeRefreshInterval, worker.PrizeRefreshTask(prizeService), logg),
	)
	workers.Start(ctx)
	defer workers.Stop()

	// http handler
	h := handler.NewHandler(ledgerService, spinService, settlementService, fairnessService, prizeService,
		feed, auth.NewVerifier(cfg.Auth), logg)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info().Str("port", cfg.Server.Port).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Wait for shutdown signal or a server failure
		<-gctx.Done()
		logg.Info().Msg("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Error().Err(err).Msg("Server error")
	} else {
		logg.Info().Msg("HTTP server stopped gracefully")
	}

	logg.Info().Msg("Shutdown complete")
}
