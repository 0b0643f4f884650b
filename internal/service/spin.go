package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wager-ledger/internal/config"
	"wager-ledger/internal/fairness"
	"wager-ledger/internal/metrics"
	"wager-ledger/internal/model"
	"wager-ledger/internal/prize"
	"wager-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// the epoch ended while the spin was in flight; its seed may already be public
var errEpochRolled = errors.New("seed epoch ended during spin")

type SpinServiceImpl struct {
	accountRepo repository.AccountRepository
	spinRepo    repository.SpinRepository
	seedRepo    repository.SeedRepository
	outboxRepo  repository.OutboxRepository
	dbManager   repository.DBManager
	ledger      LedgerService
	engine      *fairness.Engine
	prizes      *prize.Holder
	cfg         config.SpinConfig
	logger      zerolog.Logger
	now         func() time.Time
}

func NewSpinService(
	accountRepo repository.AccountRepository,
	spinRepo repository.SpinRepository,
	seedRepo repository.SeedRepository,
	outboxRepo repository.OutboxRepository,
	dbManager repository.DBManager,
	ledger LedgerService,
	engine *fairness.Engine,
	prizes *prize.Holder,
	cfg config.SpinConfig,
	logger zerolog.Logger,
) SpinService {
	return &SpinServiceImpl{
		accountRepo: accountRepo,
		spinRepo:    spinRepo,
		seedRepo:    seedRepo,
		outboxRepo:  outboxRepo,
		dbManager:   dbManager,
		ledger:      ledger,
		engine:      engine,
		prizes:      prizes,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *SpinServiceImpl) Spin(ctx context.Context, accountID int64, req *model.SpinRequest) (*model.SpinResponse, error) {
	started := time.Now()

	clientSeed := req.ClientSeed
	if clientSeed == "" {
		generated, err := fairness.NewClientSeed()
		if err != nil {
			return nil, fmt.Errorf("generate client seed: %w", err)
		}
		clientSeed = generated
	} else if !fairness.ValidClientSeed(clientSeed) {
		return nil, model.ErrInvalidClientSeed
	}

	resp, err := s.spin(ctx, accountID, clientSeed, req.Nonce)
	if errors.Is(err, errEpochRolled) {
		s.logger.Debug().Int64("account_id", accountID).Msg("epoch rolled during spin, retrying")
		resp, err = s.spin(ctx, accountID, clientSeed, req.Nonce)
	}

	if err != nil {
		metrics.RecordSpin(spinResult(err), 0, started)
		return nil, err
	}
	metrics.RecordSpin("success", resp.PrizeAmount, started)
	return resp, nil
}

func (s *SpinServiceImpl) spin(ctx context.Context, accountID int64, clientSeed string, requested *int64) (*model.SpinResponse, error) {
	now := s.now()
	seed, err := s.engine.Current(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("current server seed: %w", err)
	}
	table := s.prizes.Current()
	spinID := uuid.NewString()

	var resp *model.SpinResponse
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, accountID, tx)
		if err != nil {
			return fmt.Errorf("get account for update: %w", err)
		}
		if account.Status != model.AccountActive {
			return model.ErrAccountInactive
		}
		if err := s.checkLimits(account, now); err != nil {
			return err
		}

		nonce, err := s.seedRepo.ClaimNonce(ctx, accountID, seed.Epoch, requested, tx)
		if err != nil {
			if errors.Is(err, model.ErrDuplicateNonce) {
				return err
			}
			return fmt.Errorf("claim nonce: %w", err)
		}

		outcome := fairness.Resolve(seed.ServerSeed, clientSeed, nonce, accountID, table.Boundaries())
		if outcome.Fallback {
			metrics.RecordSelectionFallback()
			s.logger.Warn().
				Int64("table_version", table.Version()).
				Str("draw", outcome.Draw.String()).
				Msg("draw matched no prize boundary, weights sum below 1")
		}
		prizeAmount := table.Payout(outcome.Index)

		account.LastSpinAt = &now
		posting, err := s.ledger.ExecuteSpinTx(ctx, account, table.SpinCost(), prizeAmount, spinID, tx)
		if err != nil {
			return err
		}

		record := &model.SpinRecord{
			ID:             spinID,
			AccountID:      accountID,
			Cost:           table.SpinCost(),
			PrizeAmount:    prizeAmount,
			PrizeIndex:     outcome.Index,
			ClientSeed:     clientSeed,
			ServerSeedHash: seed.Commitment,
			Epoch:          seed.Epoch,
			Nonce:          nonce,
			TableVersion:   table.Version(),
			DrawValue:      outcome.Draw.String(),
			NetResult:      prizeAmount - table.SpinCost(),
			CreatedAt:      now,
		}
		if err := s.spinRepo.InsertSpin(ctx, record, tx); err != nil {
			return fmt.Errorf("insert spin: %w", err)
		}

		if err := enqueueEvent(ctx, s.outboxRepo, model.TopicSpinResolved, spinID, &model.SpinResolvedEvent{
			SpinID:         spinID,
			AccountID:      accountID,
			PrizeAmount:    prizeAmount,
			PrizeIndex:     outcome.Index,
			BalanceAfter:   posting.BalanceAfter,
			Epoch:          seed.Epoch,
			Nonce:          nonce,
			ServerSeedHash: seed.Commitment,
			CreatedAt:      now,
		}, tx); err != nil {
			return err
		}
		if s.cfg.LargeWinThreshold > 0 && prizeAmount >= s.cfg.LargeWinThreshold {
			if err := enqueueEvent(ctx, s.outboxRepo, model.TopicLargeWin, spinID, &model.LargeWin{
				SpinID:      spinID,
				AccountID:   accountID,
				PrizeAmount: prizeAmount,
				CreatedAt:   now,
			}, tx); err != nil {
				return err
			}
		}

		// the seed must still be secret when the spin commits
		if !s.now().Before(seed.EndsAt) {
			return errEpochRolled
		}

		resp = &model.SpinResponse{
			SpinID:         spinID,
			PrizeAmount:    prizeAmount,
			PrizeIndex:     outcome.Index,
			BalanceAfter:   posting.BalanceAfter,
			ServerSeedHash: seed.Commitment,
			Epoch:          seed.Epoch,
			Nonce:          nonce,
			ClientSeed:     clientSeed,
			TableVersion:   table.Version(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("spin_id", spinID).
		Int64("account_id", accountID).
		Int64("epoch", resp.Epoch).
		Int64("nonce", resp.Nonce).
		Int("prize_index", resp.PrizeIndex).
		Int64("prize_amount", resp.PrizeAmount).
		Int64("balance_after", resp.BalanceAfter).
		Msg("spin resolved")
	return resp, nil
}

// checkLimits enforces the spin interval and the per-UTC-day quota on a locked account.
func (s *SpinServiceImpl) checkLimits(account *model.Account, now time.Time) error {
	if account.LastSpinAt != nil && s.cfg.Cooldown > 0 {
		if wait := account.LastSpinAt.Add(s.cfg.Cooldown).Sub(now); wait > 0 {
			return &model.CooldownError{RetryAfter: wait, Reason: "minimum interval between spins"}
		}
	}

	if s.cfg.DailyLimit <= 0 {
		return nil
	}
	if account.LastSpinAt == nil || !sameUTCDay(*account.LastSpinAt, now) {
		account.SpinsAvailable = s.cfg.DailyLimit
	}
	if account.SpinsAvailable <= 0 {
		return &model.CooldownError{RetryAfter: startOfUTCDay(now).Add(24 * time.Hour).Sub(now), Reason: "daily spin limit reached"}
	}
	account.SpinsAvailable--
	return nil
}

func (s *SpinServiceImpl) GetSpin(ctx context.Context, spinID string) (*model.SpinRecord, error) {
	spin, err := s.spinRepo.GetSpin(ctx, spinID)
	if err != nil {
		return nil, fmt.Errorf("get spin: %w", err)
	}
	return spin, nil
}

func (s *SpinServiceImpl) ListSpins(ctx context.Context, accountID int64, limit, offset int) (*model.SpinListResponse, error) {
	spins, total, err := s.spinRepo.ListSpinsByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list spins: %w", err)
	}

	return &model.SpinListResponse{
		Spins:  spins,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func spinResult(err error) string {
	switch {
	case errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrCooldownActive),
		errors.Is(err, model.ErrDuplicateNonce),
		errors.Is(err, model.ErrAccountInactive),
		errors.Is(err, model.ErrInvalidClientSeed):
		return "rejected"
	default:
		return "fail"
	}
}

func startOfUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameUTCDay(a, b time.Time) bool {
	return startOfUTCDay(a).Equal(startOfUTCDay(b))
}
