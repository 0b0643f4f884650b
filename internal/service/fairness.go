package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"wager-ledger/internal/fairness"
	"wager-ledger/internal/metrics"
	"wager-ledger/internal/model"
	"wager-ledger/internal/prize"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type FairnessServiceImpl struct {
	spinRepo   repository.SpinRepository
	prizeRepo  repository.PrizeTableRepository
	outboxRepo repository.OutboxRepository
	dbManager  repository.DBManager
	engine     *fairness.Engine
	logger     zerolog.Logger
	now        func() time.Time
}

func NewFairnessService(
	spinRepo repository.SpinRepository,
	prizeRepo repository.PrizeTableRepository,
	outboxRepo repository.OutboxRepository,
	dbManager repository.DBManager,
	engine *fairness.Engine,
	logger zerolog.Logger,
) FairnessService {
	return &FairnessServiceImpl{
		spinRepo:   spinRepo,
		prizeRepo:  prizeRepo,
		outboxRepo: outboxRepo,
		dbManager:  dbManager,
		engine:     engine,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *FairnessServiceImpl) CurrentEpoch(ctx context.Context) (*model.EpochResponse, error) {
	seed, err := s.engine.Current(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("current server seed: %w", err)
	}
	return epochResponse(seed, false), nil
}

// GetEpoch discloses the server seed only after the epoch has ended.
func (s *FairnessServiceImpl) GetEpoch(ctx context.Context, epoch int64) (*model.EpochResponse, error) {
	seed, err := s.engine.Seed(ctx, epoch)
	if err != nil {
		return nil, fmt.Errorf("get epoch: %w", err)
	}
	return epochResponse(seed, seed.Revealed(s.now())), nil
}

func epochResponse(seed *model.ServerSeed, reveal bool) *model.EpochResponse {
	resp := &model.EpochResponse{
		Epoch:      seed.Epoch,
		Commitment: seed.Commitment,
		StartsAt:   seed.StartsAt,
		EndsAt:     seed.EndsAt,
	}
	if reveal {
		resp.ServerSeed = seed.ServerSeed
	}
	return resp
}

// VerifySpin recomputes a spin from the revealed seed and the table version it used.
// A mismatch flags the spin and raises an incident; balances are never touched.
func (s *FairnessServiceImpl) VerifySpin(ctx context.Context, spinID string) (*model.VerificationResponse, error) {
	spin, err := s.spinRepo.GetSpin(ctx, spinID)
	if err != nil {
		return nil, fmt.Errorf("get spin: %w", err)
	}
	seed, err := s.engine.Seed(ctx, spin.Epoch)
	if err != nil {
		return nil, fmt.Errorf("get epoch: %w", err)
	}
	if !seed.Revealed(s.now()) {
		return nil, fmt.Errorf("%w: epoch %d ends at %s", model.ErrSeedNotRevealed, seed.Epoch, seed.EndsAt.Format(time.RFC3339))
	}
	table, err := s.table(ctx, spin.TableVersion)
	if err != nil {
		return nil, err
	}

	outcome := fairness.Resolve(seed.ServerSeed, spin.ClientSeed, spin.Nonce, spin.AccountID, table.Boundaries())
	payout := table.Payout(outcome.Index)

	var reasons []string
	if err := fairness.CheckCommitment(seed.ServerSeed, spin.ServerSeedHash); err != nil {
		reasons = append(reasons, "commitment mismatch")
	}
	if outcome.Draw.String() != spin.DrawValue {
		reasons = append(reasons, "draw mismatch")
	}
	if outcome.Index != spin.PrizeIndex || payout != spin.PrizeAmount {
		reasons = append(reasons, "prize mismatch")
	}

	match := len(reasons) == 0
	metrics.RecordVerification(match)
	resp := &model.VerificationResponse{
		SpinID:         spin.ID,
		Epoch:          spin.Epoch,
		ServerSeed:     seed.ServerSeed,
		ServerSeedHash: seed.Commitment,
		DrawValue:      outcome.Draw.String(),
		PrizeIndex:     outcome.Index,
		PrizeAmount:    payout,
		Match:          &match,
	}
	if match {
		return resp, nil
	}

	reason := strings.Join(reasons, ", ")
	if spin.Flagged {
		// already recorded; re-verifying must not repeat the incident
		return nil, fmt.Errorf("%w: spin %s: %s", model.ErrFairnessViolation, spin.ID, reason)
	}
	if err := s.flag(ctx, spin, reason); err != nil {
		return nil, errors.Join(fmt.Errorf("%w: spin %s: %s", model.ErrFairnessViolation, spin.ID, reason), err)
	}
	return nil, fmt.Errorf("%w: spin %s: %s", model.ErrFairnessViolation, spin.ID, reason)
}

func (s *FairnessServiceImpl) flag(ctx context.Context, spin *model.SpinRecord, reason string) error {
	s.logger.Error().
		Str("incident", "fairness_violation").
		Str("spin_id", spin.ID).
		Int64("account_id", spin.AccountID).
		Int64("epoch", spin.Epoch).
		Str("reason", reason).
		Msg("spin failed verification")

	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.spinRepo.FlagSpin(ctx, spin.ID, reason, tx); err != nil {
			return fmt.Errorf("flag spin: %w", err)
		}
		return enqueueEvent(ctx, s.outboxRepo, model.TopicFairnessViolation, spin.ID, &model.FairnessViolationEvent{
			SpinID:    spin.ID,
			AccountID: spin.AccountID,
			Epoch:     spin.Epoch,
			Reason:    reason,
			At:        s.now(),
		}, tx)
	})
}

// Verify recomputes an outcome from caller supplied inputs.
func (s *FairnessServiceImpl) Verify(ctx context.Context, req *model.VerifyRequest) (*model.VerificationResponse, error) {
	table, err := s.table(ctx, req.TableVersion)
	if err != nil {
		return nil, err
	}

	outcome := fairness.Resolve(req.ServerSeed, req.ClientSeed, req.Nonce, req.AccountID, table.Boundaries())
	return &model.VerificationResponse{
		ServerSeed:     req.ServerSeed,
		ServerSeedHash: fairness.Commit(req.ServerSeed),
		DrawValue:      outcome.Draw.String(),
		PrizeIndex:     outcome.Index,
		PrizeAmount:    table.Payout(outcome.Index),
	}, nil
}

func (s *FairnessServiceImpl) Rotate(ctx context.Context) error {
	_, err := s.engine.Rotate(ctx, s.now())
	metrics.RecordRotation(err)
	if err != nil {
		return fmt.Errorf("rotate server seed: %w", err)
	}
	return nil
}

func (s *FairnessServiceImpl) table(ctx context.Context, version int64) (*prize.Table, error) {
	cfg, err := s.prizeRepo.GetPrizeTable(ctx, version)
	if err != nil {
		return nil, fmt.Errorf("get prize table: %w", err)
	}
	table, err := prize.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("load prize table %d: %w", version, err)
	}
	return table, nil
}
