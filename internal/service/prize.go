package service

import (
	"context"
	"errors"
	"fmt"
	"wager-ledger/internal/config"
	"wager-ledger/internal/model"
	"wager-ledger/internal/prize"
	"wager-ledger/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LoadPrizeTable returns the newest stored table, storing version 1 from config on first start.
func LoadPrizeTable(ctx context.Context, repo repository.PrizeTableRepository, cfg config.SpinConfig) (*prize.Table, error) {
	latest, err := repo.LatestPrizeTable(ctx)
	if err == nil {
		return prize.FromConfig(latest)
	}
	if !errors.Is(err, model.ErrPrizeTableNotFound) {
		return nil, fmt.Errorf("load prize table: %w", err)
	}

	entries, err := prize.Parse(cfg.PrizeTable)
	if err != nil {
		return nil, err
	}
	table, err := prize.New(1, cfg.Cost, entries)
	if err != nil {
		return nil, err
	}

	stored := table.Config()
	stored.CreatedBy = "config"
	if err := repo.InsertPrizeTable(ctx, stored); err != nil {
		if !errors.Is(err, model.ErrDuplicateEntry) {
			return nil, fmt.Errorf("store initial prize table: %w", err)
		}
		// another instance stored version 1 first
		winner, err := repo.LatestPrizeTable(ctx)
		if err != nil {
			return nil, fmt.Errorf("load prize table: %w", err)
		}
		return prize.FromConfig(winner)
	}
	return table, nil
}

type PrizeServiceImpl struct {
	prizeRepo repository.PrizeTableRepository
	holder    *prize.Holder
	logger    zerolog.Logger
}

func NewPrizeService(prizeRepo repository.PrizeTableRepository, holder *prize.Holder, logger zerolog.Logger) PrizeService {
	return &PrizeServiceImpl{
		prizeRepo: prizeRepo,
		holder:    holder,
		logger:    logger,
	}
}

func (s *PrizeServiceImpl) Current() *model.PrizeTableResponse {
	return tableResponse(s.holder.Current())
}

// UpdateWeights stores the next version before any instance starts using it.
func (s *PrizeServiceImpl) UpdateWeights(ctx context.Context, weights []string, actor string) (*model.PrizeTableResponse, error) {
	parsed := make([]decimal.Decimal, len(weights))
	for i, w := range weights {
		d, err := decimal.NewFromString(w)
		if err != nil {
			return nil, fmt.Errorf("%w: weight %d %q: %v", model.ErrInvalidConfiguration, i, w, err)
		}
		parsed[i] = d
	}

	cur := s.holder.Current()
	next, err := cur.WithWeights(parsed)
	if err != nil {
		return nil, err
	}

	stored := next.Config()
	stored.CreatedBy = actor
	if err := s.prizeRepo.InsertPrizeTable(ctx, stored); err != nil {
		if errors.Is(err, model.ErrDuplicateEntry) {
			return nil, fmt.Errorf("%w: version %d was written concurrently, reload and retry", model.ErrInvalidConfiguration, next.Version())
		}
		return nil, fmt.Errorf("store prize table: %w", err)
	}
	s.holder.Adopt(next)

	s.logger.Warn().
		Int64("version", next.Version()).
		Int64("previous_version", cur.Version()).
		Str("expected_value", next.ExpectedValue().String()).
		Str("actor", actor).
		Msg("prize table updated")
	return tableResponse(next), nil
}

func (s *PrizeServiceImpl) ExpectedProfit(spins int64) *model.ProfitResponse {
	t := s.holder.Current()
	return &model.ProfitResponse{
		Version:        t.Version(),
		Spins:          spins,
		ExpectedProfit: t.ExpectedProfit(spins).StringFixed(2),
	}
}

func (s *PrizeServiceImpl) Refresh(ctx context.Context) error {
	latest, err := s.prizeRepo.LatestPrizeTable(ctx)
	if err != nil {
		return fmt.Errorf("load prize table: %w", err)
	}
	if latest.Version <= s.holder.Current().Version() {
		return nil
	}

	table, err := prize.FromConfig(latest)
	if err != nil {
		return fmt.Errorf("load prize table %d: %w", latest.Version, err)
	}
	if s.holder.Adopt(table) {
		s.logger.Info().Int64("version", table.Version()).Msg("adopted newer prize table")
	}
	return nil
}

func tableResponse(t *prize.Table) *model.PrizeTableResponse {
	ev := t.ExpectedValue()
	return &model.PrizeTableResponse{
		Version:          t.Version(),
		SpinCost:         t.SpinCost(),
		Entries:          t.Entries(),
		ExpectedValue:    ev.StringFixed(4),
		HouseEdgePerSpin: decimal.NewFromInt(t.SpinCost()).Sub(ev).StringFixed(4),
	}
}
