package fairness

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
	"wager-ledger/internal/model"

	"github.com/rs/zerolog"
)

// SeedStore persists one seed per epoch. EnsureEpoch must keep the first
// stored seed when several instances race on the same epoch.
type SeedStore interface {
	EnsureEpoch(ctx context.Context, seed *model.ServerSeed) (*model.ServerSeed, error)
	GetEpoch(ctx context.Context, epoch int64) (*model.ServerSeed, error)
}

// Engine hands out the committed seed of the current epoch.
type Engine struct {
	schedule Schedule
	store    SeedStore
	current  atomic.Pointer[model.ServerSeed]
	logger   zerolog.Logger
}

func NewEngine(store SeedStore, schedule Schedule, logger zerolog.Logger) *Engine {
	return &Engine{
		schedule: schedule,
		store:    store,
		logger:   logger,
	}
}

func (e *Engine) Schedule() Schedule {
	return e.schedule
}

// Current returns the seed for the epoch covering now, rotating if the cached one expired.
func (e *Engine) Current(ctx context.Context, now time.Time) (*model.ServerSeed, error) {
	if cur := e.current.Load(); cur != nil && cur.Epoch == e.schedule.EpochAt(now) {
		return cur, nil
	}
	return e.Rotate(ctx, now)
}

// Rotate makes sure the current and the next epoch are committed and caches the current one.
func (e *Engine) Rotate(ctx context.Context, now time.Time) (*model.ServerSeed, error) {
	epoch := e.schedule.EpochAt(now)

	cur, err := e.ensure(ctx, epoch)
	if err != nil {
		return nil, err
	}
	if _, err := e.ensure(ctx, epoch+1); err != nil {
		return nil, err
	}

	for {
		prev := e.current.Load()
		if prev != nil && prev.Epoch >= cur.Epoch {
			return cur, nil
		}
		if e.current.CompareAndSwap(prev, cur) {
			e.logger.Info().
				Int64("epoch", cur.Epoch).
				Str("commitment", cur.Commitment).
				Time("ends_at", cur.EndsAt).
				Msg("server seed rotated")
			return cur, nil
		}
	}
}

// Seed loads a stored epoch.
func (e *Engine) Seed(ctx context.Context, epoch int64) (*model.ServerSeed, error) {
	if cur := e.current.Load(); cur != nil && cur.Epoch == epoch {
		return cur, nil
	}
	return e.store.GetEpoch(ctx, epoch)
}

func (e *Engine) ensure(ctx context.Context, epoch int64) (*model.ServerSeed, error) {
	secret, err := NewServerSeed()
	if err != nil {
		return nil, err
	}
	start, end := e.schedule.Bounds(epoch)

	seed, err := e.store.EnsureEpoch(ctx, &model.ServerSeed{
		Epoch:      epoch,
		ServerSeed: secret,
		Commitment: Commit(secret),
		StartsAt:   start,
		EndsAt:     end,
	})
	if err != nil {
		return nil, fmt.Errorf("ensure epoch %d: %w", epoch, err)
	}
	return seed, nil
}
