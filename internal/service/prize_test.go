package service

import (
	"context"
	"errors"
	"testing"
	"wager-ledger/internal/config"
	"wager-ledger/internal/model"
	"wager-ledger/internal/prize"
	"wager-ledger/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func baseTable(t *testing.T) *prize.Table {
	entries, err := prize.Parse("0:0.5,50:0.3,150:0.2")
	require.NoError(t, err)
	table, err := prize.New(1, 100, entries)
	require.NoError(t, err)
	return table
}

func TestLoadPrizeTable_UsesStoredVersion(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewPrizeTableRepository(t)

	stored := baseTable(t).Config()
	stored.Version = 3
	repo.On("LatestPrizeTable", ctx).Return(stored, nil)

	table, err := LoadPrizeTable(ctx, repo, config.SpinConfig{Cost: 100, PrizeTable: "0:1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), table.Version())
	assert.Equal(t, 3, table.Len())
	repo.AssertNotCalled(t, "InsertPrizeTable", mock.Anything, mock.Anything)
}

func TestLoadPrizeTable_BootstrapsFromConfig(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewPrizeTableRepository(t)

	repo.On("LatestPrizeTable", ctx).Return(nil, model.ErrPrizeTableNotFound)
	repo.On("InsertPrizeTable", ctx, mock.MatchedBy(func(c *model.PrizeTableConfig) bool {
		return c.Version == 1 && c.SpinCost == 100 && c.CreatedBy == "config" && len(c.Entries) == 3
	})).Return(nil)

	table, err := LoadPrizeTable(ctx, repo, config.SpinConfig{Cost: 100, PrizeTable: "0:0.5,50:0.3,150:0.2"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), table.Version())
	assert.Equal(t, "45", table.ExpectedValue().String())
}

func TestLoadPrizeTable_ConcurrentBootstrap(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewPrizeTableRepository(t)

	winner := baseTable(t).Config()
	repo.On("LatestPrizeTable", ctx).Return(nil, model.ErrPrizeTableNotFound).Once()
	repo.On("InsertPrizeTable", ctx, mock.Anything).Return(model.ErrDuplicateEntry)
	repo.On("LatestPrizeTable", ctx).Return(winner, nil).Once()

	table, err := LoadPrizeTable(ctx, repo, config.SpinConfig{Cost: 100, PrizeTable: "0:0.6,50:0.2,150:0.2"})

	require.NoError(t, err)
	assert.True(t, table.Entries()[0].Weight.Equal(winner.Entries[0].Weight))
}

func TestLoadPrizeTable_InvalidConfig(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewPrizeTableRepository(t)

	repo.On("LatestPrizeTable", ctx).Return(nil, model.ErrPrizeTableNotFound)

	// expected value 150 is above the spin cost
	_, err := LoadPrizeTable(ctx, repo, config.SpinConfig{Cost: 100, PrizeTable: "150:1"})

	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestPrizeService_Current(t *testing.T) {
	svc := NewPrizeService(mocks.NewPrizeTableRepository(t), prize.NewHolder(baseTable(t)), zerolog.Nop())

	resp := svc.Current()

	assert.Equal(t, int64(1), resp.Version)
	assert.Equal(t, int64(100), resp.SpinCost)
	assert.Equal(t, "45.0000", resp.ExpectedValue)
	assert.Equal(t, "55.0000", resp.HouseEdgePerSpin)
}

func TestPrizeService_ExpectedProfit(t *testing.T) {
	svc := NewPrizeService(mocks.NewPrizeTableRepository(t), prize.NewHolder(baseTable(t)), zerolog.Nop())

	resp := svc.ExpectedProfit(1000)

	assert.Equal(t, int64(1000), resp.Spins)
	assert.Equal(t, "55000.00", resp.ExpectedProfit)
}

func TestPrizeService_UpdateWeights(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewPrizeTableRepository(t)
	holder := prize.NewHolder(baseTable(t))
	svc := NewPrizeService(repo, holder, zerolog.Nop())

	repo.On("InsertPrizeTable", ctx, mock.MatchedBy(func(c *model.PrizeTableConfig) bool {
		return c.Version == 2 && c.CreatedBy == "admin-1"
	})).Return(nil)

	resp, err := svc.UpdateWeights(ctx, []string{"0.4", "0.4", "0.2"}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Version)
	assert.Equal(t, "50.0000", resp.ExpectedValue)
	assert.Equal(t, int64(2), holder.Current().Version())
}

func TestPrizeService_UpdateWeights_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		weights []string
	}{
		{name: "not a decimal", weights: []string{"0.4", "abc", "0.2"}},
		{name: "wrong count", weights: []string{"0.5", "0.5"}},
		{name: "sum above one", weights: []string{"0.5", "0.4", "0.2"}},
		{name: "edge not positive", weights: []string{"0", "0", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewPrizeTableRepository(t)
			holder := prize.NewHolder(baseTable(t))
			svc := NewPrizeService(repo, holder, zerolog.Nop())

			_, err := svc.UpdateWeights(ctx, tt.weights, "admin-1")

			assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
			assert.Equal(t, int64(1), holder.Current().Version())
			repo.AssertNotCalled(t, "InsertPrizeTable", mock.Anything, mock.Anything)
		})
	}
}

func TestPrizeService_UpdateWeights_ConcurrentUpdate(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewPrizeTableRepository(t)
	holder := prize.NewHolder(baseTable(t))
	svc := NewPrizeService(repo, holder, zerolog.Nop())

	repo.On("InsertPrizeTable", ctx, mock.Anything).Return(model.ErrDuplicateEntry)

	_, err := svc.UpdateWeights(ctx, []string{"0.4", "0.4", "0.2"}, "admin-1")

	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	assert.Equal(t, int64(1), holder.Current().Version())
}

func TestPrizeService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("adopts newer version", func(t *testing.T) {
		repo := mocks.NewPrizeTableRepository(t)
		holder := prize.NewHolder(baseTable(t))
		svc := NewPrizeService(repo, holder, zerolog.Nop())

		next := baseTable(t).Config()
		next.Version = 2
		repo.On("LatestPrizeTable", ctx).Return(next, nil)

		require.NoError(t, svc.Refresh(ctx))
		assert.Equal(t, int64(2), holder.Current().Version())
	})

	t.Run("keeps current version", func(t *testing.T) {
		repo := mocks.NewPrizeTableRepository(t)
		holder := prize.NewHolder(baseTable(t))
		svc := NewPrizeService(repo, holder, zerolog.Nop())

		cur := holder.Current()
		repo.On("LatestPrizeTable", ctx).Return(baseTable(t).Config(), nil)

		require.NoError(t, svc.Refresh(ctx))
		assert.Same(t, cur, holder.Current())
	})

	t.Run("store error", func(t *testing.T) {
		repo := mocks.NewPrizeTableRepository(t)
		svc := NewPrizeService(repo, prize.NewHolder(baseTable(t)), zerolog.Nop())

		repo.On("LatestPrizeTable", ctx).Return(nil, errors.New("connection refused"))

		assert.Error(t, svc.Refresh(ctx))
	})
}
