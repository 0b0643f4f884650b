package service

import (
	"context"
	"testing"
	"time"
	"wager-ledger/internal/fairness"
	"wager-ledger/internal/model"
	"wager-ledger/internal/prize"
	"wager-ledger/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fairnessFixture struct {
	spinRepo   *mocks.SpinRepository
	prizeRepo  *mocks.PrizeTableRepository
	seedRepo   *mocks.SeedRepository
	outboxRepo *mocks.OutboxRepository
	dbManager  *mocks.DBManager
	svc        *FairnessServiceImpl
}

func newFairnessFixture(t *testing.T, now time.Time) *fairnessFixture {
	f := &fairnessFixture{
		spinRepo:   mocks.NewSpinRepository(t),
		prizeRepo:  mocks.NewPrizeTableRepository(t),
		seedRepo:   mocks.NewSeedRepository(t),
		outboxRepo: mocks.NewOutboxRepository(t),
		dbManager:  mocks.NewDBManager(t),
	}
	engine := fairness.NewEngine(f.seedRepo, fairness.NewSchedule(time.Hour), zerolog.Nop())
	f.svc = NewFairnessService(f.spinRepo, f.prizeRepo, f.outboxRepo, f.dbManager, engine, zerolog.Nop()).(*FairnessServiceImpl)
	f.svc.now = func() time.Time { return now }
	return f
}

// storedSeed is the epoch covering spinNow, which ends at 13:00.
func storedSeed() *model.ServerSeed {
	schedule := fairness.NewSchedule(time.Hour)
	epoch := schedule.EpochAt(spinNow)
	start, end := schedule.Bounds(epoch)
	return &model.ServerSeed{
		Epoch:      epoch,
		ServerSeed: "server-seed",
		Commitment: fairness.Commit("server-seed"),
		StartsAt:   start,
		EndsAt:     end,
	}
}

func storedSpin() *model.SpinRecord {
	return &model.SpinRecord{
		ID:             "spin-1",
		AccountID:      42,
		Cost:           100,
		PrizeAmount:    50,
		PrizeIndex:     1,
		ClientSeed:     "client-seed",
		ServerSeedHash: fairness.Commit("server-seed"),
		Epoch:          storedSeed().Epoch,
		Nonce:          1,
		TableVersion:   1,
		DrawValue:      knownDraw,
		NetResult:      -50,
		CreatedAt:      spinNow,
	}
}

func (f *fairnessFixture) expectTable(t *testing.T, ctx context.Context) {
	entries, err := prize.Parse("0:0.5,50:0.3,150:0.2")
	require.NoError(t, err)
	table, err := prize.New(1, 100, entries)
	require.NoError(t, err)
	f.prizeRepo.On("GetPrizeTable", ctx, int64(1)).Return(table.Config(), nil)
}

func TestFairnessService_VerifySpin_Match(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow.Add(90*time.Minute))

	f.spinRepo.On("GetSpin", ctx, "spin-1").Return(storedSpin(), nil)
	f.seedRepo.On("GetEpoch", ctx, storedSeed().Epoch).Return(storedSeed(), nil)
	f.expectTable(t, ctx)

	resp, err := f.svc.VerifySpin(ctx, "spin-1")

	require.NoError(t, err)
	require.NotNil(t, resp.Match)
	assert.True(t, *resp.Match)
	assert.Equal(t, "server-seed", resp.ServerSeed)
	assert.Equal(t, knownDraw, resp.DrawValue)
	assert.Equal(t, 1, resp.PrizeIndex)
	assert.Equal(t, int64(50), resp.PrizeAmount)
	f.spinRepo.AssertNotCalled(t, "FlagSpin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFairnessService_VerifySpin_MismatchFlagsSpin(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow.Add(90*time.Minute))

	tampered := storedSpin()
	tampered.PrizeIndex = 2
	tampered.PrizeAmount = 150
	f.spinRepo.On("GetSpin", ctx, "spin-1").Return(tampered, nil)
	f.seedRepo.On("GetEpoch", ctx, storedSeed().Epoch).Return(storedSeed(), nil)
	f.expectTable(t, ctx)
	runInTx(ctx, f.dbManager)
	f.spinRepo.On("FlagSpin", ctx, "spin-1", "prize mismatch", mock.Anything).Return(nil)
	f.outboxRepo.On("Enqueue", ctx, mock.MatchedBy(func(m *model.OutboxMessage) bool {
		return m.Topic == model.TopicFairnessViolation && m.BizKey == "spin-1"
	}), mock.Anything).Return(nil)

	resp, err := f.svc.VerifySpin(ctx, "spin-1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrFairnessViolation)
	assert.Contains(t, err.Error(), "prize mismatch")
}

func TestFairnessService_VerifySpin_AlreadyFlaggedIsNotReported(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow.Add(90*time.Minute))

	tampered := storedSpin()
	tampered.PrizeIndex = 2
	tampered.PrizeAmount = 150
	tampered.Flagged = true
	f.spinRepo.On("GetSpin", ctx, "spin-1").Return(tampered, nil)
	f.seedRepo.On("GetEpoch", ctx, storedSeed().Epoch).Return(storedSeed(), nil)
	f.expectTable(t, ctx)

	resp, err := f.svc.VerifySpin(ctx, "spin-1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrFairnessViolation)
	assert.Contains(t, err.Error(), "prize mismatch")
	f.dbManager.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
	f.spinRepo.AssertNotCalled(t, "FlagSpin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.outboxRepo.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything)
}

func TestFairnessService_VerifySpin_SeedNotRevealed(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow.Add(10*time.Minute))

	f.spinRepo.On("GetSpin", ctx, "spin-1").Return(storedSpin(), nil)
	f.seedRepo.On("GetEpoch", ctx, storedSeed().Epoch).Return(storedSeed(), nil)

	_, err := f.svc.VerifySpin(ctx, "spin-1")

	assert.ErrorIs(t, err, model.ErrSeedNotRevealed)
	f.prizeRepo.AssertNotCalled(t, "GetPrizeTable", mock.Anything, mock.Anything)
}

func TestFairnessService_VerifySpin_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow)

	f.spinRepo.On("GetSpin", ctx, "missing").Return(nil, model.ErrSpinNotFound)

	_, err := f.svc.VerifySpin(ctx, "missing")

	assert.ErrorIs(t, err, model.ErrSpinNotFound)
}

func TestFairnessService_Verify(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow)

	f.expectTable(t, ctx)

	resp, err := f.svc.Verify(ctx, &model.VerifyRequest{
		ServerSeed:   "server-seed",
		ClientSeed:   "client-seed",
		Nonce:        1,
		AccountID:    42,
		TableVersion: 1,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Match)
	assert.Equal(t, knownDraw, resp.DrawValue)
	assert.Equal(t, 1, resp.PrizeIndex)
	assert.Equal(t, int64(50), resp.PrizeAmount)
	assert.Equal(t, fairness.Commit("server-seed"), resp.ServerSeedHash)
}

func TestFairnessService_GetEpoch(t *testing.T) {
	ctx := context.Background()

	t.Run("open epoch keeps seed secret", func(t *testing.T) {
		f := newFairnessFixture(t, spinNow)
		f.seedRepo.On("GetEpoch", ctx, storedSeed().Epoch).Return(storedSeed(), nil)

		resp, err := f.svc.GetEpoch(ctx, storedSeed().Epoch)

		require.NoError(t, err)
		assert.Empty(t, resp.ServerSeed)
		assert.Equal(t, fairness.Commit("server-seed"), resp.Commitment)
	})

	t.Run("ended epoch reveals seed", func(t *testing.T) {
		f := newFairnessFixture(t, storedSeed().EndsAt)
		f.seedRepo.On("GetEpoch", ctx, storedSeed().Epoch).Return(storedSeed(), nil)

		resp, err := f.svc.GetEpoch(ctx, storedSeed().Epoch)

		require.NoError(t, err)
		assert.Equal(t, "server-seed", resp.ServerSeed)
	})

	t.Run("unknown epoch", func(t *testing.T) {
		f := newFairnessFixture(t, spinNow)
		f.seedRepo.On("GetEpoch", ctx, int64(7)).Return(nil, model.ErrEpochNotFound)

		_, err := f.svc.GetEpoch(ctx, 7)

		assert.ErrorIs(t, err, model.ErrEpochNotFound)
	})
}

func TestFairnessService_CurrentEpoch_CommitsNextEpoch(t *testing.T) {
	ctx := context.Background()
	f := newFairnessFixture(t, spinNow)

	epoch := storedSeed().Epoch
	f.seedRepo.On("EnsureEpoch", ctx, mock.MatchedBy(func(s *model.ServerSeed) bool { return s.Epoch == epoch })).
		Return(storedSeed(), nil).Once()
	f.seedRepo.On("EnsureEpoch", ctx, mock.MatchedBy(func(s *model.ServerSeed) bool { return s.Epoch == epoch+1 })).
		Return(func(_ context.Context, s *model.ServerSeed) (*model.ServerSeed, error) { return s, nil }).Once()

	resp, err := f.svc.CurrentEpoch(ctx)

	require.NoError(t, err)
	assert.Equal(t, epoch, resp.Epoch)
	assert.Empty(t, resp.ServerSeed)

	// cached after the first call
	_, err = f.svc.CurrentEpoch(ctx)
	require.NoError(t, err)
	f.seedRepo.AssertNumberOfCalls(t, "EnsureEpoch", 2)
}
