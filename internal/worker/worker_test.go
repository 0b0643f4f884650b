package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	"wager-ledger/internal/config"
	"wager-ledger/internal/events"
	"wager-ledger/internal/model"
	eventmocks "wager-ledger/mocks/events"
	repomocks "wager-ledger/mocks/repository"
	svcmocks "wager-ledger/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorker_RunsTaskUntilStopped(t *testing.T) {
	var runs atomic.Int32
	w := NewWorker("test", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("keeps running after errors")
	}, zerolog.Nop())

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()
	w.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestWorker_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker("test", time.Hour, func(ctx context.Context) error { return nil }, zerolog.Nop())

	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

func TestGroup_StartStop(t *testing.T) {
	var a, b atomic.Int32
	g := NewGroup(NewWorker("a", 5*time.Millisecond, func(context.Context) error { a.Add(1); return nil }, zerolog.Nop()))
	g.Add(NewWorker("b", 5*time.Millisecond, func(context.Context) error { b.Add(1); return nil }, zerolog.Nop()))

	g.Start(context.Background())
	assert.Eventually(t, func() bool { return a.Load() > 0 && b.Load() > 0 }, time.Second, 5*time.Millisecond)
	g.Stop()
}

func TestSettlementSweepTask(t *testing.T) {
	ctx := context.Background()
	svc := svcmocks.NewSettlementService(t)

	svc.On("AutoCancelStale", ctx).Return(0, errors.New("db down"))
	svc.On("RemindPending", ctx).Return(2, nil)

	err := SettlementSweepTask(svc)(ctx)

	assert.ErrorContains(t, err, "db down")
}

func TestRotationAndRefreshTasks(t *testing.T) {
	ctx := context.Background()
	fairness := svcmocks.NewFairnessService(t)
	prizes := svcmocks.NewPrizeService(t)

	fairness.On("Rotate", ctx).Return(nil)
	prizes.On("Refresh", ctx).Return(nil)

	assert.NoError(t, RotationTask(fairness)(ctx))
	assert.NoError(t, PrizeRefreshTask(prizes)(ctx))
}

func TestOutboxTask_DrainsFullBatches(t *testing.T) {
	ctx := context.Background()
	outbox := repomocks.NewOutboxRepository(t)
	publisher := eventmocks.NewPublisher(t)
	cfg := config.WorkerConfig{OutboxBatch: 2, OutboxMaxRetries: 3, OutboxBaseBackoff: time.Second, OutboxMaxBackoff: time.Minute, OutboxLease: time.Minute}
	d := events.NewDispatcher(outbox, publisher, cfg, zerolog.Nop())

	full := []*model.OutboxMessage{
		{ID: 1, Topic: model.TopicSpinResolved, BizKey: "s-1", Payload: []byte(`{}`)},
		{ID: 2, Topic: model.TopicSpinResolved, BizKey: "s-2", Payload: []byte(`{}`)},
	}
	short := []*model.OutboxMessage{
		{ID: 3, Topic: model.TopicLargeWin, BizKey: "s-2", Payload: []byte(`{}`)},
	}
	outbox.On("ClaimPending", ctx, 2, time.Minute).Return(full, nil).Once()
	outbox.On("ClaimPending", ctx, 2, time.Minute).Return(short, nil).Once()
	publisher.On("Publish", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	outbox.On("MarkSent", ctx, mock.Anything).Return(nil)

	err := OutboxTask(d, cfg.OutboxBatch)(ctx)

	assert.NoError(t, err)
	outbox.AssertNumberOfCalls(t, "ClaimPending", 2)
	outbox.AssertNumberOfCalls(t, "MarkSent", 3)
}
