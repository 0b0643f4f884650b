package worker

import (
	"context"
	"errors"
	"wager-ledger/internal/events"
	"wager-ledger/internal/service"
)

// OutboxTask drains due outbox messages until a batch comes back empty or short.
func OutboxTask(d *events.Dispatcher, batch int) Task {
	return func(ctx context.Context) error {
		for {
			n, err := d.DispatchOnce(ctx)
			if err != nil {
				return err
			}
			if n < batch || ctx.Err() != nil {
				return nil
			}
		}
	}
}

// RotationTask commits the next epoch ahead of time and swaps the current seed.
func RotationTask(svc service.FairnessService) Task {
	return svc.Rotate
}

// SettlementSweepTask auto-cancels stale withdrawals and queues review reminders.
func SettlementSweepTask(svc service.SettlementService) Task {
	return func(ctx context.Context) error {
		_, cancelErr := svc.AutoCancelStale(ctx)
		_, remindErr := svc.RemindPending(ctx)
		return errors.Join(cancelErr, remindErr)
	}
}

// PrizeRefreshTask picks up table versions stored by other instances.
func PrizeRefreshTask(svc service.PrizeService) Task {
	return svc.Refresh
}
