package events

import (
	"context"
	"fmt"
	"time"
	"wager-ledger/internal/config"
	"wager-ledger/internal/metrics"
	"wager-ledger/internal/repository"

	"github.com/rs/zerolog"
)

const maxErrorLength = 240

// Dispatcher moves committed outbox messages to the Publisher.
type Dispatcher struct {
	outbox      repository.OutboxRepository
	publisher   Publisher
	batch       int
	maxRetries  int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	lease       time.Duration
	logger      zerolog.Logger
	now         func() time.Time
}

func NewDispatcher(outbox repository.OutboxRepository, publisher Publisher, cfg config.WorkerConfig, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		outbox:      outbox,
		publisher:   publisher,
		batch:       cfg.OutboxBatch,
		maxRetries:  cfg.OutboxMaxRetries,
		baseBackoff: cfg.OutboxBaseBackoff,
		maxBackoff:  cfg.OutboxMaxBackoff,
		lease:       cfg.OutboxLease,
		logger:      logger,
		now:         time.Now,
	}
}

// Backoff returns the delay before attempt retry+1.
func Backoff(retry int, base, max time.Duration) time.Duration {
	d := base
	for i := 0; i < retry; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}

// DispatchOnce delivers one batch and returns how many messages were sent.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	msgs, err := d.outbox.ClaimPending(ctx, d.batch, d.lease)
	if err != nil {
		return 0, fmt.Errorf("claim outbox: %w", err)
	}

	sent := 0
	for _, m := range msgs {
		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		default:
		}

		if err := d.publisher.Publish(ctx, m.Topic, m.BizKey, m.Payload); err != nil {
			dead := m.RetryCount+1 >= d.maxRetries
			next := d.now().Add(Backoff(m.RetryCount, d.baseBackoff, d.maxBackoff))
			if markErr := d.outbox.MarkFailed(ctx, m.ID, truncate(err.Error()), next, dead); markErr != nil {
				d.logger.Error().Err(markErr).Int64("outbox_id", m.ID).Msg("failed to record outbox failure")
			}

			ev := d.logger.Warn()
			result := "retry"
			if dead {
				ev = d.logger.Error()
				result = "dead"
			}
			ev.Err(err).
				Int64("outbox_id", m.ID).
				Str("topic", m.Topic).
				Int("retry_count", m.RetryCount+1).
				Time("next_attempt_at", next).
				Msg("outbox delivery failed")
			metrics.RecordOutbox(m.Topic, result)
			continue
		}

		if err := d.outbox.MarkSent(ctx, m.ID); err != nil {
			// the message will be delivered again after the lease; consumers dedupe on biz key
			d.logger.Warn().Err(err).Int64("outbox_id", m.ID).Msg("failed to mark outbox message sent")
			continue
		}
		metrics.RecordOutbox(m.Topic, "sent")
		sent++
	}

	if len(msgs) > 0 {
		d.logger.Debug().Int("claimed", len(msgs)).Int("sent", sent).Msg("outbox batch dispatched")
	}
	return sent, nil
}

func truncate(s string) string {
	if len(s) > maxErrorLength {
		return s[:maxErrorLength]
	}
	return s
}
