package postgres

import (
	"context"
	"fmt"
	"time"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.OutboxRepository = (*OutboxRepositoryImpl)(nil)

type OutboxRepositoryImpl struct {
	*TransactionManager
}

func NewOutboxRepository(pool *pgxpool.Pool) repository.OutboxRepository {
	return &OutboxRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Enqueue writes the event in the caller's business transaction
func (r *OutboxRepositoryImpl) Enqueue(ctx context.Context, msg *model.OutboxMessage, tx pgx.Tx) error {
	query := `
        INSERT INTO outbox (topic, biz_key, payload, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, next_attempt_at, created_at`

	msg.Status = model.OutboxPending
	err := tx.QueryRow(ctx, query, msg.Topic, msg.BizKey, msg.Payload, int16(msg.Status)).
		Scan(&msg.ID, &msg.NextAttemptAt, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to enqueue outbox message: %w", err)
	}
	return nil
}

// ClaimPending pushes next_attempt_at of due messages forward by lease and returns them.
// A dispatcher that dies mid-batch leaves its messages to be picked up after the lease.
func (r *OutboxRepositoryImpl) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]*model.OutboxMessage, error) {
	query := `
        UPDATE outbox
        SET next_attempt_at = $2, updated_at = NOW()
        WHERE id IN (
            SELECT id FROM outbox
            WHERE status = $3 AND next_attempt_at <= NOW()
            ORDER BY id
            LIMIT $1
            FOR UPDATE SKIP LOCKED
        )
        RETURNING id, topic, biz_key, payload, status, retry_count, last_error, next_attempt_at, created_at`

	rows, err := r.pool.Query(ctx, query, limit, time.Now().Add(lease), int16(model.OutboxPending))
	if err != nil {
		return nil, fmt.Errorf("failed to claim outbox messages: %w", err)
	}
	defer rows.Close()

	var msgs []*model.OutboxMessage
	for rows.Next() {
		m := &model.OutboxMessage{}
		if err := rows.Scan(&m.ID, &m.Topic, &m.BizKey, &m.Payload, &m.Status, &m.RetryCount, &m.LastError, &m.NextAttemptAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outbox message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outbox messages: %w", err)
	}
	return msgs, nil
}

func (r *OutboxRepositoryImpl) MarkSent(ctx context.Context, id int64) error {
	query := `UPDATE outbox SET status = $2, last_error = '', updated_at = NOW() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id, int16(model.OutboxSent)); err != nil {
		return fmt.Errorf("failed to mark outbox message sent: %w", err)
	}
	return nil
}

// MarkFailed schedules a retry, or parks the message as failed when dead
func (r *OutboxRepositoryImpl) MarkFailed(ctx context.Context, id int64, lastErr string, nextAttempt time.Time, dead bool) error {
	query := `
        UPDATE outbox
        SET status = $2, retry_count = retry_count + 1, last_error = $3, next_attempt_at = $4, updated_at = NOW()
        WHERE id = $1`

	status := model.OutboxPending
	if dead {
		status = model.OutboxFailed
	}
	if _, err := r.pool.Exec(ctx, query, id, int16(status), lastErr, nextAttempt); err != nil {
		return fmt.Errorf("failed to mark outbox message failed: %w", err)
	}
	return nil
}
