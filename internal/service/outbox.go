package service

import (
	"context"
	"encoding/json"
	"fmt"
	"wager-ledger/internal/model"
	"wager-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
)

// enqueueEvent stores an event in the same transaction as the state change it announces.
func enqueueEvent(ctx context.Context, outbox repository.OutboxRepository, topic, key string, payload any, tx pgx.Tx) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}
	msg := &model.OutboxMessage{
		Topic:   topic,
		BizKey:  key,
		Payload: raw,
		Status:  model.OutboxPending,
	}
	if err := outbox.Enqueue(ctx, msg, tx); err != nil {
		return fmt.Errorf("enqueue %s event: %w", topic, err)
	}
	return nil
}
