// Package events delivers outbox messages to the notification transport.
//
// Delivery is best effort: a failed publish is retried by the Dispatcher and
// never reaches back into ledger or settlement state.
package events

import (
	"context"
	"fmt"
	"strings"
	"wager-ledger/internal/config"
	"wager-ledger/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
	Close() error
}

// LargeWinFeed serves the public announcement feed.
type LargeWinFeed interface {
	Recent(ctx context.Context, n int64) ([]*model.LargeWin, error)
}

// LogPublisher writes events to the log. Used when no transport is configured.
type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	p.logger.Info().Str("topic", topic).Str("key", key).RawJSON("payload", payload).Msg("event published")
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// NopFeed is the feed when Redis is not configured.
type NopFeed struct{}

func (NopFeed) Recent(context.Context, int64) ([]*model.LargeWin, error) {
	return []*model.LargeWin{}, nil
}

// NewPublisher builds the publisher selected by EVENTS_BACKEND.
func NewPublisher(cfg config.EventsConfig, rdb *redis.Client, logger zerolog.Logger) (Publisher, error) {
	switch strings.ToLower(cfg.Backend) {
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("redis events backend requires a redis client")
		}
		return NewRedisPublisher(rdb, cfg.ChannelPrefix, cfg.FeedKey, cfg.FeedSize), nil
	case "rocketmq":
		return NewRocketMQPublisher(cfg.RocketMQ, logger)
	default:
		return NewLogPublisher(logger), nil
	}
}
