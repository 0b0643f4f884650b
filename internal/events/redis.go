package events

import (
	"context"
	"encoding/json"
	"fmt"
	"wager-ledger/internal/model"

	"github.com/go-redis/redis/v8"
)

// ChannelKey is the Pub/Sub channel of a topic.
func ChannelKey(prefix, topic string) string {
	return prefix + topic
}

// RedisPublisher publishes every topic on its own channel and keeps the
// newest large wins in a capped list for the public feed.
type RedisPublisher struct {
	client   *redis.Client
	prefix   string
	feedKey  string
	feedSize int64
}

func NewRedisPublisher(client *redis.Client, prefix, feedKey string, feedSize int64) *RedisPublisher {
	return &RedisPublisher{
		client:   client,
		prefix:   prefix,
		feedKey:  feedKey,
		feedSize: feedSize,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic, _ string, payload []byte) error {
	if err := p.client.Publish(ctx, ChannelKey(p.prefix, topic), payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", topic, err)
	}
	if topic != model.TopicLargeWin {
		return nil
	}
	if err := p.client.LPush(ctx, p.feedKey, payload).Err(); err != nil {
		return fmt.Errorf("redis lpush feed: %w", err)
	}
	if err := p.client.LTrim(ctx, p.feedKey, 0, p.feedSize-1).Err(); err != nil {
		return fmt.Errorf("redis ltrim feed: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Close() error { return nil }

// RedisFeed reads the large-win list written by RedisPublisher.
type RedisFeed struct {
	client *redis.Client
	key    string
}

func NewRedisFeed(client *redis.Client, key string) *RedisFeed {
	return &RedisFeed{client: client, key: key}
}

// Recent returns up to n wins, newest first. Undecodable items are skipped.
func (f *RedisFeed) Recent(ctx context.Context, n int64) ([]*model.LargeWin, error) {
	if n <= 0 {
		return []*model.LargeWin{}, nil
	}
	raw, err := f.client.LRange(ctx, f.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange feed: %w", err)
	}
	wins := make([]*model.LargeWin, 0, len(raw))
	for _, item := range raw {
		w := &model.LargeWin{}
		if err := json.Unmarshal([]byte(item), w); err != nil {
			continue
		}
		wins = append(wins, w)
	}
	return wins, nil
}
