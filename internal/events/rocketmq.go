package events

import (
	"context"
	"fmt"
	"strings"
	"time"
	"wager-ledger/internal/config"

	rmq "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/apache/rocketmq-clients/golang/v5/credentials"
	"github.com/rs/zerolog"
)

const rocketMQStartTimeout = 5 * time.Second

// RocketMQPublisher sends each event to the topic of the same name.
type RocketMQPublisher struct {
	producer rmq.Producer
	logger   zerolog.Logger
}

// TopicName maps an event topic to a RocketMQ topic name.
func TopicName(topic string) string {
	return strings.ReplaceAll(strings.TrimSpace(topic), ".", "_")
}

// NormalizeEndpoint strips the scheme and keeps the first address of a list.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "http://"), "https://")
	if idx := strings.IndexAny(endpoint, ",;"); idx > 0 {
		endpoint = strings.TrimSpace(endpoint[:idx])
	}
	return endpoint
}

func NewRocketMQPublisher(cfg config.RocketMQConfig, logger zerolog.Logger) (*RocketMQPublisher, error) {
	// keep the SDK from writing its own log files
	rmq.ResetLogger()

	endpoint := NormalizeEndpoint(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("rocketmq endpoint is empty")
	}
	// the SDK signs every request and fails on empty credentials
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("rocketmq access key and secret key are required")
	}

	rcfg := &rmq.Config{
		Endpoint: endpoint,
		Credentials: &credentials.SessionCredentials{
			AccessKey:    cfg.AccessKey,
			AccessSecret: cfg.SecretKey,
		},
	}

	var opts []rmq.ProducerOption
	if cfg.Topics != "" {
		parts := strings.Split(cfg.Topics, ",")
		for i := range parts {
			parts[i] = TopicName(parts[i])
		}
		opts = append(opts, rmq.WithTopics(parts...))
	}

	producer, err := rmq.NewProducer(rcfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("create rocketmq producer: %w", err)
	}

	started := make(chan error, 1)
	go func() { started <- producer.Start() }()
	select {
	case err := <-started:
		if err != nil {
			return nil, fmt.Errorf("start rocketmq producer: %w", err)
		}
	case <-time.After(rocketMQStartTimeout):
		return nil, fmt.Errorf("start rocketmq producer: timed out after %s", rocketMQStartTimeout)
	}

	logger.Info().Str("endpoint", endpoint).Str("topics", cfg.Topics).Msg("rocketmq producer started")
	return &RocketMQPublisher{producer: producer, logger: logger}, nil
}

func (p *RocketMQPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	msg := &rmq.Message{
		Topic: TopicName(topic),
		Body:  payload,
	}
	if key != "" {
		msg.SetKeys(key)
	}
	if _, err := p.producer.Send(ctx, msg); err != nil {
		return fmt.Errorf("rocketmq send %s: %w", topic, err)
	}
	return nil
}

func (p *RocketMQPublisher) Close() error {
	return p.producer.GracefulStop()
}
