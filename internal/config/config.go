package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Log        LogConfig
	Auth       AuthConfig
	Spin       SpinConfig
	Fairness   FairnessConfig
	Settlement SettlementConfig
	Events     EventsConfig
	Worker     WorkerConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
// DatabaseConfig takes DATABASE_URL as-is when set; the DB_* connection fields are ignored then.
type DatabaseConfig struct {
	URL              string        `env:"DATABASE_URL"`
	Host             string        `env:"DB_HOST" envDefault:"localhost"`
	Port             string        `env:"DB_PORT" envDefault:"5432"`
	User             string        `env:"DB_USER" envDefault:"postgres"`
	Password         string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name             string        `env:"DB_NAME" envDefault:"wager_ledger"`
	SSLMode          string        `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns     int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns     int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime  time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	StatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT" envDefault:"30s"`
	LockTimeout      time.Duration `env:"DB_LOCK_TIMEOUT" envDefault:"5s"`
	AutoMigrate      bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// RedisConfig is optional; an empty address disables the Redis publisher and the large-win feed.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty     bool   `env:"LOG_PRETTY" envDefault:"false"`
	File       string `env:"LOG_FILE" envDefault:""`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"14"`
}
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" envDefault:"change-me"`
	Issuer    string `env:"AUTH_JWT_ISSUER" envDefault:"wager-ledger"`
}
type SpinConfig struct {
	Cost              int64         `env:"SPIN_COST" envDefault:"100"`
	PrizeTable        string        `env:"SPIN_PRIZE_TABLE" envDefault:"0:0.5,50:0.3,150:0.2"`
	Cooldown          time.Duration `env:"SPIN_COOLDOWN" envDefault:"2s"`
	DailyLimit        int           `env:"SPIN_DAILY_LIMIT" envDefault:"0"`
	LargeWinThreshold int64         `env:"SPIN_LARGE_WIN_THRESHOLD" envDefault:"10000"`
}
type FairnessConfig struct {
	EpochPeriod      time.Duration `env:"FAIRNESS_EPOCH_PERIOD" envDefault:"1h"`
	RotationInterval time.Duration `env:"FAIRNESS_ROTATION_INTERVAL" envDefault:"1m"`
}
type SettlementConfig struct {
	MinDeposit           int64         `env:"SETTLEMENT_MIN_DEPOSIT" envDefault:"100"`
	MinWithdrawal        int64         `env:"SETTLEMENT_MIN_WITHDRAWAL" envDefault:"1000"`
	DailyWithdrawalLimit int64         `env:"SETTLEMENT_DAILY_WITHDRAWAL_LIMIT" envDefault:"500000"`
	ReminderAfter        time.Duration `env:"SETTLEMENT_REMINDER_AFTER" envDefault:"30m"`
	AutoCancelAfter      time.Duration `env:"SETTLEMENT_AUTO_CANCEL_AFTER" envDefault:"0s"`
	SweepInterval        time.Duration `env:"SETTLEMENT_SWEEP_INTERVAL" envDefault:"3m"`
}
type EventsConfig struct {
	Backend       string `env:"EVENTS_BACKEND" envDefault:"log"`
	ChannelPrefix string `env:"EVENTS_CHANNEL_PREFIX" envDefault:"wager:events:"`
	FeedKey       string `env:"EVENTS_FEED_KEY" envDefault:"wager:feed:large_wins"`
	FeedSize      int64  `env:"EVENTS_FEED_SIZE" envDefault:"50"`
	RocketMQ      RocketMQConfig
}
type RocketMQConfig struct {
	Endpoint  string `env:"ROCKETMQ_ENDPOINT" envDefault:""`
	AccessKey string `env:"ROCKETMQ_ACCESS_KEY" envDefault:""`
	SecretKey string `env:"ROCKETMQ_SECRET_KEY" envDefault:""`
	Topics    string `env:"ROCKETMQ_TOPICS" envDefault:""`
}
type WorkerConfig struct {
	OutboxInterval       time.Duration `env:"WORKER_OUTBOX_INTERVAL" envDefault:"1s"`
	OutboxBatch          int           `env:"WORKER_OUTBOX_BATCH" envDefault:"100"`
	OutboxMaxRetries     int           `env:"WORKER_OUTBOX_MAX_RETRIES" envDefault:"10"`
	OutboxBaseBackoff    time.Duration `env:"WORKER_OUTBOX_BASE_BACKOFF" envDefault:"2s"`
	OutboxMaxBackoff     time.Duration `env:"WORKER_OUTBOX_MAX_BACKOFF" envDefault:"10m"`
	OutboxLease          time.Duration `env:"WORKER_OUTBOX_LEASE" envDefault:"30s"`
	PrizeRefreshInterval time.Duration `env:"WORKER_PRIZE_REFRESH_INTERVAL" envDefault:"30s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return err
	}
	if c.Spin.Cost <= 0 {
		return errors.New("spin cost must be positive")
	}
	if c.Spin.DailyLimit < 0 {
		return errors.New("spin daily limit cannot be negative")
	}
	if c.Fairness.EpochPeriod < time.Minute {
		return fmt.Errorf("fairness epoch period must be at least 1m, got %s", c.Fairness.EpochPeriod)
	}
	if c.Settlement.MinWithdrawal <= 0 || c.Settlement.MinDeposit <= 0 {
		return errors.New("settlement minimums must be positive")
	}
	if c.Settlement.DailyWithdrawalLimit < c.Settlement.MinWithdrawal {
		return fmt.Errorf("daily withdrawal limit (%d) must be >= minimum withdrawal (%d)",
			c.Settlement.DailyWithdrawalLimit, c.Settlement.MinWithdrawal)
	}
	if c.Worker.OutboxMaxRetries <= 0 || c.Worker.OutboxBatch <= 0 {
		return errors.New("outbox batch and max retries must be positive")
	}

	switch strings.ToLower(c.Events.Backend) {
	case "log", "redis", "rocketmq":
	default:
		return fmt.Errorf("invalid events backend: %s (must be log, redis or rocketmq)", c.Events.Backend)
	}
	if strings.EqualFold(c.Events.Backend, "redis") && c.Redis.Addr == "" {
		return errors.New("redis events backend requires REDIS_ADDR")
	}
	if strings.EqualFold(c.Events.Backend, "rocketmq") && c.Events.RocketMQ.Endpoint == "" {
		return errors.New("rocketmq events backend requires ROCKETMQ_ENDPOINT")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}
	return nil
}

var validSSLModes = map[string]bool{
	"disable": true, "allow": true, "prefer": true, "require": true, "verify-ca": true, "verify-full": true,
}

func (d DatabaseConfig) validate() error {
	if d.URL == "" && !validSSLModes[d.SSLMode] {
		return fmt.Errorf("invalid DB_SSLMODE: %s", d.SSLMode)
	}
	if d.StatementTimeout < 0 || d.LockTimeout < 0 {
		return errors.New("database statement and lock timeouts cannot be negative")
	}
	if d.MaxOpenConns <= 0 || d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
		return fmt.Errorf("database pool sizes out of range (max open %d, max idle %d)", d.MaxOpenConns, d.MaxIdleConns)
	}
	return nil
}
