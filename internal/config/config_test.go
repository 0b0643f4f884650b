package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(100), cfg.Spin.Cost)
	assert.Equal(t, "0:0.5,50:0.3,150:0.2", cfg.Spin.PrizeTable)
	assert.Equal(t, time.Hour, cfg.Fairness.EpochPeriod)
	assert.Equal(t, "log", cfg.Events.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Settlement.ReminderAfter)
	assert.Zero(t, cfg.Settlement.AutoCancelAfter)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30*time.Second, cfg.Database.StatementTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.LockTimeout)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SPIN_COST", "250")
	t.Setenv("SPIN_COOLDOWN", "5s")
	t.Setenv("FAIRNESS_EPOCH_PERIOD", "24h")
	t.Setenv("SETTLEMENT_AUTO_CANCEL_AFTER", "72h")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DATABASE_URL", "postgres://ledger@db:5432/ledger?sslmode=verify-full")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("DB_STATEMENT_TIMEOUT", "10s")
	t.Setenv("DB_LOCK_TIMEOUT", "750ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(250), cfg.Spin.Cost)
	assert.Equal(t, 5*time.Second, cfg.Spin.Cooldown)
	assert.Equal(t, 24*time.Hour, cfg.Fairness.EpochPeriod)
	assert.Equal(t, 72*time.Hour, cfg.Settlement.AutoCancelAfter)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, "postgres://ledger@db:5432/ledger?sslmode=verify-full", cfg.Database.URL)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 10*time.Second, cfg.Database.StatementTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.Database.LockTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Unparseable duration", func(t *testing.T) {
		t.Setenv("SPIN_COOLDOWN", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("Fails validation", func(t *testing.T) {
		t.Setenv("SPIN_COST", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "invalid configuration")
	})
}

func validConfig(t *testing.T) *Config {
	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "Unknown sslmode",
			mutate:  func(c *Config) { c.Database.SSLMode = "sometimes" },
			wantErr: "invalid DB_SSLMODE",
		},
		{
			name:    "Negative lock timeout",
			mutate:  func(c *Config) { c.Database.LockTimeout = -time.Second },
			wantErr: "timeouts cannot be negative",
		},
		{
			name:    "Idle connections above max open",
			mutate:  func(c *Config) { c.Database.MaxIdleConns = c.Database.MaxOpenConns + 1 },
			wantErr: "database pool sizes",
		},
		{
			name:    "Negative daily spin limit",
			mutate:  func(c *Config) { c.Spin.DailyLimit = -1 },
			wantErr: "spin daily limit",
		},
		{
			name:    "Epoch period too short",
			mutate:  func(c *Config) { c.Fairness.EpochPeriod = 30 * time.Second },
			wantErr: "fairness epoch period",
		},
		{
			name:    "Zero minimum deposit",
			mutate:  func(c *Config) { c.Settlement.MinDeposit = 0 },
			wantErr: "settlement minimums",
		},
		{
			name: "Daily limit below minimum withdrawal",
			mutate: func(c *Config) {
				c.Settlement.MinWithdrawal = 1000
				c.Settlement.DailyWithdrawalLimit = 999
			},
			wantErr: "daily withdrawal limit",
		},
		{
			name:    "Zero outbox batch",
			mutate:  func(c *Config) { c.Worker.OutboxBatch = 0 },
			wantErr: "outbox batch",
		},
		{
			name:    "Unknown events backend",
			mutate:  func(c *Config) { c.Events.Backend = "kafka" },
			wantErr: "invalid events backend",
		},
		{
			name:    "Redis backend without address",
			mutate:  func(c *Config) { c.Events.Backend = "redis" },
			wantErr: "requires REDIS_ADDR",
		},
		{
			name:    "RocketMQ backend without endpoint",
			mutate:  func(c *Config) { c.Events.Backend = "rocketmq" },
			wantErr: "requires ROCKETMQ_ENDPOINT",
		},
		{
			name:    "Unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}

	t.Run("DATABASE_URL skips sslmode check", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Database.URL = "postgres://ledger@db:5432/ledger"
		cfg.Database.SSLMode = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Redis backend with address", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Events.Backend = "redis"
		cfg.Redis.Addr = "localhost:6379"
		assert.NoError(t, cfg.Validate())
	})
}
