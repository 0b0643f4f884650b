package logger

import (
	"path/filepath"
	"testing"
	"wager-ledger/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestNew_Level(t *testing.T) {
	l := New(config.LogConfig{Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, l.GetLevel())
}

func TestNew_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wager-ledger.log")
	l := New(config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})

	l.Info().Msg("logger started")

	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
	assert.FileExists(t, path)
}
