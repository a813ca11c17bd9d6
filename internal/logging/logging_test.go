package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/rajannraj/rtomock/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rtomock.log")
	cfg := &config.Config{Env: "production", Log: config.Log{File: path, Level: "info"}}

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Info("hello from test")
	logger.Debug("filtered out")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.NotContains(t, string(data), "filtered out")
}

func TestNew_BadLevel(t *testing.T) {
	cfg := &config.Config{Log: config.Log{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	logger, err := NewConsole(&config.Config{Log: config.Log{Level: "warn"}})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
