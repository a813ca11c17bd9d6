package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rajannraj/rtomock/internal/config"
)

// New builds a logger writing to cfg.Log.File. The TUI owns the terminal,
// so nothing is written to stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	if err := config.EnsureDir(cfg.Log.File); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return build(cfg, []string{cfg.Log.File})
}

// NewConsole builds a logger writing to stderr, for non-interactive commands.
func NewConsole(cfg *config.Config) (*zap.Logger, error) {
	return build(cfg, []string{"stderr"})
}

func build(cfg *config.Config, outputs []string) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = outputs
	zc.ErrorOutputPaths = outputs

	return zc.Build()
}
