// Package logging builds the zap logger shared by the commands.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option configures the logger built by New.
type Option func(*zap.Config)

// New builds a logger writing JSON lines to stderr at info level, unless
// configured otherwise.
func New(options ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	for _, o := range options {
		o(&cfg)
	}
	for _, path := range cfg.OutputPaths {
		if path == "stderr" || path == "stdout" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// WithLevel sets the minimum level: debug, info, warn or error. Unknown
// levels fall back to info.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			l = zapcore.InfoLevel
		}
		cfg.Level = zap.NewAtomicLevelAt(l)
	}
}

// WithDevelopment switches to human readable console output with stack traces
// on warnings.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) {
		if !dev {
			return
		}
		dev := zap.NewDevelopmentConfig()
		dev.Level, dev.OutputPaths, dev.InitialFields = cfg.Level, cfg.OutputPaths, cfg.InitialFields
		*cfg = dev
	}
}

// WithFile adds a log file next to the standard error output.
func WithFile(path string) Option {
	return func(cfg *zap.Config) {
		if path != "" {
			cfg.OutputPaths = append(cfg.OutputPaths, path)
		}
	}
}

// WithFields attaches fields to every log line.
func WithFields(fields map[string]any) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]any{}
		}
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.InitialFields[key] = value
		}
	}
}
