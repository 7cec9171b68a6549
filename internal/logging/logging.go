// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap logger used across the assistant.
//
// The TUI owns stdout and stderr while it runs, so diagnostics go to a log
// file instead (default ~/.algaeverse/algaeverse.log).
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/algaeverse-tui/internal/config"
)

// DefaultFileName is the log file name inside the config directory.
const DefaultFileName = "algaeverse.log"

// Options tweak logger construction beyond what the config carries.
type Options struct {
	// Verbose forces debug level.
	Verbose bool
	// Stderr also tees records to stderr. Only safe outside the TUI.
	Stderr bool
}

// New returns a JSON file logger configured from cfg.
func New(cfg config.LoggingConfig, opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	path, err := resolvePath(cfg.File)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "json"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	if opts.Stderr {
		zc.OutputPaths = append(zc.OutputPaths, "stderr")
	}
	zc.Sampling = nil

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("algaeverse"), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

func resolvePath(file string) (string, error) {
	if file != "" {
		return file, nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultFileName), nil
}
