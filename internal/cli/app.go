// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/algaeverse-tui/internal/config"
	"github.com/jeranaias/algaeverse-tui/internal/logging"
	"github.com/jeranaias/algaeverse-tui/internal/remote"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
)

// App bundles what every command needs: the configuration, the logger, the
// backend client and the conversation store.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Client *remote.Client
	Store  *session.Store
}

// LoadConfig loads the config named by --config, or the default search
// path, and applies the command-line overrides.
func LoadConfig(args Args) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if args.BaseURL != "" {
		cfg.API.BaseURL = strings.TrimSuffix(args.BaseURL, "/")
	}
	if args.Country != "" {
		cfg.Session.Country = args.Country
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	config.SetGlobal(cfg)
	return cfg, nil
}

// NewClient builds the backend client from cfg.
func NewClient(cfg *config.Config, logger *zap.Logger) *remote.Client {
	return remote.NewClient(cfg.API.BaseURL).
		WithPaths(cfg.API.ChatPath, cfg.API.UploadPath).
		WithTimeout(cfg.API.Timeout()).
		WithUserAgent(cfg.API.UserAgent + "/" + Version).
		WithMaxResponseSize(cfg.API.MaxResponseBytes).
		WithLogger(logger)
}

// NewApp loads configuration and builds the store. stderrLogs tees log
// records to stderr, which is only safe when no full-screen UI runs.
func NewApp(args Args, stderrLogs bool, opts ...session.Option) (*App, error) {
	cfg, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging, logging.Options{
		Verbose: args.Verbose,
		Stderr:  stderrLogs && args.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	client := NewClient(cfg, logger)
	base := []session.Option{
		session.WithCountry(cfg.Session.Country),
		session.WithSchedule(thinking.ScheduleFromConfig(cfg.Thinking)),
		session.WithLogger(logger),
	}
	store := session.New(client, client, append(base, opts...)...)

	logger.Info("session started",
		zap.String("base_url", client.BaseURL()),
		zap.String("country", cfg.Session.Country))

	return &App{Config: cfg, Logger: logger, Client: client, Store: store}, nil
}

// Close stops the store and flushes the logger.
func (a *App) Close() {
	a.Store.Close()
	_ = a.Logger.Sync()
}
