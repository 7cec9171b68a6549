// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the AlgaeVerse terminal assistant.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - APIConfig: Backend base URL, endpoint paths and request limits
//   - ThinkingConfig: Base delays for the thinking animation
//   - ValidationErrors: Aggregated validation failures
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (ALGAEVERSE_*)
//   - ~/.algaeverse/config.toml
//   - ~/.algaeverse/config.json
//   - ~/.algaeverse/config.yaml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := remote.NewClient(cfg.API.BaseURL)
package config
