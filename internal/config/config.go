// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the AlgaeVerse terminal assistant.
//
// Supports TOML, JSON and YAML configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.algaeverse/config.toml
//   - ~/.algaeverse/config.json
//   - ~/.algaeverse/config.yaml
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/algaeverse-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete assistant configuration.
type Config struct {
	Version string `toml:"version" json:"version" yaml:"version"`

	// API holds the remote chat and upload endpoints.
	API APIConfig `toml:"api" json:"api" yaml:"api"`

	// Session holds per-conversation defaults.
	Session SessionConfig `toml:"session" json:"session" yaml:"session"`

	// Upload configures the uploader and the drop folder.
	Upload UploadConfig `toml:"upload" json:"upload" yaml:"upload"`

	// Thinking configures the simulated thinking animation.
	Thinking ThinkingConfig `toml:"thinking" json:"thinking" yaml:"thinking"`

	// UI configures the terminal interface.
	UI UIConfig `toml:"ui" json:"ui" yaml:"ui"`

	// Logging configures the diagnostic log file.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// APIConfig contains the remote backend configuration.
type APIConfig struct {
	// BaseURL is the scheme and host of the backend.
	BaseURL string `toml:"base_url" json:"base_url" yaml:"base_url"`
	// ChatPath is appended to BaseURL for chat requests.
	ChatPath string `toml:"chat_path" json:"chat_path" yaml:"chat_path"`
	// UploadPath is appended to BaseURL for uploads.
	UploadPath string `toml:"upload_path" json:"upload_path" yaml:"upload_path"`
	// TimeoutSeconds bounds a single request. 0 disables the client timeout.
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" yaml:"timeout_seconds"`
	// UserAgent is sent with every request.
	UserAgent string `toml:"user_agent" json:"user_agent" yaml:"user_agent"`
	// MaxResponseBytes caps how much of a reply body is read.
	MaxResponseBytes int64 `toml:"max_response_bytes" json:"max_response_bytes" yaml:"max_response_bytes"`
}

// SessionConfig contains conversation defaults.
type SessionConfig struct {
	// Country pre-fills the target country field.
	Country string `toml:"country" json:"country" yaml:"country"`
}

// UploadConfig contains uploader configuration.
type UploadConfig struct {
	// DropDir is watched for new files. Empty disables the watcher.
	DropDir string `toml:"drop_dir" json:"drop_dir" yaml:"drop_dir"`
	// DropWindowMs groups files created close together into one drop.
	DropWindowMs int `toml:"drop_window_ms" json:"drop_window_ms" yaml:"drop_window_ms"`
}

// ThinkingConfig contains the per-category base delays of the thinking animation.
type ThinkingConfig struct {
	ResearchDelayMs   int `toml:"research_delay_ms" json:"research_delay_ms" yaml:"research_delay_ms"`
	AnalysisDelayMs   int `toml:"analysis_delay_ms" json:"analysis_delay_ms" yaml:"analysis_delay_ms"`
	GenerationDelayMs int `toml:"generation_delay_ms" json:"generation_delay_ms" yaml:"generation_delay_ms"`
	DefaultDelayMs    int `toml:"default_delay_ms" json:"default_delay_ms" yaml:"default_delay_ms"`
}

// UIConfig contains terminal interface preferences.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme" json:"theme" yaml:"theme"`
	// RenderMarkdown renders proposal replies through glamour.
	RenderMarkdown bool `toml:"render_markdown" json:"render_markdown" yaml:"render_markdown"`
	// ShowDescriptions shows the italic sub-line under each thinking step.
	ShowDescriptions bool `toml:"show_descriptions" json:"show_descriptions" yaml:"show_descriptions"`
	// WordWrap is the wrap width for rendered markdown outside the TUI.
	WordWrap int `toml:"word_wrap" json:"word_wrap" yaml:"word_wrap"`
}

// LoggingConfig contains diagnostic logging configuration.
type LoggingConfig struct {
	// File is the log destination. Empty means ~/.algaeverse/algaeverse.log.
	File string `toml:"file" json:"file" yaml:"file"`
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" json:"level" yaml:"level"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultBaseURL is the production AlgaeVerse backend.
	DefaultBaseURL = "https://algaeverse.kenn.my"

	// DefaultChatPath is the chat endpoint path.
	DefaultChatPath = "/api/chat"

	// DefaultUploadPath is the upload endpoint path.
	DefaultUploadPath = "/api/upload"

	// DefaultMaxResponseBytes limits reply bodies to 10MB.
	DefaultMaxResponseBytes = 10 * 1024 * 1024

	currentVersion = "1"
)

// Default returns a new Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: currentVersion,
		API: APIConfig{
			BaseURL:          DefaultBaseURL,
			ChatPath:         DefaultChatPath,
			UploadPath:       DefaultUploadPath,
			TimeoutSeconds:   0,
			UserAgent:        "algaeverse-tui",
			MaxResponseBytes: DefaultMaxResponseBytes,
		},
		Upload: UploadConfig{
			DropWindowMs: 750,
		},
		Thinking: ThinkingConfig{
			ResearchDelayMs:   1200,
			AnalysisDelayMs:   1000,
			GenerationDelayMs: 600,
			DefaultDelayMs:    800,
		},
		UI: UIConfig{
			Theme:            "auto",
			RenderMarkdown:   true,
			ShowDescriptions: true,
			WordWrap:         80,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Timeout returns the configured request timeout. Zero means none.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// DropWindow returns the drop grouping window.
func (u UploadConfig) DropWindow() time.Duration {
	return time.Duration(u.DropWindowMs) * time.Millisecond
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".algaeverse"), nil
}

// ConfigPaths returns the candidate config files in precedence order.
func ConfigPaths() ([]string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.json"),
		filepath.Join(dir, "config.yaml"),
	}, nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the first config file that exists, falling
// back to defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	paths, err := ConfigPaths()
	if err == nil {
		for _, path := range paths {
			if _, statErr := os.Stat(path); statErr != nil {
				continue
			}
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file. The decoder is
// chosen by extension; anything that is not .json, .yaml or .yml is TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = LoadJSON(cfg, path)
	case ".yaml", ".yml":
		err = LoadYAML(cfg, path)
	default:
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish runs the post-decode pipeline shared by every loader.
func finish(cfg *Config) error {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadYAML decodes a YAML file over cfg.
func LoadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode YAML file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to ~/.algaeverse/config.toml.
func Save(cfg *Config) error {
	paths, err := ConfigPaths()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, paths[0])
}

// SaveTOML writes the configuration to a TOML file with a header comment.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# AlgaeVerse assistant configuration\n")
	sb.WriteString("# Generated by algaeverse - edit with care\n\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes    = map[string]bool{"auto": true, "dark": true, "light": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks the configuration and returns ValidationErrors when any
// field is out of range.
func (c *Config) Validate() error {
	var errs ValidationErrors

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("must be an absolute http(s) URL, got %q", c.API.BaseURL),
		})
	}
	if !strings.HasPrefix(c.API.ChatPath, "/") {
		errs = append(errs, ValidationError{Field: "api.chat_path", Message: "must start with /"})
	}
	if !strings.HasPrefix(c.API.UploadPath, "/") {
		errs = append(errs, ValidationError{Field: "api.upload_path", Message: "must start with /"})
	}
	if c.API.TimeoutSeconds < 0 {
		errs = append(errs, ValidationError{Field: "api.timeout_seconds", Message: "must not be negative"})
	}
	if c.API.MaxResponseBytes <= 0 {
		errs = append(errs, ValidationError{Field: "api.max_response_bytes", Message: "must be positive"})
	}

	if c.Upload.DropWindowMs < 0 {
		errs = append(errs, ValidationError{Field: "upload.drop_window_ms", Message: "must not be negative"})
	}

	for field, v := range map[string]int{
		"thinking.research_delay_ms":   c.Thinking.ResearchDelayMs,
		"thinking.analysis_delay_ms":   c.Thinking.AnalysisDelayMs,
		"thinking.generation_delay_ms": c.Thinking.GenerationDelayMs,
		"thinking.default_delay_ms":    c.Thinking.DefaultDelayMs,
	} {
		if v < 0 {
			errs = append(errs, ValidationError{Field: field, Message: "must not be negative"})
		}
	}

	if !validThemes[c.UI.Theme] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be auto, dark or light, got %q", c.UI.Theme),
		})
	}
	if c.UI.WordWrap < 20 {
		errs = append(errs, ValidationError{Field: "ui.word_wrap", Message: "must be at least 20"})
	}

	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be debug, info, warn or error, got %q", c.Logging.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero values that have no meaningful zero setting and
// normalizes case-insensitive fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.ChatPath == "" {
		c.API.ChatPath = defaults.API.ChatPath
	}
	if c.API.UploadPath == "" {
		c.API.UploadPath = defaults.API.UploadPath
	}
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaults.API.UserAgent
	}
	if c.API.MaxResponseBytes == 0 {
		c.API.MaxResponseBytes = defaults.API.MaxResponseBytes
	}

	c.Session.Country = strings.TrimSpace(c.Session.Country)
	c.Upload.DropDir = util.ExpandHome(c.Upload.DropDir)

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.WordWrap == 0 {
		c.UI.WordWrap = defaults.UI.WordWrap
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.File = util.ExpandHome(c.Logging.File)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - ALGAEVERSE_BASE_URL: overrides api.base_url
//   - ALGAEVERSE_TIMEOUT: overrides api.timeout_seconds
//   - ALGAEVERSE_COUNTRY: overrides session.country
//   - ALGAEVERSE_DROP_DIR: overrides upload.drop_dir
//   - ALGAEVERSE_THEME: overrides ui.theme
//   - ALGAEVERSE_NO_MARKDOWN: set to "1" or "true" to disable markdown rendering
//   - ALGAEVERSE_LOG_FILE: overrides logging.file
//   - ALGAEVERSE_LOG_LEVEL: overrides logging.level
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ALGAEVERSE_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("ALGAEVERSE_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.API.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("ALGAEVERSE_COUNTRY"); v != "" {
		c.Session.Country = v
	}
	if v := os.Getenv("ALGAEVERSE_DROP_DIR"); v != "" {
		c.Upload.DropDir = v
	}
	if v := os.Getenv("ALGAEVERSE_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("ALGAEVERSE_NO_MARKDOWN"); v != "" {
		c.UI.RenderMarkdown = !(v == "1" || strings.ToLower(v) == "true")
	}
	if v := os.Getenv("ALGAEVERSE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("ALGAEVERSE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// String returns the config as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	globalConfig = cfg
	globalConfigMu.Unlock()
	globalConfigOnce.Do(func() {})
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
