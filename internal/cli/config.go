// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/algaeverse-tui/internal/config"
)

// HandleConfigCommand implements "config show|path|init".
func HandleConfigCommand(args Args) error {
	return runConfig(args, os.Stdout)
}

func runConfig(args Args, out io.Writer) error {
	switch args.Subcommand {
	case "", "show":
		cfg, err := LoadConfig(args)
		if err != nil {
			return err
		}
		showConfig(cfg, out)
		return nil

	case "path":
		path, err := activeConfigPath(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
		return nil

	case "init":
		path, err := activeConfigPath(args)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return &CommandError{Command: "config", Action: "init", Err: fmt.Errorf("%s already exists", path)}
		}
		if err := config.SaveTOML(config.Default(), path); err != nil {
			return &CommandError{Command: "config", Action: "init", Err: err}
		}
		fmt.Fprintln(out, SuccessStyle.Render("✓ Wrote "+path))
		return nil

	default:
		return &UsageError{
			Message: fmt.Sprintf("unknown config subcommand %q", args.Subcommand),
			Usage:   "algaeverse config [show|path|init]",
		}
	}
}

// activeConfigPath returns --config, else the first existing default
// file, else the TOML default.
func activeConfigPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	paths, err := config.ConfigPaths()
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return paths[0], nil
}

func showConfig(cfg *config.Config, out io.Writer) {
	row := func(label string, value any) {
		fmt.Fprintf(out, "  %s %v\n", RenderLabel(label), value)
	}
	section := func(name string) {
		fmt.Fprintln(out, TitleStyle.Render(name))
	}

	section("[api]")
	row("base_url", cfg.API.BaseURL)
	row("chat_path", cfg.API.ChatPath)
	row("upload_path", cfg.API.UploadPath)
	if cfg.API.TimeoutSeconds == 0 {
		row("timeout_seconds", "none")
	} else {
		row("timeout_seconds", cfg.API.TimeoutSeconds)
	}
	row("user_agent", cfg.API.UserAgent)
	row("max_response", cfg.API.MaxResponseBytes)

	section("[session]")
	row("country", orNone(cfg.Session.Country))

	section("[upload]")
	row("drop_dir", orNone(cfg.Upload.DropDir))
	row("drop_window_ms", cfg.Upload.DropWindowMs)

	section("[thinking]")
	row("research_ms", cfg.Thinking.ResearchDelayMs)
	row("analysis_ms", cfg.Thinking.AnalysisDelayMs)
	row("generation_ms", cfg.Thinking.GenerationDelayMs)
	row("default_ms", cfg.Thinking.DefaultDelayMs)

	section("[ui]")
	row("theme", cfg.UI.Theme)
	row("render_markdown", cfg.UI.RenderMarkdown)
	row("show_descriptions", cfg.UI.ShowDescriptions)
	row("word_wrap", cfg.UI.WordWrap)

	section("[logging]")
	row("file", orNone(cfg.Logging.File))
	row("level", cfg.Logging.Level)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
