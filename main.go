// algaeverse - terminal assistant for the AlgaeVerse smart algae farming system.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/algaeverse-tui/internal/cli"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/ui/chat"
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		if args.NoTUI || !cli.CanRunTUI() {
			err = cli.HandleChatCommand(args)
		} else {
			err = runTUI(args)
		}
	case cli.CmdChat:
		err = cli.HandleChatCommand(args)
	case cli.CmdAsk:
		err = cli.HandleAskCommand(args)
	case cli.CmdUpload:
		err = cli.HandleUploadCommand(args)
	case cli.CmdConfig:
		err = cli.HandleConfigCommand(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}

	cli.HandleErrorAndExit(err)
}

// runTUI starts the full-screen chat interface.
func runTUI(args cli.Args) error {
	bridge := chat.NewBridge()

	// Logs go to the file only; the TUI owns the terminal.
	app, err := cli.NewApp(args, false, session.WithListener(bridge.Listener))
	if err != nil {
		bridge.Close()
		return err
	}
	defer app.Close()
	// Unblocks listeners still sending once the program has exited.
	defer bridge.Close()
	cfg := app.Config

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uploader := upload.NewUploader(app.Store, bridge.Alert, upload.WithLogger(app.Logger))

	if cfg.Upload.DropDir != "" {
		watcher, err := upload.NewWatcher(cfg.Upload.DropDir, cfg.Upload.DropWindow(), uploader,
			upload.WithWatcherLogger(app.Logger))
		if err != nil {
			return fmt.Errorf("drop folder: %w", err)
		}
		if err := watcher.Start(ctx); err != nil {
			return fmt.Errorf("drop folder: %w", err)
		}
		defer watcher.Close()
		app.Logger.Info("watching drop folder", zap.String("dir", watcher.Dir()))
	}

	theme := styles.NewTheme(cfg.UI.Theme)
	wd, _ := os.Getwd()
	model := chat.New(ctx, app.Store, uploader, bridge, theme, chat.Options{
		RenderMarkdown:   cfg.UI.RenderMarkdown,
		ShowDescriptions: cfg.UI.ShowDescriptions,
		ExportDir:        wd,
		PickerDir:        wd,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
