// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/algaeverse-tui/internal/composer"
	"github.com/jeranaias/algaeverse-tui/internal/config"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/ui/chat"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

const (
	primaryPrompt      = "you> "
	continuationPrompt = "...> "
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// LineReader reads prompted lines with history.
type LineReader interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// ChatCLI wraps liner with a persistent history file.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a line editor that loads ~/.algaeverse/chat_history.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	c := &ChatCLI{line: line, historyFile: filepath.Join(configDir, "chat_history")}
	if f, err := os.Open(c.historyFile); err == nil {
		_, _ = c.line.ReadHistory(f)
		f.Close()
	}
	return c
}

// Prompt reads one line and records it in the history.
func (c *ChatCLI) Prompt(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves the history with owner-only permissions and restores the
// terminal.
func (c *ChatCLI) Close() error {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			_, _ = c.line.WriteHistory(f)
			f.Close()
		}
	}
	return c.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// REPL is the line-mode conversation loop.
type REPL struct {
	Store     *session.Store
	Uploader  *upload.Uploader
	Reader    LineReader
	Out       io.Writer
	ExportDir string
	Logger    *zap.Logger

	composer *composer.Composer
}

// readMessage reads one message. A trailing backslash continues the
// message on the next line.
func (r *REPL) readMessage() (string, error) {
	r.composer.Reset()
	prompt := primaryPrompt
	for {
		line, err := r.Reader.Prompt(PromptStyle.Render(prompt))
		if err != nil {
			return "", err
		}
		if strings.HasSuffix(line, `\`) {
			r.composer.Append(strings.TrimSuffix(line, `\`))
			r.composer.HandleEnter(true, false)
			prompt = continuationPrompt
			continue
		}
		r.composer.Append(line)
		return r.composer.Value(), nil
	}
}

// Run loops until EOF, ctrl+c or /quit.
func (r *REPL) Run(ctx context.Context) error {
	if r.composer == nil {
		r.composer = composer.New()
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		input, err := r.readMessage()
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.Out)
				return nil
			}
			return err
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "/quit", "/exit", "/q":
			return nil
		}

		if cmd, ok := chat.ParseCommand(input); ok {
			r.runCommand(cmd)
			continue
		}
		if rest, ok := strings.CutPrefix(strings.TrimSpace(input), "/upload "); ok {
			r.upload(ctx, []string{strings.Trim(strings.TrimSpace(rest), `"'`)})
			continue
		}
		// A file dragged onto the terminal arrives as its path.
		if paths := upload.DroppedPaths(input); paths != nil {
			r.upload(ctx, paths)
			continue
		}

		text, ok := r.composer.Submit(r.Store.Busy(session.OpChat))
		if !ok {
			continue
		}
		if err := r.Store.SubmitMessage(ctx, text); err != nil {
			fmt.Fprintf(r.Out, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		}
	}
}

func (r *REPL) upload(ctx context.Context, paths []string) {
	r.Uploader.DropZone().Arm()
	err := r.Uploader.Drop(ctx, paths)
	var rej *upload.RejectionError
	switch {
	case err == nil, errors.As(err, &rej):
		// Rejections are reported by the alert.
	default:
		fmt.Fprintf(r.Out, "%s %v\n", ErrorStyle.Render("[Error]"), err)
	}
}

func (r *REPL) runCommand(cmd chat.Command) {
	switch cmd.Name {
	case chat.CommandExport:
		format, path := chat.ExportArgs(cmd.Args)
		written, err := chat.Export(r.Store, format, path, r.ExportDir)
		if err != nil {
			fmt.Fprintf(r.Out, "%s %v\n", ErrorStyle.Render("[Error]"), err)
			return
		}
		fmt.Fprintln(r.Out, SuccessStyle.Render("Exported to "+written))
	case chat.CommandDetach:
		if r.Store.ClearFileContext() {
			fmt.Fprintln(r.Out, DimStyle.Render("File context cleared"))
		} else {
			fmt.Fprintln(r.Out, DimStyle.Render("No file attached"))
		}
	case chat.CommandCountry:
		country := strings.Join(cmd.Args, " ")
		r.Store.SetCountry(country)
		if country == "" {
			fmt.Fprintln(r.Out, DimStyle.Render("Country cleared"))
		} else {
			fmt.Fprintln(r.Out, DimStyle.Render("Country set to "+country))
		}
	case chat.CommandHelp:
		fmt.Fprintln(r.Out, chat.CommandHelpText)
		fmt.Fprintln(r.Out, "/upload <path>                 upload a document")
		fmt.Fprintln(r.Out, "/quit                          leave")
		fmt.Fprintln(r.Out, `end a line with \ to continue the message`)
	}
}

// =============================================================================
// COMMAND HANDLER
// =============================================================================

// HandleChatCommand runs the line-mode REPL.
func HandleChatCommand(args Args) error {
	app, err := NewApp(args, true)
	if err != nil {
		return err
	}
	defer app.Close()

	out := os.Stdout
	p := newPrinter(out, app.Config)
	app.Store.SetListener(p.listen)

	uploader := upload.NewUploader(app.Store, func(msg string) {
		fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle.Render("⚠"), msg)
	}, upload.WithLogger(app.Logger))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	if app.Config.Upload.DropDir != "" {
		w, err := upload.NewWatcher(app.Config.Upload.DropDir, app.Config.Upload.DropWindow(), uploader,
			upload.WithWatcherLogger(app.Logger))
		if err != nil {
			return &CommandError{Command: "chat", Action: "watch drop folder", Err: err}
		}
		if err := w.Start(ctx); err != nil {
			return &CommandError{Command: "chat", Action: "watch drop folder", Err: err}
		}
		defer w.Close()
		fmt.Fprintln(out, DimStyle.Render("Watching "+w.Dir()+" for dropped files"))
	}

	fmt.Fprintln(out, TitleStyle.Render("AlgaeVerse")+" "+DimStyle.Render("Smart Algae Farming System"))
	fmt.Fprintln(out, DimStyle.Render(`Type /help for commands. End a line with \ to continue it.`))
	for _, msg := range app.Store.Messages() {
		p.message(msg)
	}

	reader := NewChatCLI()
	defer reader.Close()

	repl := &REPL{
		Store:    app.Store,
		Uploader: uploader,
		Reader:   reader,
		Out:      out,
		Logger:   app.Logger,
	}
	return repl.Run(ctx)
}
