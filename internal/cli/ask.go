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
	"strings"
	"syscall"

	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// ErrAssistantFailed is returned when the backend could not answer. The
// apology text has already been printed.
var ErrAssistantFailed = errors.New("the assistant could not answer")

// HandleAskCommand answers one question, optionally about an uploaded
// document, and exits.
func HandleAskCommand(args Args) error {
	query := strings.TrimSpace(args.Query)
	if query == "" && !IsTTY() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return &CommandError{Command: "ask", Action: "read stdin", Err: err}
		}
		query = strings.TrimSpace(string(data))
	}
	if query == "" {
		return ErrMissingArgument("question", `algaeverse ask "question" [--country NAME] [--file PATH]`)
	}

	app, err := NewApp(args, true)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := newPrinter(os.Stdout, app.Config)
	app.Store.SetListener(p.listen)
	return ask(ctx, app.Store, query, args.File, os.Stderr)
}

// ask runs an optional upload followed by one chat round trip.
func ask(ctx context.Context, store *session.Store, query, file string, alerts io.Writer) error {
	if file != "" {
		var rejected string
		uploader := upload.NewUploader(store, func(msg string) { rejected = msg })
		if err := uploader.Select(ctx, file); err != nil {
			if rejected != "" {
				fmt.Fprintln(alerts, WarningStyle.Render("⚠ "+rejected))
			}
			return &CommandError{Command: "ask", Action: "upload " + file, Err: err}
		}
		if store.FileContext() == nil {
			return &CommandError{Command: "ask", Action: "upload " + file, Err: ErrAssistantFailed}
		}
	}

	if err := store.SubmitMessage(ctx, query); err != nil {
		return &CommandError{Command: "ask", Err: err}
	}
	return lastReplyError(store)
}

// lastReplyError reports whether the newest bot message is the apology.
func lastReplyError(store *session.Store) error {
	msgs := store.Messages()
	if len(msgs) == 0 {
		return nil
	}
	last := msgs[len(msgs)-1]
	if !last.IsUser() && last.Text == session.ChatErrorText {
		return ErrAssistantFailed
	}
	return nil
}
