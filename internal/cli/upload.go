// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
	"github.com/jeranaias/algaeverse-tui/internal/util"
)

// previewRunes bounds the extracted text shown after an upload.
const previewRunes = 400

// HandleUploadCommand uploads one document and prints what the backend
// extracted from it.
func HandleUploadCommand(args Args) error {
	if args.File == "" {
		return ErrMissingArgument("path", "algaeverse upload PATH")
	}

	app, err := NewApp(args, true)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return uploadFile(ctx, app.Store, args.File, os.Stdout, os.Stderr)
}

func uploadFile(ctx context.Context, store *session.Store, path string, out, alerts io.Writer) error {
	uploader := upload.NewUploader(store, func(msg string) {
		fmt.Fprintln(alerts, WarningStyle.Render("⚠ "+msg))
	})
	if err := uploader.Select(ctx, path); err != nil {
		return &CommandError{Command: "upload", Action: path, Err: err}
	}

	fc := store.FileContext()
	if fc == nil {
		fmt.Fprintln(out, session.UploadErrorText)
		return &CommandError{Command: "upload", Action: path, Err: ErrAssistantFailed}
	}

	fmt.Fprintln(out, SuccessStyle.Render("✓ "+session.FileUploadedText(fc.FileName)))
	fmt.Fprintf(out, "%s %s\n", RenderLabel("Stored as"), fc.FilePath)
	if fc.ExtractedText != "" {
		runes := []rune(fc.ExtractedText)
		preview := fc.ExtractedText
		if len(runes) > previewRunes {
			preview = string(runes[:previewRunes]) + "..."
		}
		fmt.Fprintf(out, "%s %d characters\n", RenderLabel("Extracted"), len(runes))
		fmt.Fprintln(out, RenderSeparator(util.StringWidth(fc.FilePath)+20))
		fmt.Fprintln(out, preview)
	}
	return nil
}
