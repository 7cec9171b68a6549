// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/algaeverse-tui/internal/config"
	"github.com/jeranaias/algaeverse-tui/internal/remote"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitConfigError  = 3
	ExitNetworkError = 5
	ExitFileError    = 7
	ExitTimeoutError = 8
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError is a failed command with context.
type CommandError struct {
	Command string
	Action  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Command, e.Action, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError reports bad arguments.
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage != "" {
		return e.Message + "\nUsage: " + e.Usage
	}
	return e.Message
}

// ErrMissingArgument builds a UsageError for a missing positional argument.
func ErrMissingArgument(name, usage string) error {
	return &UsageError{Message: "missing required argument: " + name, Usage: usage}
}

// GetExitCode maps an error to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}
	var cfgErrs config.ValidationErrors
	if errors.As(err, &cfgErrs) {
		return ExitConfigError
	}
	var rej *upload.RejectionError
	if errors.As(err, &rej) || errors.Is(err, upload.ErrNotRegularFile) || errors.Is(err, os.ErrNotExist) {
		return ExitFileError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExitTimeoutError
	}
	if errors.Is(err, remote.ErrTransport) || errors.Is(err, remote.ErrMalformedReply) ||
		errors.Is(err, remote.ErrReplyTooLarge) || errors.Is(err, remote.ErrRejected) {
		return ExitNetworkError
	}
	return ExitGeneralError
}

// DisplayError prints err to stderr.
func DisplayError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), err)
}

// HandleErrorAndExit prints err and exits with its exit code.
func HandleErrorAndExit(err error) {
	if err == nil {
		return
	}
	DisplayError(err)
	os.Exit(GetExitCode(err))
}
