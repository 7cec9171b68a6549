// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/algaeverse-tui/internal/export"
	"github.com/jeranaias/algaeverse-tui/internal/session"
)

// Command names recognized in the composer and the line REPL.
const (
	CommandExport  = "export"
	CommandDetach  = "detach"
	CommandCountry = "country"
	CommandHelp    = "help"
)

var knownCommands = map[string]bool{
	CommandExport:  true,
	CommandDetach:  true,
	CommandCountry: true,
	CommandHelp:    true,
}

// Command is a parsed slash command.
type Command struct {
	Name string
	Args []string
}

// ParseCommand parses text such as "/export html out.html". Text that does
// not start with a known command name is not a command and is sent to the
// assistant as typed.
func ParseCommand(text string) (Command, bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "/") {
		return Command{}, false
	}
	fields := strings.Fields(trimmed[1:])
	if len(fields) == 0 {
		return Command{}, false
	}
	name := strings.ToLower(fields[0])
	if !knownCommands[name] {
		return Command{}, false
	}
	return Command{Name: name, Args: fields[1:]}, true
}

// CommandHelpText lists the slash commands.
const CommandHelpText = "/export [md|json|html] [path]  save the conversation\n" +
	"/detach                        forget the uploaded file\n" +
	"/country <name>                set the target country\n" +
	"/help                          show this list"

// ExportArgs splits /export arguments into a format and an optional path.
// A single argument that looks like a file name selects the format from
// its extension.
func ExportArgs(args []string) (format, path string) {
	switch len(args) {
	case 0:
		return "md", ""
	case 1:
		if strings.Contains(args[0], ".") {
			ext := args[0][strings.LastIndex(args[0], ".")+1:]
			return ext, args[0]
		}
		return args[0], ""
	default:
		return args[0], strings.Join(args[1:], " ")
	}
}

// Export writes the current conversation and returns the path written.
func Export(store *session.Store, format, path, dir string) (string, error) {
	opts := export.DefaultOptions()
	opts.Path = path
	if dir != "" {
		opts.OutputDir = dir
	}
	exp, err := export.ForFormat(format, opts)
	if err != nil {
		return "", err
	}
	return export.ToFile(export.FromSnapshot(store.Snapshot()), exp, opts)
}

// =============================================================================
// COMMAND EXECUTION
// =============================================================================

func (m *Model) runCommand(cmd Command) tea.Cmd {
	switch cmd.Name {
	case CommandExport:
		format, path := ExportArgs(cmd.Args)
		return m.exportCmd(format, path)
	case CommandDetach:
		return m.detach()
	case CommandCountry:
		country := strings.Join(cmd.Args, " ")
		m.country.SetValue(country)
		m.store.SetCountry(country)
		if strings.TrimSpace(country) == "" {
			return statusCmd("Country cleared", false)
		}
		return statusCmd("Country set to "+country, false)
	case CommandHelp:
		m.alert = nil
		return statusCmd(strings.ReplaceAll(CommandHelpText, "\n", " · "), false)
	}
	return nil
}

func (m *Model) detach() tea.Cmd {
	if m.store.ClearFileContext() {
		return statusCmd("File context cleared", false)
	}
	return statusCmd("No file attached", false)
}

func (m *Model) exportCmd(format, path string) tea.Cmd {
	store, dir := m.store, m.opts.ExportDir
	return func() tea.Msg {
		written, err := Export(store, format, path, dir)
		return ExportDoneMsg{Path: written, Err: err}
	}
}

func (m *Model) submitCmd(text string) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		return SubmitDoneMsg{Err: store.SubmitMessage(ctx, text)}
	}
}

func (m *Model) selectCmd(path string) tea.Cmd {
	ctx, uploader := m.ctx, m.uploader
	return func() tea.Msg {
		return UploadDoneMsg{Err: uploader.Select(ctx, path)}
	}
}

func (m *Model) dropCmd(paths []string) tea.Cmd {
	ctx, uploader := m.ctx, m.uploader
	uploader.DropZone().Arm()
	return func() tea.Msg {
		return UploadDoneMsg{Err: uploader.Drop(ctx, paths)}
	}
}

func statusCmd(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text, Error: isErr}
	}
}

// contextOrBackground keeps commands usable when the model was built
// without a context.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
