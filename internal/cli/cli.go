// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the algaeverse command line and implements the
// non-TUI commands: the line REPL, one-shot ask, upload and config.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information, overridden at build time.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command is the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdAsk
	CmdUpload
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdChat:
		return "chat"
	case CmdAsk:
		return "ask"
	case CmdUpload:
		return "upload"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string
	BaseURL    string
	Country    string
	NoTUI      bool
	Verbose    bool

	// Command-specific
	Query      string
	File       string
	Subcommand string

	// Raw args remaining after flag parsing.
	Raw []string
}

const usageText = `algaeverse - terminal assistant for the AlgaeVerse smart algae farming system

Usage:
  algaeverse                          Start the chat interface (default)
  algaeverse chat                     Line-mode chat (no full-screen UI)
  algaeverse ask "question"           Ask a single question
      --country NAME                  Target country for the answer
      --file PATH                     Upload a document first and ask about it
  algaeverse upload PATH              Upload a document and print the summary
  algaeverse config [show|path|init]  Show, locate or create the config file
  algaeverse version                  Show version information
  algaeverse help                     Show this help

Global flags:
  --config PATH      Use a specific config file (.toml, .json, .yaml)
  --base-url URL     Override the backend base URL
  --country NAME     Target country for location-specific proposals
  --no-tui           Use line mode even on a terminal
  -v, --verbose      Debug logging

Chat interface keys:
  enter send · alt+enter newline · tab country · ctrl+o upload
  ctrl+x detach file · ctrl+e export · ctrl+c quit

Chat commands (interface and line mode):
  /export [md|json|html] [path]   Save the conversation
  /detach                         Forget the uploaded file
  /country NAME                   Set the target country

Files:
  Accepted uploads: PDF, DOCX, JPEG and PNG. Drag a file onto the terminal
  or set upload.drop_dir in the config to watch a folder.

Config:
  ~/.algaeverse/config.toml (or config.json / config.yaml)
  Environment: ALGAEVERSE_BASE_URL, ALGAEVERSE_COUNTRY, ALGAEVERSE_TIMEOUT,
  ALGAEVERSE_DROP_DIR, ALGAEVERSE_THEME, ALGAEVERSE_LOG_LEVEL
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("algaeverse %s\n", Version)
	fmt.Printf("  Commit: %s\n", GitCommit)
	fmt.Printf("  Built:  %s\n", BuildDate)
	fmt.Printf("  Go:     %s\n", runtime.Version())
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses args, which exclude the program name.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	first := remaining[0]
	cmd := strings.ToLower(first)
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args
	case "chat", "repl":
		return CmdChat, args
	case "ask", "a":
		parseAskArgs(&args, remaining)
		return CmdAsk, args
	case "upload", "up":
		if len(remaining) > 0 {
			args.File = strings.Join(remaining, " ")
		}
		return CmdUpload, args
	case "config", "cfg":
		if len(remaining) > 0 {
			args.Subcommand = strings.ToLower(remaining[0])
		}
		return CmdConfig, args
	case "version", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		// Anything else is a one-shot question.
		args.Raw = append([]string{first}, remaining...)
		parseAskArgs(&args, args.Raw)
		return CmdAsk, args
	}
}

// parseGlobalFlags extracts global flags and returns the remaining args.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "-v", "--verbose":
			args.Verbose = true
		case "--no-tui":
			args.NoTUI = true
		case "--config", "-c":
			if i+1 < len(argv) {
				i++
				args.ConfigPath = argv[i]
			}
		case "--base-url":
			if i+1 < len(argv) {
				i++
				args.BaseURL = argv[i]
			}
		case "--country":
			if i+1 < len(argv) {
				i++
				args.Country = argv[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--config="):
				args.ConfigPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "--base-url="):
				args.BaseURL = strings.TrimPrefix(arg, "--base-url=")
			case strings.HasPrefix(arg, "--country="):
				args.Country = strings.TrimPrefix(arg, "--country=")
			default:
				remaining = append(remaining, arg)
			}
		}
	}
	return remaining, args
}

// parseAskArgs collects the question and --file.
func parseAskArgs(args *Args, remaining []string) {
	var query []string
	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]
		switch {
		case arg == "-f" || arg == "--file":
			if i+1 < len(remaining) {
				i++
				args.File = remaining[i]
			}
		case strings.HasPrefix(arg, "--file="):
			args.File = strings.TrimPrefix(arg, "--file=")
		case arg == "--":
			query = append(query, remaining[i+1:]...)
			i = len(remaining)
		default:
			query = append(query, arg)
		}
	}
	args.Query = strings.Join(query, " ")
}
