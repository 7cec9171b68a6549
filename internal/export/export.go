// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/util"
)

// ErrEmptyTranscript is returned for a transcript without messages.
var ErrEmptyTranscript = errors.New("transcript has no messages")

// DefaultTitle heads every export.
const DefaultTitle = "AlgaeVerse Conversation"

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the exported view of a conversation.
type Transcript struct {
	Title       string             `json:"title"`
	Country     string             `json:"userCountry,omitempty"`
	FileContext *model.FileContext `json:"fileData,omitempty"`
	Messages    []model.Message    `json:"messages"`
	StartedAt   time.Time          `json:"startedAt"`
	ExportedAt  time.Time          `json:"exportedAt"`
}

// FromSnapshot builds a transcript from the store state. StartedAt is the
// first message's time stamp.
func FromSnapshot(snap session.Snapshot) *Transcript {
	t := &Transcript{
		Title:       DefaultTitle,
		Country:     strings.TrimSpace(snap.Country),
		FileContext: snap.FileContext.Clone(),
		Messages:    append([]model.Message(nil), snap.Messages...),
		ExportedAt:  time.Now(),
	}
	if len(t.Messages) > 0 {
		t.StartedAt = t.Messages[0].Timestamp
	}
	return t
}

func (t *Transcript) validate() error {
	if t == nil {
		return fmt.Errorf("transcript is nil")
	}
	if len(t.Messages) == 0 {
		return ErrEmptyTranscript
	}
	return nil
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders a transcript in one format.
type Exporter interface {
	Export(t *Transcript) ([]byte, error)

	// FileExtension returns the extension including the dot.
	FileExtension() string

	MimeType() string
}

// Options configures export behavior.
type Options struct {
	// OutputDir receives generated file names. Default: current directory.
	OutputDir string

	// Path, when set, is used as is instead of a generated name.
	Path string

	IncludeTimestamps bool

	// Theme for HTML export ("light" or "dark").
	Theme string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:         ".",
		IncludeTimestamps: true,
		Theme:             "light",
	}
}

// Formats lists the accepted format names.
var Formats = []string{"md", "json", "html"}

// ForFormat returns the exporter for a format name. The empty name means
// Markdown.
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "", "md", "markdown":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "html", "htm":
		return NewHTMLExporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// ToFile renders t with exporter and writes it atomically. It returns the
// path written.
func ToFile(t *Transcript, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(t)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	outputPath := opts.Path
	if outputPath == "" {
		dir := opts.OutputDir
		if dir == "" {
			dir = "."
		}
		filename := fmt.Sprintf("algaeverse_%s_%s%s",
			sanitizeFilename(firstUserText(t)),
			t.ExportedAt.Format("20060102_150405"),
			exporter.FileExtension())
		outputPath = filepath.Join(dir, filename)
	}
	outputPath = util.ExpandHome(outputPath)

	if err := util.AtomicWriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return outputPath, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func firstUserText(t *Transcript) string {
	for _, m := range t.Messages {
		if m.IsUser() && m.Kind != model.KindFile {
			return m.Text
		}
	}
	return "conversation"
}

var filenameReplacer = map[rune]rune{
	'/':  '-',
	'\\': '-',
	':':  '-',
	'*':  '-',
	'?':  '-',
	'"':  '-',
	'<':  '-',
	'>':  '-',
	'|':  '-',
	' ':  '_',
	'\t': '_',
	'\n': '_',
	'\r': '_',
}

// sanitizeFilename keeps at most 40 runes and replaces characters that are
// invalid in file names on Windows or Unix.
func sanitizeFilename(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > 40 {
		runes = runes[:40]
	}

	result := make([]rune, 0, len(runes))
	for _, r := range runes {
		if replacement, found := filenameReplacer[r]; found {
			result = append(result, replacement)
		} else if r < 32 || r == 127 {
			result = append(result, '-')
		} else {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "conversation"
	}
	return string(result)
}

func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func formatShortTimestamp(t time.Time) string {
	return t.Format("15:04:05")
}
