// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jeranaias/algaeverse-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Country   string `yaml:"country,omitempty"`
	File      string `yaml:"file,omitempty"`
	Messages  int    `yaml:"messages"`
	Started   string `yaml:"started"`
	Exported  string `yaml:"exported"`
	Generator string `yaml:"generator"`
}

// Export implements Exporter.
func (e *MarkdownExporter) Export(t *Transcript) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	fm := frontMatter{
		Title:     t.Title,
		Country:   t.Country,
		Messages:  len(t.Messages),
		Started:   t.StartedAt.Format(time.RFC3339),
		Exported:  t.ExportedAt.Format(time.RFC3339),
		Generator: "algaeverse-tui",
	}
	if t.FileContext != nil {
		fm.File = t.FileContext.FileName
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(header)
	sb.WriteString("---\n\n")
	sb.WriteString(e.body(t))
	return []byte(sb.String()), nil
}

// body renders everything below the front matter. The HTML exporter feeds
// it to goldmark.
func (e *MarkdownExporter) body(t *Transcript) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(t.Title))
	fmt.Fprintf(&sb, "- **Started**: %s\n", formatTimestamp(t.StartedAt))
	if t.Country != "" {
		fmt.Fprintf(&sb, "- **Target Country**: %s\n", escapeMarkdown(t.Country))
	}
	if t.FileContext != nil {
		fmt.Fprintf(&sb, "- **Attached File**: %s\n", escapeMarkdown(t.FileContext.FileName))
	}
	sb.WriteString("\n---\n\n")

	for i, msg := range t.Messages {
		label := msg.Sender.DisplayName()
		if e.options.IncludeTimestamps {
			fmt.Fprintf(&sb, "### %s <sub>%s</sub>\n\n", label, formatShortTimestamp(msg.Timestamp))
		} else {
			fmt.Fprintf(&sb, "### %s\n\n", label)
		}

		if msg.HasCurrentData {
			sb.WriteString("*Current Market Data*\n\n")
		}
		sb.WriteString(formatContent(msg))
		sb.WriteString("\n\n")

		if i < len(t.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "*Exported from AlgaeVerse on %s*\n", formatTimestamp(t.ExportedAt))
	return sb.String()
}

// FileExtension implements Exporter.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType implements Exporter.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// formatContent keeps proposals as the markdown the backend produced.
// Other messages are plain text, so line breaks are made hard.
func formatContent(msg model.Message) string {
	text := strings.TrimRight(msg.Text, "\n")
	switch {
	case msg.IsProposal():
		return text
	case msg.Kind == model.KindFile:
		return "> " + escapeMarkdown(text)
	default:
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = escapeMarkdown(line)
		}
		return strings.Join(lines, "  \n")
	}
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"<", "&lt;",
	">", "&gt;",
)

// escapeMarkdown escapes characters with inline meaning. Bullets such as
// "•" pass through untouched.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
