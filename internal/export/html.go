// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/jeranaias/algaeverse-tui/internal/model"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports transcripts to a standalone HTML page. Message
// bodies are converted with goldmark in its default safe mode, so raw
// HTML inside a reply is dropped.
type HTMLExporter struct {
	options *Options
	md      goldmark.Markdown
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{
		options: opts,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

type htmlMessage struct {
	Class          string
	Label          string
	Time           string
	HasCurrentData bool
	Body           template.HTML
}

type htmlPage struct {
	Title    string
	Theme    string
	Started  string
	Exported string
	Country  string
	File     string
	Messages []htmlMessage
}

// Export implements Exporter.
func (e *HTMLExporter) Export(t *Transcript) ([]byte, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	page := htmlPage{
		Title:    t.Title,
		Theme:    e.theme(),
		Started:  formatTimestamp(t.StartedAt),
		Exported: t.ExportedAt.Format("January 2, 2006 at 3:04 PM"),
		Country:  t.Country,
	}
	if t.FileContext != nil {
		page.File = t.FileContext.FileName
	}

	for _, msg := range t.Messages {
		body, err := e.render(msg)
		if err != nil {
			return nil, fmt.Errorf("render message %s: %w", msg.ID, err)
		}
		hm := htmlMessage{
			Class:          string(msg.Sender) + "-message",
			Label:          msg.Sender.DisplayName(),
			HasCurrentData: msg.HasCurrentData,
			Body:           body,
		}
		if e.options.IncludeTimestamps {
			hm.Time = formatShortTimestamp(msg.Timestamp)
		}
		page.Messages = append(page.Messages, hm)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *HTMLExporter) render(msg model.Message) (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(formatContent(msg)), &buf); err != nil {
		return "", err
	}
	// goldmark escapes text and omits raw HTML.
	return template.HTML(buf.String()), nil
}

func (e *HTMLExporter) theme() string {
	if e.options.Theme == "dark" {
		return "dark"
	}
	return "light"
}

// FileExtension implements Exporter.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType implements Exporter.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="algaeverse-tui">
    <title>{{.Title}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        .light-theme {
            --bg: #f3f6fb; --panel: #ffffff; --text: #1f2937; --muted: #6b7280;
            --user: #2563eb; --user-text: #ffffff; --bot: #f3f4f6; --accent: #7c3aed; --badge: #16a34a;
        }
        .dark-theme {
            --bg: #111827; --panel: #1f2937; --text: #e5e7eb; --muted: #9ca3af;
            --user: #3b82f6; --user-text: #ffffff; --bot: #374151; --accent: #a78bfa; --badge: #4ade80;
        }
        body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; line-height: 1.6;
               background: var(--bg); color: var(--text); padding: 24px; }
        .container { max-width: 900px; margin: 0 auto; background: var(--panel);
                     border-radius: 16px; overflow: hidden; box-shadow: 0 10px 25px rgba(0,0,0,.1); }
        .header { padding: 24px 32px; background: linear-gradient(90deg, #2563eb, #7c3aed, #4338ca); color: #fff; }
        .header h1 { font-size: 24px; }
        .header p { opacity: .85; font-size: 14px; }
        .metadata { display: flex; flex-wrap: wrap; gap: 16px; margin-top: 12px; font-size: 13px; }
        .conversation { padding: 24px 32px; display: flex; flex-direction: column; gap: 16px; }
        .message { max-width: 80%; padding: 12px 16px; border-radius: 14px; }
        .user-message { align-self: flex-end; background: var(--user); color: var(--user-text); }
        .bot-message { align-self: flex-start; background: var(--bot); }
        .message-header { display: flex; gap: 8px; font-size: 12px; color: inherit; opacity: .8; margin-bottom: 4px; }
        .badge { color: var(--badge); font-weight: 600; }
        .message-body table { border-collapse: collapse; margin: 8px 0; }
        .message-body th, .message-body td { border: 1px solid var(--muted); padding: 4px 8px; }
        .message-body ul, .message-body ol { padding-left: 20px; }
        .message-body h1, .message-body h2, .message-body h3 { margin: 8px 0 4px; color: var(--accent); }
        .message-body blockquote { border-left: 3px solid var(--muted); padding-left: 8px; }
        .footer { padding: 16px 32px; font-size: 12px; color: var(--muted); text-align: center; }
    </style>
</head>
<body class="{{.Theme}}-theme">
    <div class="container">
        <header class="header">
            <h1>AlgaeVerse</h1>
            <p>Smart Algae Farming System</p>
            <div class="metadata">
                <span><strong>{{.Title}}</strong></span>
                <span>Started {{.Started}}</span>
                {{- if .Country}}
                <span>Target Country: {{.Country}}</span>
                {{- end}}
                {{- if .File}}
                <span>File: {{.File}}</span>
                {{- end}}
            </div>
        </header>
        <main class="conversation">
            {{- range .Messages}}
            <div class="message {{.Class}}">
                <div class="message-header">
                    <span class="role-label">{{.Label}}</span>
                    {{- if .Time}}
                    <span class="timestamp">{{.Time}}</span>
                    {{- end}}
                    {{- if .HasCurrentData}}
                    <span class="badge">Current Market Data</span>
                    {{- end}}
                </div>
                <div class="message-body">{{.Body}}</div>
            </div>
            {{- end}}
        </main>
        <footer class="footer">
            <p>Exported from <strong>AlgaeVerse</strong> on {{.Exported}}</p>
        </footer>
    </div>
</body>
</html>
`))
