// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/session"
)

func sampleTranscript() *Transcript {
	start := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	welcome := model.NewBotMessage("Hi! I'm your AlgaeVerse assistant.", model.KindNone)
	welcome.Timestamp = start
	file := model.NewMessage(model.SenderUser, "File uploaded: site plan.pdf", model.KindFile)
	question := model.NewUserMessage("What would a <rooftop> unit cost?\nIn *Malaysia*")
	reply := model.NewProposalMessage("## Cost Analysis\n\n| Item | Estimate |\n|---|---|\n| Module | $18,000 |\n\n<script>alert(1)</script>", true)

	snap := session.Snapshot{
		Messages:    []model.Message{welcome, file, question, reply},
		Country:     " Malaysia ",
		FileContext: &model.FileContext{FileName: "site plan.pdf", ExtractedText: "x", FilePath: "uploads/a"},
	}
	t := FromSnapshot(snap)
	t.ExportedAt = start.Add(time.Hour)
	return t
}

func TestFromSnapshot(t *testing.T) {
	tr := sampleTranscript()
	assert.Equal(t, DefaultTitle, tr.Title)
	assert.Equal(t, "Malaysia", tr.Country)
	assert.Equal(t, tr.Messages[0].Timestamp, tr.StartedAt)
	require.NotNil(t, tr.FileContext)
	assert.Len(t, tr.Messages, 4)
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"", ".md"},
		{"md", ".md"},
		{"Markdown", ".md"},
		{"json", ".json"},
		{".html", ".html"},
	}
	for _, tt := range tests {
		exp, err := ForFormat(tt.format, nil)
		require.NoError(t, err, tt.format)
		assert.Equal(t, tt.ext, exp.FileExtension())
	}

	_, err := ForFormat("pdf", nil)
	assert.Error(t, err)
}

func TestExporters_RejectEmpty(t *testing.T) {
	for _, format := range Formats {
		exp, err := ForFormat(format, nil)
		require.NoError(t, err)
		_, err = exp.Export(&Transcript{})
		assert.ErrorIs(t, err, ErrEmptyTranscript, format)
		_, err = exp.Export(nil)
		assert.Error(t, err, format)
	}
}

func TestMarkdownExport(t *testing.T) {
	out, err := NewMarkdownExporter(nil).Export(sampleTranscript())
	require.NoError(t, err)
	md := string(out)

	require.True(t, strings.HasPrefix(md, "---\n"))
	parts := strings.SplitN(md, "---\n", 3)
	require.Len(t, parts, 3)

	var fm frontMatter
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &fm))
	assert.Equal(t, DefaultTitle, fm.Title)
	assert.Equal(t, "Malaysia", fm.Country)
	assert.Equal(t, "site plan.pdf", fm.File)
	assert.Equal(t, 4, fm.Messages)

	assert.Contains(t, md, "### AlgaeVerse <sub>09:30:00</sub>")
	assert.Contains(t, md, "### You")
	assert.Contains(t, md, "> File uploaded: site plan.pdf")
	assert.Contains(t, md, `What would a &lt;rooftop&gt; unit cost?  `+"\n"+`In \*Malaysia\*`)
	assert.Contains(t, md, "*Current Market Data*")
	assert.Contains(t, md, "| Module | $18,000 |", "proposals keep their markdown")
}

func TestMarkdownExport_NoTimestamps(t *testing.T) {
	out, err := NewMarkdownExporter(&Options{}).Export(sampleTranscript())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<sub>")
}

func TestJSONExport(t *testing.T) {
	out, err := NewJSONExporter(nil).Export(sampleTranscript())
	require.NoError(t, err)

	var decoded struct {
		Country  string `json:"userCountry"`
		FileData struct {
			FileName string `json:"fileName"`
		} `json:"fileData"`
		Messages []struct {
			Text           string `json:"text"`
			Sender         string `json:"sender"`
			Type           string `json:"type"`
			HasCurrentData bool   `json:"hasCurrentData"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Malaysia", decoded.Country)
	assert.Equal(t, "site plan.pdf", decoded.FileData.FileName)
	require.Len(t, decoded.Messages, 4)
	assert.Equal(t, "file", decoded.Messages[1].Type)
	assert.Equal(t, "proposal", decoded.Messages[3].Type)
	assert.True(t, decoded.Messages[3].HasCurrentData)
	assert.Equal(t, "bot", decoded.Messages[0].Sender)
}

func TestHTMLExport(t *testing.T) {
	out, err := NewHTMLExporter(&Options{IncludeTimestamps: true, Theme: "dark"}).Export(sampleTranscript())
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, `<body class="dark-theme">`)
	assert.Contains(t, page, "<h2>Cost Analysis</h2>")
	assert.Contains(t, page, "<table>", "GFM tables are enabled")
	assert.Contains(t, page, "Current Market Data")
	assert.Contains(t, page, "Target Country: Malaysia")
	assert.Contains(t, page, "&lt;rooftop&gt;")
	assert.NotContains(t, page, "<script>alert(1)</script>", "raw HTML from replies is dropped")
	assert.Contains(t, page, `class="message user-message"`)
	assert.Contains(t, page, `class="message bot-message"`)
}

func TestToFile_GeneratedName(t *testing.T) {
	dir := t.TempDir()
	tr := sampleTranscript()

	path, err := ToFile(tr, NewMarkdownExporter(nil), &Options{OutputDir: dir})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "algaeverse_What_would_a_-rooftop-_unit_cost"), base)
	assert.True(t, strings.HasSuffix(base, "_20250314_103000.md"), base)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# AlgaeVerse Conversation")
}

func TestToFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chat.json")
	got, err := ToFile(sampleTranscript(), NewJSONExporter(nil), &Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.FileExists(t, path)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "conversation", sanitizeFilename("   "))
	assert.Equal(t, "a-b-c_d", sanitizeFilename("a/b:c d"))
	assert.Len(t, []rune(sanitizeFilename(strings.Repeat("藻", 100))), 40)
}
