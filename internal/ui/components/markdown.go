// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders proposal replies with glamour. The underlying
// renderer is rebuilt only when the wrap width changes.
type MarkdownRenderer struct {
	enabled  bool
	dark     bool
	width    int
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer. When enabled is false, text is
// returned unchanged.
func NewMarkdownRenderer(enabled, dark bool) *MarkdownRenderer {
	return &MarkdownRenderer{enabled: enabled, dark: dark}
}

// Render renders text wrapped to width. Rendering errors fall back to the
// raw text.
func (r *MarkdownRenderer) Render(text string, width int) string {
	if r == nil || !r.enabled {
		return text
	}
	if width < 20 {
		width = 20
	}
	if r.renderer == nil || r.width != width {
		style := "light"
		if r.dark {
			style = "dark"
		}
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		r.renderer = tr
		r.width = width
	}

	out, err := r.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
