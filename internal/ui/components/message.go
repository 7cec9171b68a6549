// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
)

// DataBadgeText marks replies built on live market data.
const DataBadgeText = "Current Market Data"

// MessageBubble renders one message. User messages sit on the right, bot
// messages on the left.
type MessageBubble struct {
	Message  model.Message
	Width    int
	Markdown *MarkdownRenderer
	theme    *styles.Theme
}

// NewMessageBubble creates a bubble for msg.
func NewMessageBubble(msg model.Message, theme *styles.Theme, md *MarkdownRenderer) *MessageBubble {
	return &MessageBubble{
		Message:  msg,
		Width:    80,
		Markdown: md,
		theme:    theme,
	}
}

// View renders the bubble at full Width, aligned by sender.
func (b *MessageBubble) View() string {
	t := b.theme
	msg := b.Message
	width := maxInt(b.Width, 30)
	bubbleWidth := width * 4 / 5

	meta := t.SenderLabel.Render(msg.Sender.DisplayName()) + " " +
		t.Timestamp.Render(msg.Timestamp.Local().Format("15:04"))
	if msg.HasCurrentData {
		meta += "  " + t.DataBadge.Render("● "+DataBadgeText)
	}

	var body string
	switch {
	case msg.IsUser() && msg.Kind == model.KindFile:
		body = t.FileNote.Render("📎 " + msg.Text)
	case msg.IsUser():
		body = t.UserBubble.Width(minInt(lipgloss.Width(msg.Text)+2, bubbleWidth)).Render(msg.Text)
	case msg.IsProposal():
		inner := bubbleWidth - t.BotBubble.GetHorizontalFrameSize()
		body = t.BotBubble.Render(b.Markdown.Render(msg.Text, inner))
	default:
		inner := bubbleWidth - t.BotBubble.GetHorizontalFrameSize()
		body = t.BotBubble.Width(inner).Render(msg.Text)
	}

	block := lipgloss.JoinVertical(alignFor(msg), meta, body)
	return lipgloss.PlaceHorizontal(width, alignFor(msg), block)
}

func alignFor(msg model.Message) lipgloss.Position {
	if msg.IsUser() {
		return lipgloss.Right
	}
	return lipgloss.Left
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
