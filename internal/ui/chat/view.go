// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/algaeverse-tui/internal/ui/components"
	"github.com/jeranaias/algaeverse-tui/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.alert != nil {
		return m.alert.View(m.width, m.height)
	}

	var main string
	if m.showPicker {
		main = m.pickerView()
	} else {
		main = m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		main,
		m.bottomView(),
	)
}

// =============================================================================
// LAYOUT
// =============================================================================

// layout sizes every widget for the current window and re-renders the
// conversation.
func (m *Model) layout() {
	width := m.width
	t := m.theme

	m.header.SetWidth(width)
	m.uploadLine.Width = width
	m.thinking.Width = width - 2
	m.help.Width = width
	m.input.SetWidth(width - t.InputBox.GetHorizontalFrameSize())
	m.country.Width = width - t.InputBox.GetHorizontalFrameSize() - lipgloss.Width(CountryLabel) - 3

	used := lipgloss.Height(m.header.View()) + lipgloss.Height(m.bottomView())
	height := m.height - used
	if height < 3 {
		height = 3
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.picker.Height = maxInt(height-t.PickerBox.GetVerticalFrameSize()-2, 3)

	m.refreshViewport(false)
}

// refreshViewport rebuilds the viewport content. The view follows the
// conversation when it was already at the bottom or when follow is set.
func (m *Model) refreshViewport(follow bool) {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.conversationView())
	if follow || atBottom {
		m.viewport.GotoBottom()
	}
}

// =============================================================================
// RENDERING
// =============================================================================

func (m *Model) conversationView() string {
	width := m.viewport.Width
	if m.renderedCount != len(m.snap.Messages) || m.renderedWidth != width || m.rendered == "" {
		m.rendered = m.renderMessages(width)
		m.renderedCount = len(m.snap.Messages)
		m.renderedWidth = width
	}

	var sb strings.Builder
	sb.WriteString(m.rendered)

	if m.snap.ChatInFlight {
		sb.WriteString("\n\n")
		if len(m.snap.Steps) > 0 {
			m.thinking.Steps = m.snap.Steps
			m.thinking.Spinner = m.spinner.View()
			sb.WriteString(m.thinking.View())
		} else {
			sb.WriteString(m.spinner.View() + " " + m.theme.ProgressText.Render(components.ThinkingTitle))
		}
	}
	return sb.String()
}

func (m *Model) renderMessages(width int) string {
	parts := make([]string, 0, len(m.snap.Messages)+1)
	parts = append(parts, components.Hero(m.theme, width-2))
	for _, msg := range m.snap.Messages {
		bubble := components.NewMessageBubble(msg, m.theme, m.markdown)
		bubble.Width = width
		parts = append(parts, bubble.View())
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) bottomView() string {
	t := m.theme

	box := t.InputBox
	if m.focus == FocusComposer {
		box = t.InputBoxFocused
	}
	composerView := box.Render(m.input.View())

	countryBox := t.InputBox
	if m.focus == FocusCountry {
		countryBox = t.InputBoxFocused
	}
	countryView := countryBox.Render(t.FieldLabel.Render(CountryLabel) + " 🌍 " + m.country.View())

	lines := []string{
		m.uploadLine.View(),
		composerView,
		countryView,
		m.statusView(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) statusView() string {
	t := m.theme
	text := m.status
	style := t.StatusBar
	if m.statusErr {
		style = t.StatusError
	}
	if text == "" {
		switch {
		case m.snap.UploadInFlight:
			text = "Uploading file..."
		case m.snap.ChatInFlight:
			text = "Waiting for the assistant..."
		default:
			text = "Ready"
		}
	}
	return style.Render(util.TruncateWidth(text, maxInt(m.width-2, 10)))
}

func (m Model) pickerView() string {
	t := m.theme
	title := t.FieldLabel.Render("Select a file") + "  " +
		t.UploadHint.Render(m.picker.CurrentDirectory+" · esc to cancel")
	return t.PickerBox.Width(maxInt(m.width-t.PickerBox.GetHorizontalFrameSize(), 20)).
		Render(title + "\n" + m.picker.View())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
