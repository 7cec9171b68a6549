// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
)

// Alert is a blocking notice. While shown it takes all key input.
type Alert struct {
	Message string
	theme   *styles.Theme
}

// NewAlert creates an alert for message.
func NewAlert(message string, theme *styles.Theme) *Alert {
	return &Alert{Message: message, theme: theme}
}

// View renders the alert centered in a width x height area.
func (a *Alert) View(width, height int) string {
	t := a.theme
	boxWidth := minInt(maxInt(lipgloss.Width(a.Message)+8, 30), maxInt(width-4, 30))
	box := t.AlertBox.Width(boxWidth).Render(
		t.AlertTitle.Render("⚠ Notice") + "\n\n" +
			a.Message + "\n\n" +
			t.AlertFooter.Render("Press enter to dismiss"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
