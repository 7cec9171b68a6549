// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted from config.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderBadge    lipgloss.Style
	ReadyDot       lipgloss.Style
	Hero           lipgloss.Style
	HeroText       lipgloss.Style

	// ==========================================================================
	// MESSAGES
	// ==========================================================================

	UserBubble  lipgloss.Style
	BotBubble   lipgloss.Style
	SenderLabel lipgloss.Style
	Timestamp   lipgloss.Style
	DataBadge   lipgloss.Style
	FileNote    lipgloss.Style

	// ==========================================================================
	// THINKING PANEL
	// ==========================================================================

	ThinkingBox     lipgloss.Style
	ThinkingTitle   lipgloss.Style
	StepPending     lipgloss.Style
	StepDone        lipgloss.Style
	StepDescription lipgloss.Style
	ProgressText    lipgloss.Style
	Spinner         lipgloss.Style

	// ==========================================================================
	// INPUT AREA
	// ==========================================================================

	InputBox        lipgloss.Style
	InputBoxFocused lipgloss.Style
	FieldLabel      lipgloss.Style
	UploadLine      lipgloss.Style
	UploadArmed     lipgloss.Style
	UploadHint      lipgloss.Style
	FileChip        lipgloss.Style

	// ==========================================================================
	// OVERLAYS AND STATUS
	// ==========================================================================

	AlertBox    lipgloss.Style
	AlertTitle  lipgloss.Style
	AlertFooter lipgloss.Style
	PickerBox   lipgloss.Style
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
}

// NewTheme creates a theme for mode (auto, dark or light). Auto detects the
// terminal background. Forcing a mode also points lipgloss's adaptive colors
// at it.
func NewTheme(mode string) *Theme {
	profile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case ModeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		ColorProfile: profile,
	}
	t.initStyles()
	return t
}

// DefaultTheme auto-detects the background.
func DefaultTheme() *Theme {
	return NewTheme(ModeAuto)
}

func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Indigo).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#BFDBFE"})

	t.HeaderBadge = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#BFDBFE"})

	t.ReadyDot = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.Hero = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Align(lipgloss.Center)

	t.HeroText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Align(lipgloss.Center)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 1)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(BotBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 1)

	t.SenderLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DataBadge = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	t.FileNote = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Italic(true).
		Padding(0, 1)

	// Thinking panel
	t.ThinkingBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Padding(0, 1)

	t.ThinkingTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.StepPending = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StepDone = lipgloss.NewStyle().
		Foreground(Green)

	t.StepDescription = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.ProgressText = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	// Input area
	t.InputBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputBoxFocused = t.InputBox.
		BorderForeground(Blue)

	t.FieldLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.UploadLine = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.UploadArmed = t.UploadLine.
		BorderForeground(Blue).
		Foreground(Blue).
		Bold(true)

	t.UploadHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.FileChip = lipgloss.NewStyle().
		Foreground(Green)

	// Overlays
	t.AlertBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(Rose).
		Padding(1, 3).
		Align(lipgloss.Center)

	t.AlertTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.AlertFooter = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PickerBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose)
}
