// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
)

// Header texts.
const (
	HeaderTitle    = "AlgaeVerse"
	HeaderSubtitle = "Smart Algae Farming System"
	BadgePowered   = "Powered by OpenAI"
	BadgeReady     = "AI Ready"
)

// Header is the brand bar.
type Header struct {
	Width int
	theme *styles.Theme
}

// NewHeader creates a header.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{Width: 80, theme: theme}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the two-line header.
func (h *Header) View() string {
	width := maxInt(h.Width, 40)
	t := h.theme

	left := t.HeaderTitle.Render("⚡ " + HeaderTitle)
	right := t.HeaderBadge.Render(BadgePowered) + "  " +
		t.ReadyDot.Render("●") + " " + t.HeaderBadge.Render(BadgeReady)

	inner := width - t.Header.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	var top string
	if gap >= 2 {
		top = left + strings.Repeat(" ", gap) + right
	} else {
		// Narrow terminals drop the badges.
		top = left
	}
	sub := t.HeaderSubtitle.Render("   " + HeaderSubtitle)

	return t.Header.Width(width).Render(top + "\n" + sub)
}

// Hero texts shown above the conversation.
const (
	HeroTitle = "AI-Powered Investment Proposals"
	HeroBody  = "Generate professional investment proposals for the revolutionary AlgaeVerse smart algae farming system. Transform urban spaces into sustainable cooling solutions."
)

// FeatureCard is one of the landing feature blurbs.
type FeatureCard struct {
	Title string
	Body  string
}

// FeatureCards are shown below the hero on wide terminals.
var FeatureCards = []FeatureCard{
	{"AI-Powered Analysis", "Advanced AI analyzes your requirements and generates comprehensive investment proposals."},
	{"File Upload Support", "Upload PDFs, DOCX files, and images to provide additional context for your proposals."},
	{"Cost Analysis", "Get detailed cost estimates, ROI projections, and financial analysis for your investment."},
}

// Hero renders the landing text. Feature cards are laid out side by side
// when they fit and omitted otherwise.
func Hero(theme *styles.Theme, width int) string {
	width = maxInt(width, 40)
	title := theme.Hero.Width(width).Render(HeroTitle)
	body := theme.HeroText.Width(width).Render(HeroBody)

	cardWidth := (width - 4) / len(FeatureCards)
	if cardWidth < 24 {
		return title + "\n" + body
	}

	cards := make([]string, len(FeatureCards))
	for i, c := range FeatureCards {
		cards[i] = theme.InputBox.Width(cardWidth - 2).Render(
			theme.FieldLabel.Render(c.Title) + "\n" + theme.HeroText.Align(lipgloss.Left).Render(c.Body))
	}
	return title + "\n" + body + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
