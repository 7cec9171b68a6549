// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(styles.ModeLight)
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeader_View(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(100)
	view := h.View()

	for _, want := range []string{HeaderTitle, HeaderSubtitle, BadgePowered, BadgeReady} {
		if !strings.Contains(view, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestHeader_NarrowDropsBadges(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(30)
	view := h.View()

	if !strings.Contains(view, HeaderTitle) {
		t.Error("narrow header should keep the title")
	}
	if strings.Contains(view, BadgePowered) {
		t.Error("narrow header should drop the badges")
	}
}

func TestHero(t *testing.T) {
	wide := Hero(testTheme(), 120)
	if !strings.Contains(wide, HeroTitle) {
		t.Error("hero missing title")
	}
	for _, c := range FeatureCards {
		if !strings.Contains(wide, c.Title) {
			t.Errorf("wide hero missing card %q", c.Title)
		}
	}

	narrow := Hero(testTheme(), 50)
	if strings.Contains(narrow, FeatureCards[0].Title) {
		t.Error("narrow hero should omit the cards")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessageBubble_Alignment(t *testing.T) {
	theme := testTheme()
	width := 60

	user := NewMessageBubble(model.NewUserMessage("hi"), theme, nil)
	user.Width = width
	bot := NewMessageBubble(model.NewBotMessage("hello", model.KindNone), theme, nil)
	bot.Width = width

	userLines := strings.Split(user.View(), "\n")
	if !strings.HasPrefix(userLines[0], " ") {
		t.Error("user messages should be right aligned")
	}
	botLines := strings.Split(bot.View(), "\n")
	if strings.HasPrefix(botLines[0], " ") {
		t.Error("bot messages should be left aligned")
	}
	for _, l := range userLines {
		if lipgloss.Width(l) > width {
			t.Errorf("line wider than %d: %q", width, l)
		}
	}
}

func TestMessageBubble_Badges(t *testing.T) {
	theme := testTheme()

	reply := NewMessageBubble(model.NewProposalMessage("**Plan**", true), theme, NewMarkdownRenderer(false, false))
	view := reply.View()
	if !strings.Contains(view, DataBadgeText) {
		t.Error("current data replies should carry the badge")
	}
	if !strings.Contains(view, "AlgaeVerse") {
		t.Error("bot sender label missing")
	}

	plain := NewMessageBubble(model.NewProposalMessage("Plan", false), theme, nil)
	if strings.Contains(plain.View(), DataBadgeText) {
		t.Error("badge shown without current data")
	}

	file := NewMessageBubble(model.NewMessage(model.SenderUser, "File uploaded: a.pdf", model.KindFile), theme, nil)
	if !strings.Contains(file.View(), "File uploaded: a.pdf") {
		t.Error("file message text missing")
	}
}

func TestMarkdownRenderer_Disabled(t *testing.T) {
	r := NewMarkdownRenderer(false, true)
	if got := r.Render("# Title", 40); got != "# Title" {
		t.Errorf("disabled renderer changed text: %q", got)
	}

	var nilRenderer *MarkdownRenderer
	if got := nilRenderer.Render("x", 40); got != "x" {
		t.Errorf("nil renderer changed text: %q", got)
	}
}

func TestMarkdownRenderer_Enabled(t *testing.T) {
	r := NewMarkdownRenderer(true, false)
	got := r.Render("# Cost Analysis\n\nSome **bold** text", 60)
	if !strings.Contains(got, "Cost Analysis") {
		t.Errorf("rendered markdown lost heading text: %q", got)
	}
	if strings.Contains(got, "**bold**") {
		t.Error("emphasis markers should be rendered away")
	}
}

// =============================================================================
// THINKING PANEL TESTS
// =============================================================================

func TestThinkingPanel_Empty(t *testing.T) {
	p := NewThinkingPanel(testTheme())
	if p.View() != "" {
		t.Error("panel without steps should render nothing")
	}
}

func TestThinkingPanel_View(t *testing.T) {
	steps := thinking.DefaultPlanner().Plan("hello", "")
	steps[0].Completed = true
	steps[1].Completed = true

	p := NewThinkingPanel(testTheme())
	p.Width = 90
	p.Steps = steps
	p.Spinner = "⣾"
	view := p.View()

	for _, want := range []string{ThinkingTitle, "2 of 6 steps completed", "33% complete", steps[0].Text, steps[5].Text, "✓"} {
		if !strings.Contains(view, want) {
			t.Errorf("panel missing %q", want)
		}
	}
	if !strings.Contains(view, "⣾") {
		t.Error("spinner frame should mark the current step")
	}
}

func TestThinkingPanel_Descriptions(t *testing.T) {
	steps := thinking.DefaultPlanner().Plan("hello", "")
	desc := thinking.Describe(steps[0].Text)

	p := NewThinkingPanel(testTheme())
	p.Width = 120
	p.Steps = steps
	if !strings.Contains(p.View(), desc[:20]) {
		t.Error("current step should show its description")
	}

	p.ShowDescriptions = false
	if strings.Contains(p.View(), desc[:20]) {
		t.Error("descriptions can be turned off")
	}
}

// =============================================================================
// UPLOAD LINE AND ALERT TESTS
// =============================================================================

func TestUploadLine(t *testing.T) {
	u := NewUploadLine(testTheme())
	if !strings.Contains(u.View(), "Upload file") || !strings.Contains(u.View(), "PDF, DOCX, or images") {
		t.Error("idle line should show the upload label and hint")
	}

	u.Armed = true
	if !strings.Contains(u.View(), "Drop file here") {
		t.Error("armed line should invite the drop")
	}

	u.Armed = false
	u.Attached = "site.pdf"
	if !strings.Contains(u.View(), "site.pdf") {
		t.Error("attached file name missing")
	}
}

func TestAlert_View(t *testing.T) {
	msg := "Please select a valid file type (PDF, DOCX, or image)"
	view := NewAlert(msg, testTheme()).View(100, 20)
	if !strings.Contains(view, msg) {
		t.Error("alert message missing")
	}
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Errorf("alert should fill the area height, got %d lines", got)
	}
}
