// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/algaeverse-tui/internal/thinking"
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
)

// ThinkingTitle heads the panel.
const ThinkingTitle = "AI is thinking..."

var categoryIcons = map[thinking.Category]string{
	thinking.CategoryResearch:   "🔍",
	thinking.CategoryAnalysis:   "📊",
	thinking.CategoryGeneration: "✨",
}

// ThinkingPanel shows the simulated reasoning steps of an outstanding chat.
type ThinkingPanel struct {
	Steps            []thinking.Step
	Width            int
	ShowDescriptions bool
	// Spinner is the current spinner frame, shown next to the first
	// pending step.
	Spinner string

	bar   progress.Model
	theme *styles.Theme
}

// NewThinkingPanel creates a panel.
func NewThinkingPanel(theme *styles.Theme) *ThinkingPanel {
	return &ThinkingPanel{
		Width:            80,
		ShowDescriptions: true,
		bar:              progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:            theme,
	}
}

// View renders the panel. An empty step list renders nothing.
func (p *ThinkingPanel) View() string {
	if len(p.Steps) == 0 {
		return ""
	}
	t := p.theme
	width := maxInt(p.Width, 30)
	inner := width - t.ThinkingBox.GetHorizontalFrameSize()

	var sb strings.Builder
	sb.WriteString(t.ThinkingTitle.Render("🧠 " + ThinkingTitle))
	sb.WriteString("\n")

	prog := thinking.ProgressOf(p.Steps)
	p.bar.Width = inner
	sb.WriteString(p.bar.ViewAs(prog.Fraction()))
	sb.WriteString("\n\n")

	current := firstPending(p.Steps)
	for i, step := range p.Steps {
		sb.WriteString(p.renderStep(step, i == current, inner))
		sb.WriteString("\n")
	}

	footer := prog.StepsText()
	pct := prog.PercentText()
	gap := inner - lipgloss.Width(footer) - lipgloss.Width(pct)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(t.ProgressText.Render(footer + strings.Repeat(" ", gap) + pct))

	return t.ThinkingBox.Width(width - t.ThinkingBox.GetHorizontalBorderSize()).Render(sb.String())
}

func (p *ThinkingPanel) renderStep(step thinking.Step, current bool, width int) string {
	t := p.theme

	icon := categoryIcons[step.Category]
	if icon == "" {
		icon = "•"
	}
	mark := " "
	if step.Completed {
		mark = t.StepDone.Render("✓")
	} else if current && p.Spinner != "" {
		mark = t.Spinner.Render(p.Spinner)
	}

	textStyle := t.StepPending
	if step.Completed {
		textStyle = t.StepDone
	} else {
		textStyle = textStyle.Foreground(styles.CategoryColor(string(step.Category)))
	}

	line := mark + " " + icon + " " + textStyle.Render(step.Text)
	if p.ShowDescriptions && (current || step.Completed) {
		desc := t.StepDescription.Width(maxInt(width-6, 10)).Render(thinking.Describe(step.Text))
		line += "\n" + indent(desc, 6)
	}
	return line
}

func firstPending(steps []thinking.Step) int {
	for i, s := range steps {
		if !s.Completed {
			return i
		}
	}
	return -1
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
