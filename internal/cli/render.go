// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"

	"github.com/jeranaias/algaeverse-tui/internal/config"
	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
	"github.com/jeranaias/algaeverse-tui/internal/ui/components"
)

// printer writes conversation events as plain lines. Store listeners run on
// timer goroutines, so writes are serialized.
type printer struct {
	mu        sync.Mutex
	out       io.Writer
	md        *components.MarkdownRenderer
	width     int
	showSteps bool
}

func newPrinter(out io.Writer, cfg *config.Config) *printer {
	width := cfg.UI.WordWrap
	if term := GetTerminalWidth(); width <= 0 || width > term {
		width = term
	}
	enabled := cfg.UI.RenderMarkdown && ColorsEnabled()
	return &printer{
		out:       out,
		md:        components.NewMarkdownRenderer(enabled, termenv.HasDarkBackground()),
		width:     width,
		showSteps: cfg.UI.ShowDescriptions,
	}
}

// listen is a session.Listener.
func (p *printer) listen(ev session.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Kind {
	case session.EventChatStarted:
		fmt.Fprintln(p.out, DimStyle.Render("🧠 "+components.ThinkingTitle))
	case session.EventStepCompleted:
		if ev.Step < len(ev.Snapshot.Steps) {
			step := ev.Snapshot.Steps[ev.Step]
			line := "  " + SuccessStyle.Render("✓") + " " + step.Text
			if p.showSteps {
				line += "\n    " + StepStyle.Render(thinking.Describe(step.Text))
			}
			fmt.Fprintln(p.out, line)
		}
	case session.EventUploadStarted:
		fmt.Fprintln(p.out, DimStyle.Render("Uploading..."))
	case session.EventMessageAppended:
		if !ev.Message.IsUser() || ev.Message.Kind == model.KindFile {
			p.writeMessage(ev.Message)
		}
	}
}

// message prints msg.
func (p *printer) message(msg model.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writeMessage(msg)
}

func (p *printer) writeMessage(msg model.Message) {
	label := BotLabelStyle.Render(msg.Sender.DisplayName())
	if msg.IsUser() {
		label = PromptStyle.Render(msg.Sender.DisplayName())
	}
	meta := label + " " + DimStyle.Render(msg.Timestamp.Local().Format("15:04"))
	if msg.HasCurrentData {
		meta += "  " + SuccessStyle.Render("● "+components.DataBadgeText)
	}

	body := msg.Text
	if msg.IsProposal() {
		body = p.md.Render(msg.Text, p.width)
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n\n", meta, body)
}
