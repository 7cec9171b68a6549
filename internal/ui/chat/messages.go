// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/algaeverse-tui/internal/session"
)

// =============================================================================
// MESSAGES
// =============================================================================

// StoreEventMsg carries a session event into the update loop.
type StoreEventMsg struct {
	Event session.Event
}

// AlertMsg opens the blocking alert overlay.
type AlertMsg struct {
	Message string
}

// SubmitDoneMsg is returned when a chat round trip finishes.
type SubmitDoneMsg struct {
	Err error
}

// UploadDoneMsg is returned when a picked, pasted or dropped file has been
// handled.
type UploadDoneMsg struct {
	Err error
}

// ExportDoneMsg reports the result of a transcript export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// StatusMsg sets the transient status line.
type StatusMsg struct {
	Text  string
	Error bool
}

// =============================================================================
// BRIDGE
// =============================================================================

// Bridge forwards store events and uploader alerts, which arrive on
// arbitrary goroutines, into the Bubble Tea program.
type Bridge struct {
	ch        chan tea.Msg
	done      chan struct{}
	closeOnce sync.Once
}

// NewBridge creates a bridge with a buffered channel.
func NewBridge() *Bridge {
	return &Bridge{
		ch:   make(chan tea.Msg, 64),
		done: make(chan struct{}),
	}
}

// Listener is a session.Listener.
func (b *Bridge) Listener(ev session.Event) {
	b.send(StoreEventMsg{Event: ev})
}

// Alert is an upload.AlertFunc.
func (b *Bridge) Alert(message string) {
	b.send(AlertMsg{Message: message})
}

func (b *Bridge) send(msg tea.Msg) {
	select {
	case b.ch <- msg:
	case <-b.done:
	}
}

// Wait returns a command that delivers the next forwarded message.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// Close releases blocked senders and waiters.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}
