// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/ui/components"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case StoreEventMsg:
		m.applyEvent(msg.Event)
		return m, m.bridge.Wait()

	case AlertMsg:
		m.alert = components.NewAlert(msg.Message, m.theme)
		return m, m.bridge.Wait()

	case SubmitDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, session.ErrBlankMessage) {
			m.setStatus(msg.Err.Error(), true)
		}
		return m, nil

	case UploadDoneMsg:
		m.uploader.DropZone().Disarm()
		m.syncUploadLine()
		var rej *upload.RejectionError
		switch {
		case msg.Err == nil, errors.As(msg.Err, &rej):
			// Rejections were already shown as an alert.
		case errors.Is(msg.Err, session.ErrUploadInFlight):
			m.setStatus("An upload is already in progress", true)
		default:
			m.setStatus(msg.Err.Error(), true)
		}
		m.layout()
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.setStatus("Export failed: "+msg.Err.Error(), true)
		} else {
			m.setStatus("Exported to "+msg.Path, false)
		}
		return m, nil

	case StatusMsg:
		m.setStatus(msg.Text, msg.Error)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.snap.ChatInFlight {
			m.refreshViewport(false)
		}
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// The picker reads directories asynchronously.
	if m.showPicker {
		return m.updatePicker(msg)
	}

	var cmd tea.Cmd
	if m.focus == FocusCountry {
		m.country, cmd = m.country.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// STORE EVENTS
// =============================================================================

// applyEvent keeps the newest snapshot. Events from a chat and an upload in
// flight together may arrive out of order.
func (m *Model) applyEvent(ev session.Event) {
	if ev.Snapshot.Version <= m.snap.Version {
		return
	}
	m.snap = ev.Snapshot
	m.syncUploadLine()
	m.layout()
	m.refreshViewport(ev.Kind == session.EventMessageAppended)
}

func (m *Model) syncUploadLine() {
	m.uploadLine.Armed = m.uploader.DropZone().Armed()
	m.uploadLine.Uploading = m.snap.UploadInFlight
	m.uploadLine.Attached = ""
	if m.snap.FileContext != nil {
		m.uploadLine.Attached = m.snap.FileContext.FileName
	}
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The alert is modal.
	if m.alert != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Dismiss):
			m.alert = nil
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showPicker {
		if msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Picker) {
			m.showPicker = false
			m.layout()
			return m, nil
		}
		return m.updatePicker(msg)
	}

	// Terminals deliver a dragged file as a bracketed paste of its path.
	if msg.Paste {
		if paths := upload.DroppedPaths(string(msg.Runes)); paths != nil {
			cmd := m.dropCmd(paths)
			m.syncUploadLine()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Picker):
		m.showPicker = true
		m.layout()
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd("md", "")

	case key.Matches(msg, m.keys.Detach):
		return m, m.detach()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		return m, m.toggleFocus()

	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == FocusCountry {
		return m.handleCountryKey(msg)
	}
	return m.handleComposerKey(msg)
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	busy := m.store.Busy(session.OpChat)

	switch {
	case key.Matches(msg, m.keys.Newline):
		m.input.InsertString("\n")
		m.composer.SetValue(m.input.Value())
		m.resizeComposer()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.composer.SetValue(m.input.Value())
		if cmd, ok := ParseCommand(m.composer.Value()); ok {
			m.composer.Reset()
			m.input.Reset()
			m.resizeComposer()
			return m, m.runCommand(cmd)
		}
		text, ok := m.composer.HandleEnter(false, busy)
		if !ok {
			return m, nil
		}
		m.input.Reset()
		m.resizeComposer()
		m.status = ""
		return m, m.submitCmd(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.composer.SetValue(m.input.Value())
	m.resizeComposer()
	return m, cmd
}

func (m Model) handleCountryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.store.SetCountry(m.country.Value())
		return m, m.toggleFocus()
	}
	var cmd tea.Cmd
	m.country, cmd = m.country.Update(msg)
	m.store.SetCountry(m.country.Value())
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusComposer {
		m.focus = FocusCountry
		m.input.Blur()
		return m.country.Focus()
	}
	m.focus = FocusComposer
	m.country.Blur()
	m.store.SetCountry(m.country.Value())
	return m.input.Focus()
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.showPicker = false
		m.layout()
		return m, tea.Batch(cmd, m.selectCmd(path))
	}
	if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
		m.alert = components.NewAlert(upload.RejectionMessage, m.theme)
	}
	return m, cmd
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) resizeComposer() {
	rows := m.composer.Height(minComposerRows, maxComposerRows)
	if rows != m.input.Height() {
		m.input.SetHeight(rows)
		m.layout()
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
