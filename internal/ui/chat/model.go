// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/algaeverse-tui/internal/composer"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/ui/components"
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// Placeholders and labels of the input area.
const (
	ComposerPlaceholder = "Type your message..."
	CountryLabel        = "Target Country"
	CountryPlaceholder  = "Enter your country for location-specific proposals..."
)

const (
	minComposerRows = 1
	maxComposerRows = 6
)

// Focus identifies the focused input.
type Focus int

const (
	FocusComposer Focus = iota
	FocusCountry
)

// Options tune the chat screen.
type Options struct {
	// RenderMarkdown renders proposal replies with glamour.
	RenderMarkdown bool
	// ShowDescriptions shows the sub-line under each thinking step.
	ShowDescriptions bool
	// ExportDir is where ctrl+e writes transcripts.
	ExportDir string
	// PickerDir is the directory the file picker opens in.
	PickerDir string
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen. Conversation state
// lives in the session store; the model renders the newest snapshot it has
// been sent.
type Model struct {
	ctx      context.Context
	store    *session.Store
	uploader *upload.Uploader
	bridge   *Bridge
	theme    *styles.Theme
	keys     KeyMap
	opts     Options

	// Dimensions
	width  int
	height int
	ready  bool

	// Components
	header     *components.Header
	markdown   *components.MarkdownRenderer
	thinking   *components.ThinkingPanel
	uploadLine *components.UploadLine
	alert      *components.Alert

	// Widgets
	composer *composer.Composer
	input    textarea.Model
	country  textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	picker   filepicker.Model
	help     help.Model

	focus      Focus
	showPicker bool

	// snap is the newest store state seen.
	snap session.Snapshot

	// Rendered message cache, keyed by the message count and width.
	rendered      string
	renderedCount int
	renderedWidth int

	status    string
	statusErr bool
}

// New creates the chat model. The bridge must be the store's listener and
// the uploader's alert function so events reach the program.
func New(ctx context.Context, store *session.Store, uploader *upload.Uploader, bridge *Bridge, theme *styles.Theme, opts Options) Model {
	if theme == nil {
		theme = styles.DefaultTheme()
	}

	ta := textarea.New()
	ta.Placeholder = ComposerPlaceholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetHeight(minComposerRows)
	// Enter submits; newlines come from the Newline binding.
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = CountryPlaceholder
	ti.Prompt = ""
	ti.CharLimit = 80
	ti.SetValue(store.Country())

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Spinner),
	)

	fp := filepicker.New()
	fp.AllowedTypes = upload.PickerExtensions
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AutoHeight = false
	fp.Height = 10
	if opts.PickerDir != "" {
		fp.CurrentDirectory = opts.PickerDir
	}

	thinkingPanel := components.NewThinkingPanel(theme)
	thinkingPanel.ShowDescriptions = opts.ShowDescriptions

	return Model{
		ctx:        contextOrBackground(ctx),
		store:      store,
		uploader:   uploader,
		bridge:     bridge,
		theme:      theme,
		keys:       DefaultKeyMap(),
		opts:       opts,
		header:     components.NewHeader(theme),
		markdown:   components.NewMarkdownRenderer(opts.RenderMarkdown, theme.IsDark),
		thinking:   thinkingPanel,
		uploadLine: components.NewUploadLine(theme),
		composer:   composer.New(),
		input:      ta,
		country:    ti,
		viewport:   viewport.New(80, 20),
		spinner:    sp,
		picker:     fp,
		help:       help.New(),
		snap:       store.Snapshot(),
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.bridge.Wait(),
		textarea.Blink,
		m.spinner.Tick,
	)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Snapshot returns the newest store state the model has seen.
func (m Model) Snapshot() session.Snapshot {
	return m.snap
}

// Focused returns the focused input.
func (m Model) Focused() Focus {
	return m.focus
}

// Alerting reports whether the alert overlay is shown.
func (m Model) Alerting() bool {
	return m.alert != nil
}

// PickerOpen reports whether the file picker is shown.
func (m Model) PickerOpen() bool {
	return m.showPicker
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// ComposerValue returns the pending message text.
func (m Model) ComposerValue() string {
	return m.input.Value()
}
