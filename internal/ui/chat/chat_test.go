// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/algaeverse-tui/internal/remote"
	"github.com/jeranaias/algaeverse-tui/internal/session"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
	"github.com/jeranaias/algaeverse-tui/internal/ui/styles"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// =============================================================================
// HELPERS
// =============================================================================

type fakeBackend struct {
	mu    sync.Mutex
	gate  chan struct{}
	chats []remote.ChatRequest
}

func (f *fakeBackend) Chat(ctx context.Context, req remote.ChatRequest) (*remote.ChatReply, error) {
	f.mu.Lock()
	f.chats = append(f.chats, req)
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return &remote.ChatReply{Success: true, Response: "**Proposal** for " + req.UserCountry}, nil
}

func (f *fakeBackend) Upload(_ context.Context, name, _ string, r io.Reader) (*remote.UploadReply, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &remote.UploadReply{Success: true, FileName: name, ExtractedText: string(body), FilePath: "uploads/" + name}, nil
}

func (f *fakeBackend) requests() []remote.ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]remote.ChatRequest(nil), f.chats...)
}

type harness struct {
	backend *fakeBackend
	store   *session.Store
	bridge  *Bridge
	dir     string
}

func newTestModel(t *testing.T) (Model, *harness) {
	t.Helper()
	h := &harness{backend: &fakeBackend{}, bridge: NewBridge(), dir: t.TempDir()}
	h.store = session.New(h.backend, h.backend,
		session.WithSchedule(thinking.Schedule{
			Research: time.Hour, Analysis: time.Hour, Generation: time.Hour, Default: time.Hour,
		}),
		session.WithListener(h.bridge.Listener))
	t.Cleanup(func() {
		h.store.Close()
		h.bridge.Close()
	})

	uploader := upload.NewUploader(h.store, h.bridge.Alert)
	m := New(context.Background(), h.store, uploader, h.bridge, styles.NewTheme(styles.ModeDark), Options{
		ExportDir: h.dir,
		PickerDir: h.dir,
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, h
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(m Model, s string) Model {
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return update(m, tea.KeyMsg{Type: tea.KeyEnter})
}

// drain feeds every forwarded message into the model.
func drain(m Model, b *Bridge) Model {
	for {
		select {
		case msg := <-b.ch:
			m, _ = update(m, msg)
		default:
			return m
		}
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// =============================================================================
// COMMAND PARSING
// =============================================================================

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
		ok    bool
	}{
		{"/export", Command{Name: "export", Args: []string{}}, true},
		{"  /EXPORT html out.html ", Command{Name: "export", Args: []string{"html", "out.html"}}, true},
		{"/country New Zealand", Command{Name: "country", Args: []string{"New", "Zealand"}}, true},
		{"/detach", Command{Name: "detach", Args: []string{}}, true},
		{"/unknown thing", Command{}, false},
		{"what does /export do", Command{}, false},
		{"/", Command{}, false},
		{"hello", Command{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseCommand(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseCommand(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if got.Name != tt.want.Name || strings.Join(got.Args, "|") != strings.Join(tt.want.Args, "|") {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestExportArgs(t *testing.T) {
	tests := []struct {
		args         []string
		format, path string
	}{
		{nil, "md", ""},
		{[]string{"json"}, "json", ""},
		{[]string{"notes.html"}, "html", "notes.html"},
		{[]string{"md", "my", "notes.md"}, "md", "my notes.md"},
	}
	for _, tt := range tests {
		format, path := ExportArgs(tt.args)
		if format != tt.format || path != tt.path {
			t.Errorf("ExportArgs(%v) = %q, %q; want %q, %q", tt.args, format, path, tt.format, tt.path)
		}
	}
}

// =============================================================================
// MODEL
// =============================================================================

func TestModel_ViewShowsChrome(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	for _, want := range []string{"AlgaeVerse", CountryLabel, upload.LabelIdle} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_SubmitSendsAndRendersReply(t *testing.T) {
	m, h := newTestModel(t)

	m = typeText(m, "How much does it cost?")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("enter should produce a submit command")
	}
	if m.ComposerValue() != "" {
		t.Errorf("composer should be cleared, got %q", m.ComposerValue())
	}

	done, ok := cmd().(SubmitDoneMsg)
	if !ok || done.Err != nil {
		t.Fatalf("unexpected submit result %#v", done)
	}
	m = drain(m, h.bridge)

	msgs := m.Snapshot().Messages
	if len(msgs) != 3 {
		t.Fatalf("want welcome, question and reply, got %d messages", len(msgs))
	}
	if msgs[1].Text != "How much does it cost?" {
		t.Errorf("question = %q", msgs[1].Text)
	}
	if m.Snapshot().ChatInFlight {
		t.Error("chat should have finished")
	}
}

func TestModel_BlankEnterDoesNothing(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "   ")
	_, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("blank message must not be sent")
	}
	if len(h.backend.requests()) != 0 {
		t.Error("backend should not be called")
	}
}

func TestModel_SecondSubmitWhileBusyIsIgnored(t *testing.T) {
	m, h := newTestModel(t)
	h.backend.gate = make(chan struct{})

	m = typeText(m, "first")
	m, cmd := pressEnter(m)

	result := make(chan tea.Msg, 1)
	go func() { result <- cmd() }()

	deadline := time.Now().Add(2 * time.Second)
	for !h.store.Busy(session.OpChat) {
		if time.Now().After(deadline) {
			t.Fatal("chat never went in flight")
		}
		time.Sleep(time.Millisecond)
	}

	m = typeText(m, "second")
	m, cmd = pressEnter(m)
	if cmd != nil {
		t.Error("submit while busy must be a no-op")
	}
	if m.ComposerValue() != "second" {
		t.Errorf("pending text should be kept, got %q", m.ComposerValue())
	}

	close(h.backend.gate)
	<-result
	if n := len(h.backend.requests()); n != 1 {
		t.Errorf("want 1 request, got %d", n)
	}
}

func TestModel_NewlineKeyDoesNotSubmit(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(m, "line one")
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlJ})
	if cmd != nil {
		t.Error("newline must not submit")
	}
	m = typeText(m, "line two")
	if got := m.ComposerValue(); got != "line one\nline two" {
		t.Errorf("composer = %q", got)
	}
}

func TestModel_CountryField(t *testing.T) {
	m, h := newTestModel(t)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != FocusCountry {
		t.Fatal("tab should focus the country field")
	}
	m = typeText(m, "Malaysia")
	if got := h.store.Country(); got != "Malaysia" {
		t.Errorf("store country = %q", got)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != FocusComposer {
		t.Error("tab should return to the composer")
	}
}

func TestModel_CountryCommand(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "/country Singapore")
	_, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("command should report status")
	}
	if h.store.Country() != "Singapore" {
		t.Errorf("country = %q", h.store.Country())
	}
	if len(h.backend.requests()) != 0 {
		t.Error("commands are not sent to the assistant")
	}
}

func TestModel_PasteDropUploadsFile(t *testing.T) {
	m, h := newTestModel(t)
	path := writeFile(t, h.dir, "site plan.png", "png-bytes")

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(`"` + path + `"`), Paste: true})
	if cmd == nil {
		t.Fatal("pasting a file path should start an upload")
	}
	done := cmd().(UploadDoneMsg)
	if done.Err != nil {
		t.Fatalf("upload failed: %v", done.Err)
	}
	m, _ = update(m, done)
	m = drain(m, h.bridge)

	fc := h.store.FileContext()
	if fc == nil || fc.FileName != "site plan.png" {
		t.Fatalf("file context = %+v", fc)
	}
	if m.ComposerValue() != "" {
		t.Error("a dropped path must not land in the composer")
	}
}

func TestModel_PasteOrdinaryTextGoesToComposer(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("not a file"), Paste: true})
	if m.ComposerValue() != "not a file" {
		t.Errorf("composer = %q", m.ComposerValue())
	}
}

func TestModel_RejectedDropShowsAlert(t *testing.T) {
	m, h := newTestModel(t)
	path := writeFile(t, h.dir, "notes.txt", "text")

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(path), Paste: true})
	done := cmd().(UploadDoneMsg)
	var rej *upload.RejectionError
	if !errors.As(done.Err, &rej) {
		t.Fatalf("want rejection, got %v", done.Err)
	}
	m, _ = update(m, done)
	m = drain(m, h.bridge)

	if !m.Alerting() {
		t.Fatal("rejection should open the alert")
	}
	if !strings.Contains(m.View(), upload.RejectionMessage) {
		t.Error("alert should show the rejection message")
	}

	// The alert swallows other keys until dismissed.
	m = typeText(m, "x")
	if m.ComposerValue() != "" {
		t.Error("keys must not reach the composer while alerting")
	}
	m, _ = pressEnter(m)
	if m.Alerting() {
		t.Error("enter should dismiss the alert")
	}
}

func TestModel_ExportCommand(t *testing.T) {
	m, h := newTestModel(t)
	m = typeText(m, "/export json")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("export should return a command")
	}

	done := cmd().(ExportDoneMsg)
	if done.Err != nil {
		t.Fatalf("export failed: %v", done.Err)
	}
	if filepath.Dir(done.Path) != h.dir || filepath.Ext(done.Path) != ".json" {
		t.Errorf("unexpected export path %q", done.Path)
	}
	if _, err := os.Stat(done.Path); err != nil {
		t.Errorf("export file missing: %v", err)
	}

	m, _ = update(m, done)
	if !strings.HasPrefix(m.Status(), "Exported to") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModel_DetachWithoutFile(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if cmd == nil {
		t.Fatal("detach should report status")
	}
	if st := cmd().(StatusMsg); st.Text != "No file attached" {
		t.Errorf("status = %q", st.Text)
	}
}

func TestModel_PickerOpensAndCloses(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.PickerOpen() || cmd == nil {
		t.Fatal("ctrl+o should open the picker and read the directory")
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.PickerOpen() {
		t.Error("esc should close the picker")
	}
}

func TestModel_StaleEventsIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	current := m.Snapshot()

	stale := current
	stale.Version = current.Version
	stale.Country = "stale"
	m, _ = update(m, StoreEventMsg{Event: session.Event{Kind: session.EventCountryChanged, Snapshot: stale}})
	if m.Snapshot().Country == "stale" {
		t.Error("an event with an old version must not replace the snapshot")
	}

	fresh := current
	fresh.Version = current.Version + 5
	fresh.Country = "fresh"
	m, _ = update(m, StoreEventMsg{Event: session.Event{Kind: session.EventCountryChanged, Snapshot: fresh}})
	if m.Snapshot().Country != "fresh" {
		t.Error("a newer event should replace the snapshot")
	}
}

// =============================================================================
// BRIDGE
// =============================================================================

func TestBridge_CloseReleasesWaiters(t *testing.T) {
	b := NewBridge()
	b.Close()
	if msg := b.Wait()(); msg != nil {
		t.Errorf("want nil after close, got %#v", msg)
	}
	// Sends after close must not block.
	b.Alert("ignored")
}
