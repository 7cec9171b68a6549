// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/remote"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrBlankMessage is returned for a message that is empty after trimming.
	ErrBlankMessage = errors.New("message is blank")

	// ErrChatInFlight is returned when a chat send is already outstanding.
	ErrChatInFlight = errors.New("chat request already in flight")

	// ErrUploadInFlight is returned when an upload is already outstanding.
	ErrUploadInFlight = errors.New("upload already in flight")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("session closed")
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// ChatClient sends chat requests. *remote.Client implements it.
type ChatClient interface {
	Chat(ctx context.Context, req remote.ChatRequest) (*remote.ChatReply, error)
}

// UploadClient sends files. *remote.Client implements it.
type UploadClient interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (*remote.UploadReply, error)
}

// Op names a remote operation for Busy.
type Op int

const (
	OpChat Op = iota
	OpUpload
)

// =============================================================================
// STORE
// =============================================================================

// Store is the state of one conversation. It is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	conv           *model.Conversation
	fileContext    *model.FileContext
	country        string
	steps          []thinking.Step
	chatInFlight   bool
	uploadInFlight bool
	thinking       bool
	run            *thinking.Run
	runGen         uint64
	version        uint64
	closed         bool

	chat     ChatClient
	uploads  UploadClient
	planner  *thinking.Planner
	schedule thinking.Schedule
	logger   *zap.Logger
	listener Listener
}

// Option configures a Store.
type Option func(*Store)

// WithCountry sets the initial target country.
func WithCountry(country string) Option {
	return func(s *Store) {
		s.country = country
	}
}

// WithPlanner replaces the default thinking planner.
func WithPlanner(p *thinking.Planner) Option {
	return func(s *Store) {
		if p != nil {
			s.planner = p
		}
	}
}

// WithSchedule sets the thinking step delays.
func WithSchedule(sched thinking.Schedule) Option {
	return func(s *Store) {
		s.schedule = sched
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.Named("session")
		}
	}
}

// WithListener registers the change listener.
func WithListener(l Listener) Option {
	return func(s *Store) {
		s.listener = l
	}
}

// New creates a store seeded with the welcome message.
func New(chat ChatClient, uploads UploadClient, opts ...Option) *Store {
	s := &Store{
		conv:     model.NewConversation(model.NewBotMessage(WelcomeText, model.KindNone)),
		chat:     chat,
		uploads:  uploads,
		planner:  thinking.DefaultPlanner(),
		schedule: thinking.DefaultSchedule(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetListener replaces the change listener. Pass nil to stop listening.
func (s *Store) SetListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// =============================================================================
// CHAT
// =============================================================================

// SubmitMessage sends text to the assistant and records the reply. It
// blocks until the round trip completes. text is sent as typed; only the
// blank check trims it.
func (s *Store) SubmitMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.chatInFlight {
		s.mu.Unlock()
		return ErrChatInFlight
	}

	userMsg := model.NewUserMessage(text)
	s.conv.Append(userMsg)
	s.chatInFlight = true
	s.thinking = true
	s.steps = s.planner.Plan(text, s.country)

	s.runGen++
	gen := s.runGen
	run := thinking.Start(ctx, s.steps, s.schedule, func(index int) {
		s.stepCompleted(gen, index)
	})
	prev := s.run
	s.run = run
	planned := len(s.steps)

	req := remote.ChatRequest{
		Message:     text,
		FileData:    s.fileContext.Clone(),
		UserCountry: s.country,
	}
	appended := s.eventLocked(EventMessageAppended, userMsg, 0)
	started := s.eventLocked(EventChatStarted, model.Message{}, 0)
	listener := s.listener
	s.mu.Unlock()

	// The previous run's callbacks take s.mu, so stop it unlocked.
	if prev != nil {
		prev.Stop()
	}
	publish(listener, appended, started)

	s.logger.Debug("chat send",
		zap.Int("steps", planned),
		zap.Bool("file_context", req.FileData != nil),
		zap.String("country", req.UserCountry))

	reply, err := s.chat.Chat(ctx, req)

	var botMsg model.Message
	if err != nil {
		s.logger.Warn("chat failed", zap.Error(err))
		botMsg = model.NewBotMessage(ChatErrorText, model.KindNone)
	} else {
		botMsg = model.NewProposalMessage(reply.Response, reply.HasCurrentData)
	}

	s.mu.Lock()
	s.conv.Append(botMsg)
	s.chatInFlight = false
	s.thinking = false
	s.steps = nil
	if s.run == run {
		s.run = nil
		s.runGen++
	}
	appended = s.eventLocked(EventMessageAppended, botMsg, 0)
	finished := s.eventLocked(EventChatFinished, model.Message{}, 0)
	listener = s.listener
	s.mu.Unlock()

	run.Stop()
	publish(listener, appended, finished)
	return nil
}

func (s *Store) stepCompleted(gen uint64, index int) {
	s.mu.Lock()
	if s.runGen != gen || index >= len(s.steps) {
		s.mu.Unlock()
		return
	}
	s.steps[index].Completed = true
	ev := s.eventLocked(EventStepCompleted, model.Message{}, index)
	listener := s.listener
	s.mu.Unlock()

	publish(listener, ev)
}

// =============================================================================
// UPLOAD
// =============================================================================

// SubmitFile uploads f and, on success, replaces the file context. The
// type check happens in the upload package before this is called. It
// blocks until the upload completes and never touches the thinking state.
func (s *Store) SubmitFile(ctx context.Context, f upload.File) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.uploadInFlight {
		s.mu.Unlock()
		return ErrUploadInFlight
	}
	s.uploadInFlight = true
	started := s.eventLocked(EventUploadStarted, model.Message{}, 0)
	listener := s.listener
	s.mu.Unlock()

	publish(listener, started)

	reply, err := s.sendFile(ctx, f)

	var events []Event
	s.mu.Lock()
	if err != nil {
		s.logger.Warn("upload failed", zap.String("name", f.Name), zap.Error(err))
		msg := model.NewBotMessage(UploadErrorText, model.KindNone)
		s.conv.Append(msg)
		events = append(events, s.eventLocked(EventMessageAppended, msg, 0))
	} else {
		s.fileContext = reply.FileContext()
		events = append(events, s.eventLocked(EventFileContextChanged, model.Message{}, 0))

		fileMsg := model.NewMessage(model.SenderUser, FileUploadedText(f.Name), model.KindFile)
		ackMsg := model.NewBotMessage(UploadAckText(f.Name), model.KindNone)
		s.conv.Append(fileMsg)
		events = append(events, s.eventLocked(EventMessageAppended, fileMsg, 0))
		s.conv.Append(ackMsg)
		events = append(events, s.eventLocked(EventMessageAppended, ackMsg, 0))
	}
	s.uploadInFlight = false
	events = append(events, s.eventLocked(EventUploadFinished, model.Message{}, 0))
	listener = s.listener
	s.mu.Unlock()

	publish(listener, events...)
	return nil
}

func (s *Store) sendFile(ctx context.Context, f upload.File) (*remote.UploadReply, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	contentType := f.Type
	if contentType == "" {
		contentType = upload.TypeByName(f.Name)
	}
	return s.uploads.Upload(ctx, f.Name, contentType, rc)
}

// =============================================================================
// STATE
// =============================================================================

// SetCountry sets the target country sent with every chat request.
func (s *Store) SetCountry(country string) {
	s.mu.Lock()
	if s.country == country {
		s.mu.Unlock()
		return
	}
	s.country = country
	ev := s.eventLocked(EventCountryChanged, model.Message{}, 0)
	listener := s.listener
	s.mu.Unlock()

	publish(listener, ev)
}

// Country returns the target country.
func (s *Store) Country() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.country
}

// FileContext returns a copy of the live file context, or nil.
func (s *Store) FileContext() *model.FileContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileContext.Clone()
}

// ClearFileContext detaches the uploaded file from later chat requests.
// It reports whether there was one.
func (s *Store) ClearFileContext() bool {
	s.mu.Lock()
	if s.fileContext == nil {
		s.mu.Unlock()
		return false
	}
	s.fileContext = nil
	ev := s.eventLocked(EventFileContextChanged, model.Message{}, 0)
	listener := s.listener
	s.mu.Unlock()

	publish(listener, ev)
	return true
}

// Messages returns a copy of the message log.
func (s *Store) Messages() []model.Message {
	return s.conv.Messages()
}

// Busy reports whether op is outstanding.
func (s *Store) Busy(op Op) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch op {
	case OpChat:
		return s.chatInFlight
	case OpUpload:
		return s.uploadInFlight
	}
	return false
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Close stops the thinking animation and rejects further submissions.
// Requests already in flight run to completion.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	run := s.run
	s.run = nil
	s.runGen++
	s.mu.Unlock()

	if run != nil {
		run.Stop()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Version:        s.version,
		Messages:       s.conv.Messages(),
		FileContext:    s.fileContext.Clone(),
		Country:        s.country,
		Steps:          thinking.CloneSteps(s.steps),
		ChatInFlight:   s.chatInFlight,
		UploadInFlight: s.uploadInFlight,
		Thinking:       s.thinking,
	}
}

func (s *Store) eventLocked(kind EventKind, msg model.Message, step int) Event {
	s.version++
	if s.listener == nil {
		return Event{Kind: kind}
	}
	return Event{
		Kind:     kind,
		Message:  msg,
		Step:     step,
		Snapshot: s.snapshotLocked(),
	}
}

func publish(l Listener, events ...Event) {
	if l == nil {
		return
	}
	for _, ev := range events {
		l(ev)
	}
}
