// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
)

// EventKind identifies what changed.
type EventKind int

const (
	// EventMessageAppended carries the new message in Event.Message.
	EventMessageAppended EventKind = iota
	EventChatStarted
	// EventStepCompleted carries the step index in Event.Step.
	EventStepCompleted
	EventChatFinished
	EventUploadStarted
	EventUploadFinished
	EventCountryChanged
	EventFileContextChanged
)

var eventKindNames = map[EventKind]string{
	EventMessageAppended:    "message_appended",
	EventChatStarted:        "chat_started",
	EventStepCompleted:      "step_completed",
	EventChatFinished:       "chat_finished",
	EventUploadStarted:      "upload_started",
	EventUploadFinished:     "upload_finished",
	EventCountryChanged:     "country_changed",
	EventFileContextChanged: "file_context_changed",
}

// String returns the event kind name.
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event reports a state change. Snapshot is the state right after it.
type Event struct {
	Kind     EventKind
	Message  model.Message
	Step     int
	Snapshot Snapshot
}

// Listener receives events. It is called without any store lock held, so
// it may call back into the Store. Events from concurrent operations can
// arrive out of order; compare Snapshot.Version to keep the newest state.
type Listener func(Event)

// Snapshot is a copy of the conversation state.
type Snapshot struct {
	// Version increases with every change.
	Version        uint64
	Messages       []model.Message
	FileContext    *model.FileContext
	Country        string
	Steps          []thinking.Step
	ChatInFlight   bool
	UploadInFlight bool
	Thinking       bool
}

// Progress summarizes the thinking steps.
func (s Snapshot) Progress() thinking.Progress {
	return thinking.ProgressOf(s.Steps)
}

// Busy reports whether either operation is outstanding.
func (s Snapshot) Busy() bool {
	return s.ChatInFlight || s.UploadInFlight
}
