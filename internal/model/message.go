// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "AlgaeVerse"
	default:
		return string(s)
	}
}

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind tags a message with how it should be presented. The zero value means
// the message carries no special kind.
type Kind string

const (
	KindNone     Kind = ""
	KindText     Kind = "text"
	KindFile     Kind = "file"
	KindProposal Kind = "proposal"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the conversation log. Messages are values and
// are never modified after creation.
type Message struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Sender         Sender    `json:"sender"`
	Timestamp      time.Time `json:"timestamp"`
	Kind           Kind      `json:"type,omitempty"`
	HasCurrentData bool      `json:"hasCurrentData,omitempty"`
}

// NewMessage creates a message with a fresh ID stamped with the current time.
func NewMessage(sender Sender, text string, kind Kind) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
		Kind:      kind,
	}
}

// NewUserMessage creates a plain user message.
func NewUserMessage(text string) Message {
	return NewMessage(SenderUser, text, KindNone)
}

// NewBotMessage creates a bot message of the given kind.
func NewBotMessage(text string, kind Kind) Message {
	return NewMessage(SenderBot, text, kind)
}

// NewProposalMessage creates a bot reply produced by a successful chat call.
func NewProposalMessage(text string, hasCurrentData bool) Message {
	msg := NewMessage(SenderBot, text, KindProposal)
	msg.HasCurrentData = hasCurrentData
	return msg
}

// IsUser reports whether the user sent the message.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// IsProposal reports whether the message is a chat reply.
func (m Message) IsProposal() bool {
	return m.Kind == KindProposal
}
