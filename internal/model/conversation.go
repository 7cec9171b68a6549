// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sync"
	"time"
)

// Conversation is an append-only message log. Order is insertion order;
// messages are never removed. It is safe for concurrent use.
type Conversation struct {
	mu        sync.RWMutex
	messages  []Message
	createdAt time.Time
}

// NewConversation creates a log pre-seeded with the given messages.
func NewConversation(seed ...Message) *Conversation {
	c := &Conversation{
		messages:  make([]Message, 0, len(seed)+16),
		createdAt: time.Now(),
	}
	c.messages = append(c.messages, seed...)
	return c
}

// Append adds a message to the end of the log.
func (c *Conversation) Append(msg Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of the log.
func (c *Conversation) Messages() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Last returns the most recent message.
func (c *Conversation) Last() (Message, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// CreatedAt returns when the log was created.
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}
