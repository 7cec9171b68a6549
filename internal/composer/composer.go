// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package composer holds the pending chat message and decides when it is
// submitted. It has no terminal dependencies; the TUI and the line REPL both
// drive it.
package composer

import "strings"

// Composer holds a single pending message.
type Composer struct {
	buf string
}

// New returns an empty composer.
func New() *Composer {
	return &Composer{}
}

// Value returns the pending text.
func (c *Composer) Value() string {
	return c.buf
}

// SetValue replaces the pending text.
func (c *Composer) SetValue(s string) {
	c.buf = s
}

// Append adds text to the end of the buffer.
func (c *Composer) Append(s string) {
	c.buf += s
}

// InsertNewline appends a literal newline.
func (c *Composer) InsertNewline() {
	c.buf += "\n"
}

// Reset clears the buffer.
func (c *Composer) Reset() {
	c.buf = ""
}

// CanSubmit reports whether Submit would emit.
func (c *Composer) CanSubmit(busy bool) bool {
	return !busy && strings.TrimSpace(c.buf) != ""
}

// Submit emits the pending text and clears the buffer. It is a no-op, and
// returns false, when the trimmed text is empty or busy is set. The emitted
// text is not trimmed.
func (c *Composer) Submit(busy bool) (string, bool) {
	if !c.CanSubmit(busy) {
		return "", false
	}
	text := c.buf
	c.buf = ""
	return text, true
}

// HandleEnter applies an enter key press. Without shift it submits; with
// shift it inserts a newline and never submits.
func (c *Composer) HandleEnter(shift, busy bool) (string, bool) {
	if shift {
		c.InsertNewline()
		return "", false
	}
	return c.Submit(busy)
}

// Lines returns the number of lines in the buffer. An empty buffer has one.
func (c *Composer) Lines() int {
	return strings.Count(c.buf, "\n") + 1
}

// Height returns how many rows the input needs, clamped to [minRows, maxRows].
func (c *Composer) Height(minRows, maxRows int) int {
	h := c.Lines()
	if h < minRows {
		h = minRows
	}
	if maxRows > 0 && h > maxRows {
		h = maxRows
	}
	return h
}
