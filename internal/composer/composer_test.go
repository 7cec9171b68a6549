// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmit(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		busy   bool
		want   string
		ok     bool
		remain string
	}{
		{"plain", "hello", false, "hello", true, ""},
		{"untrimmed text is emitted as is", "  hello \n", false, "  hello \n", true, ""},
		{"empty", "", false, "", false, ""},
		{"whitespace only", " \n\t ", false, "", false, " \n\t "},
		{"busy", "hello", true, "", false, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetValue(tt.value)
			got, ok := c.Submit(tt.busy)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.remain, c.Value())
		})
	}
}

func TestSubmit_DoubleFireWhileBusy(t *testing.T) {
	c := New()
	c.SetValue("first")

	text, ok := c.Submit(false)
	assert.True(t, ok)
	assert.Equal(t, "first", text)

	// The caller is now busy; a second submit of new text is ignored.
	c.SetValue("second")
	_, ok = c.Submit(true)
	assert.False(t, ok)
	assert.Equal(t, "second", c.Value())
}

func TestHandleEnter(t *testing.T) {
	c := New()
	c.SetValue("line one")

	_, ok := c.HandleEnter(true, false)
	assert.False(t, ok, "shift+enter never submits")
	c.Append("line two")
	assert.Equal(t, "line one\nline two", c.Value())
	assert.Equal(t, 2, c.Lines())

	text, ok := c.HandleEnter(false, false)
	assert.True(t, ok)
	assert.Equal(t, "line one\nline two", text)
	assert.Empty(t, c.Value())
}

func TestHeight(t *testing.T) {
	c := New()
	assert.Equal(t, 1, c.Height(1, 6))

	c.SetValue("a\nb\nc")
	assert.Equal(t, 3, c.Height(1, 6))

	c.SetValue("1\n2\n3\n4\n5\n6\n7\n8")
	assert.Equal(t, 6, c.Height(1, 6))
	assert.Equal(t, 8, c.Height(1, 0), "zero max means unbounded")
}
