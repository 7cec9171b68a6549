// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_IDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		msg := NewUserMessage("hello")
		_, err := uuid.Parse(msg.ID)
		require.NoError(t, err)
		assert.False(t, seen[msg.ID], "duplicate id %s", msg.ID)
		seen[msg.ID] = true
	}
}

func TestNewProposalMessage(t *testing.T) {
	msg := NewProposalMessage("Here is your proposal", true)
	assert.Equal(t, SenderBot, msg.Sender)
	assert.Equal(t, KindProposal, msg.Kind)
	assert.True(t, msg.HasCurrentData)
	assert.True(t, msg.IsProposal())
	assert.False(t, msg.IsUser())
	assert.False(t, msg.Timestamp.IsZero())
}

func TestMessage_JSONOmitsEmptyKind(t *testing.T) {
	data, err := json.Marshal(NewBotMessage("Sorry", KindNone))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"type"`)
	assert.NotContains(t, string(data), `"hasCurrentData"`)

	data, err = json.Marshal(NewMessage(SenderUser, "File uploaded: a.pdf", KindFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"file"`)
}

func TestSender_DisplayName(t *testing.T) {
	assert.Equal(t, "You", SenderUser.DisplayName())
	assert.Equal(t, "AlgaeVerse", SenderBot.DisplayName())
	assert.Equal(t, "other", Sender("other").DisplayName())
}

func TestConversation_AppendKeepsOrder(t *testing.T) {
	welcome := NewBotMessage("welcome", KindNone)
	conv := NewConversation(welcome)
	require.Equal(t, 1, conv.Len())

	first := NewUserMessage("one")
	second := NewBotMessage("two", KindProposal)
	conv.Append(first)
	conv.Append(second)

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, welcome.ID, msgs[0].ID)
	assert.Equal(t, first.ID, msgs[1].ID)
	assert.Equal(t, second.ID, msgs[2].ID)

	last, ok := conv.Last()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)
}

func TestConversation_MessagesIsACopy(t *testing.T) {
	conv := NewConversation(NewUserMessage("original"))
	msgs := conv.Messages()
	msgs[0].Text = "mutated"

	assert.Equal(t, "original", conv.Messages()[0].Text)
}

func TestConversation_EmptyLast(t *testing.T) {
	_, ok := NewConversation().Last()
	assert.False(t, ok)
}

func TestConversation_ConcurrentAppend(t *testing.T) {
	conv := NewConversation()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conv.Append(NewUserMessage("x"))
			_ = conv.Messages()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, conv.Len())
}

func TestFileContext_Clone(t *testing.T) {
	var nilCtx *FileContext
	assert.Nil(t, nilCtx.Clone())

	orig := &FileContext{FileName: "plan.pdf", ExtractedText: "text", FilePath: "/uploads/plan.pdf"}
	c := orig.Clone()
	c.ExtractedText = "changed"
	assert.Equal(t, "text", orig.ExtractedText)
}
