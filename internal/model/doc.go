// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// # Key Types
//
//   - Message: Immutable chat entry with sender, kind and timestamp
//   - Sender: Who produced a message (user or bot)
//   - Kind: Optional message tag (text, file, proposal)
//   - FileContext: Text extracted from the last uploaded file
//   - Conversation: Append-only, insertion-ordered message log
//
// # Usage
//
//	conv := model.NewConversation(model.NewBotMessage("Hi!", model.KindNone))
//	conv.Append(model.NewUserMessage("How much does it cost?"))
//	last, _ := conv.Last()
package model
