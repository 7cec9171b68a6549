// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one AlgaeVerse conversation.
//
// The Store owns the message log, the uploaded file context, the target
// country and the thinking animation, and drives the chat and upload
// round trips. Chat sends and uploads are tracked by independent
// in-flight flags, so an upload may run while a chat is outstanding but
// two chats may not overlap.
//
// # Key Types
//
//   - Store: Mutex-guarded conversation state
//   - Snapshot: Immutable copy of the state, carried by every Event
//   - Event: Change notification delivered to the listener
//
// # Usage
//
//	store := session.New(client, client,
//	    session.WithCountry("Malaysia"),
//	    session.WithListener(func(ev session.Event) { ... }),
//	)
//	defer store.Close()
//
//	store.SubmitMessage(ctx, "How much would a rooftop unit cost?")
//
// Remote failures never surface as errors from SubmitMessage or
// SubmitFile: they are reported in the conversation as an apology
// message, and the methods return nil.
package session
