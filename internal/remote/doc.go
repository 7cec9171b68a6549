// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package remote is the HTTP client for the AlgaeVerse backend.
//
// Two endpoints are used: POST /api/chat takes a JSON body and POST
// /api/upload takes a multipart body with a single "file" field. Both reply
// with a JSON envelope whose "success" flag decides the outcome; the HTTP
// status code is not consulted when the envelope decodes.
//
// # Error Taxonomy
//
//   - ErrTransport: the request could not be sent or the body not read
//   - ErrMalformedReply: the body was not a JSON envelope
//   - *EnvelopeError (matches ErrRejected): the envelope had success=false
//
// Requests are attempted exactly once. There is no retry.
//
// # Usage
//
//	client := remote.NewClient("https://algaeverse.kenn.my").
//	    WithLogger(logger)
//	reply, err := client.Chat(ctx, remote.ChatRequest{Message: "How much?"})
package remote
