// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes AlgaeVerse conversations to files.
//
// # Key Types
//
//   - Transcript: The exported view of a conversation
//   - Exporter: Format interface (Markdown, JSON, HTML)
//   - Options: Output directory, explicit path, timestamps, theme
//
// # Supported Formats
//
//   - Markdown: YAML front matter plus one section per message
//   - JSON: The messages with their wire field names
//   - HTML: The Markdown rendering converted with goldmark
//
// # Usage
//
//	t := export.FromSnapshot(store.Snapshot())
//	exp, err := export.ForFormat("html", nil)
//	path, err := export.ToFile(t, exp, nil)
package export
