// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual pieces of the AlgaeVerse TUI.
//
// Components are plain structs with a View method. They hold no program
// state of their own; the chat model fills them from a session snapshot
// on every render.
//
// # Components
//
//   - Header: Brand bar with the "Powered by OpenAI" and "AI Ready" badges
//   - Hero: Landing text and feature cards shown above the conversation
//   - MessageBubble: One conversation message
//   - ThinkingPanel: Step list, progress bar and footer
//   - UploadLine: File attach row with the drop-armed state
//   - Alert: Blocking notice overlay
//   - MarkdownRenderer: glamour renderer for proposals
package components
