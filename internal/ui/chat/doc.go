// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the AlgaeVerse chat screen: the conversation viewport,
// the thinking panel, the composer, the country field, the upload line and
// the file picker.
//
// The screen holds no conversation state of its own. It renders the newest
// session.Snapshot delivered through a Bridge, and runs store and uploader
// calls as tea.Cmds so the update loop never blocks on the network.
package chat
