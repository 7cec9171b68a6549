// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for the AlgaeVerse TUI.
//
// Colors are Lip Gloss AdaptiveColors so they follow the terminal
// background. The theme can be forced to light or dark from config.
package styles
