// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload validates user-selected files and hands accepted ones to
// the conversation store.
//
// Files arrive three ways: the file picker, a terminal drag and drop (which
// pastes the dropped paths), and an optional drop folder watched with
// fsnotify. Only the first file of a multi-file drop is used.
//
// # Key Types
//
//   - File: A candidate file with its detected MIME type
//   - Uploader: Validates and forwards files to a Sink
//   - DropZone: The visual drop-armed flag
//   - Watcher: Drop-folder watcher
//
// The allow-list is exactly PDF, DOCX, JPEG (image/jpeg and image/jpg) and
// PNG. Anything else raises a blocking alert and is not forwarded.
package upload
