// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mockapi serves a stand-in for the AlgaeVerse backend.
//
// It speaks the same contract as the production service (POST /api/chat
// and POST /api/upload with the {success, ...} envelopes) and answers
// with canned markdown proposals, so the terminal client can be developed
// and tested offline. Nothing is generated and uploaded files are not
// parsed.
package mockapi
