// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package remote

import "github.com/jeranaias/algaeverse-tui/internal/model"

// ChatRequest is the JSON body of POST /api/chat.
type ChatRequest struct {
	Message     string             `json:"message"`
	FileData    *model.FileContext `json:"fileData,omitempty"`
	UserCountry string             `json:"userCountry"`
}

// ChatReply is the envelope returned by POST /api/chat.
type ChatReply struct {
	Success        bool   `json:"success"`
	Response       string `json:"response,omitempty"`
	HasCurrentData bool   `json:"hasCurrentData,omitempty"`
	Error          string `json:"error,omitempty"`
}

// UploadReply is the envelope returned by POST /api/upload.
type UploadReply struct {
	Success       bool   `json:"success"`
	FileName      string `json:"fileName,omitempty"`
	ExtractedText string `json:"extractedText,omitempty"`
	FilePath      string `json:"filePath,omitempty"`
	Error         string `json:"error,omitempty"`
}

// FileContext converts a successful reply into the context attached to
// later chat requests.
func (r *UploadReply) FileContext() *model.FileContext {
	return &model.FileContext{
		FileName:      r.FileName,
		ExtractedText: r.ExtractedText,
		FilePath:      r.FilePath,
	}
}
