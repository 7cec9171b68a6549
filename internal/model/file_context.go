// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// FileContext is what the backend extracted from the most recent upload.
// It is attached to every chat request until the next successful upload
// replaces it.
type FileContext struct {
	FileName      string `json:"fileName"`
	ExtractedText string `json:"extractedText"`
	FilePath      string `json:"filePath"`
}

// Clone returns a copy so callers cannot reach the store's instance.
func (f *FileContext) Clone() *FileContext {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
