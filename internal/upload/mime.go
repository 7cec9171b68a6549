// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"mime"
	"path/filepath"
	"strings"
)

// MIME types the backend accepts.
const (
	TypePDF  = "application/pdf"
	TypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeJPEG = "image/jpeg"
	TypeJPG  = "image/jpg"
	TypePNG  = "image/png"

	typeOctetStream = "application/octet-stream"
)

var allowedTypes = map[string]bool{
	TypePDF:  true,
	TypeDOCX: true,
	TypeJPEG: true,
	TypePNG:  true,
	TypeJPG:  true,
}

// extensionTypes pins the types we care about so detection does not depend
// on the host's mime.types file.
var extensionTypes = map[string]string{
	".pdf":  TypePDF,
	".docx": TypeDOCX,
	".doc":  "application/msword",
	".jpg":  TypeJPEG,
	".jpeg": TypeJPEG,
	".png":  TypePNG,
	".gif":  "image/gif",
	".txt":  "text/plain",
}

// PickerExtensions filters the file picker. ".doc" is offered but fails
// validation because application/msword is not on the allow-list.
var PickerExtensions = []string{".pdf", ".docx", ".doc", ".jpg", ".jpeg", ".png"}

// TypeByName returns the MIME type for a file name based on its extension,
// without parameters. Unknown extensions yield application/octet-stream.
func TypeByName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if media, _, err := mime.ParseMediaType(t); err == nil {
			return media
		}
	}
	return typeOctetStream
}

// Allowed reports whether mimeType is on the allow-list. The comparison is
// exact: no parameters and no case folding.
func Allowed(mimeType string) bool {
	return allowedTypes[mimeType]
}
