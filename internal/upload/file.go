// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RejectionMessage is the blocking alert shown for unsupported files.
const RejectionMessage = "Please select a valid file type (PDF, DOCX, or image)"

var (
	// ErrUnsupportedType indicates the file's MIME type is not allowed.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrNotRegularFile indicates the path is a directory or special file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNoFile indicates a drop carried no files.
	ErrNoFile = errors.New("no file")
)

// RejectionError describes a file that failed validation.
type RejectionError struct {
	Name string
	Type string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", ErrUnsupportedType, e.Name, e.Type)
}

// Unwrap returns ErrUnsupportedType.
func (e *RejectionError) Unwrap() error {
	return ErrUnsupportedType
}

// UserMessage returns the text shown in the alert.
func (e *RejectionError) UserMessage() string {
	return RejectionMessage
}

// File is a candidate upload.
type File struct {
	// Name is the base name sent to the backend.
	Name string
	// Path locates the content on disk.
	Path string
	// Type is the MIME type used for validation and the multipart part.
	Type string
	Size int64
}

// FromPath describes the file at path. The type is detected from the name.
func FromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	name := filepath.Base(path)
	return File{
		Name: name,
		Path: path,
		Type: TypeByName(name),
		Size: info.Size(),
	}, nil
}

// Open opens the file's content.
func (f File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Validate checks f against the allow-list.
func Validate(f File) error {
	if !Allowed(f.Type) {
		return &RejectionError{Name: f.Name, Type: f.Type}
	}
	return nil
}
