// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sink receives validated files. The conversation store implements it.
type Sink interface {
	SubmitFile(ctx context.Context, f File) error
}

// AlertFunc shows a blocking notice to the user.
type AlertFunc func(message string)

// Uploader validates files and forwards accepted ones to its sink. It does
// not queue or serialize uploads itself.
type Uploader struct {
	sink   Sink
	alert  AlertFunc
	zone   *DropZone
	logger *zap.Logger
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(u *Uploader) {
		if logger != nil {
			u.logger = logger.Named("upload")
		}
	}
}

// WithDropZone shares a drop zone, typically with the watcher.
func WithDropZone(zone *DropZone) Option {
	return func(u *Uploader) {
		if zone != nil {
			u.zone = zone
		}
	}
}

// NewUploader creates an uploader. alert may be nil.
func NewUploader(sink Sink, alert AlertFunc, opts ...Option) *Uploader {
	u := &Uploader{
		sink:   sink,
		alert:  alert,
		zone:   &DropZone{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// DropZone returns the uploader's drop zone.
func (u *Uploader) DropZone() *DropZone {
	return u.zone
}

// Accept validates f and forwards it. A rejected file raises the alert and
// returns a *RejectionError without reaching the sink.
func (u *Uploader) Accept(ctx context.Context, f File) error {
	if err := Validate(f); err != nil {
		u.logger.Info("file rejected",
			zap.String("name", f.Name),
			zap.String("type", f.Type))
		var rej *RejectionError
		if u.alert != nil && errors.As(err, &rej) {
			u.alert(rej.UserMessage())
		}
		return err
	}

	u.logger.Debug("file accepted",
		zap.String("name", f.Name),
		zap.String("type", f.Type),
		zap.Int64("size", f.Size))
	return u.sink.SubmitFile(ctx, f)
}

// Select handles a file chosen in the picker.
func (u *Uploader) Select(ctx context.Context, path string) error {
	f, err := FromPath(path)
	if err != nil {
		return err
	}
	return u.Accept(ctx, f)
}

// Drop handles a drag and drop gesture. Only the first path is used; the
// rest are discarded. The drop zone is disarmed either way.
func (u *Uploader) Drop(ctx context.Context, paths []string) error {
	u.zone.Disarm()
	if len(paths) == 0 {
		return ErrNoFile
	}
	if len(paths) > 1 {
		u.logger.Debug("multi-file drop, extra files discarded",
			zap.Int("discarded", len(paths)-1))
	}
	return u.Select(ctx, paths[0])
}
