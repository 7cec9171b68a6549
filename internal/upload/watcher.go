// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Watcher defaults.
const (
	DefaultDropWindow = 750 * time.Millisecond
	DefaultSettle     = 250 * time.Millisecond
)

// Suffixes of files still being written by browsers and copy tools.
var partialSuffixes = []string{".part", ".crdownload", ".tmp", ".download", "~"}

// Watcher turns files created in a drop directory into drops. Files that
// land within one drop window count as a single multi-file drop, and only
// the first of them is forwarded.
type Watcher struct {
	dir      string
	uploader *Uploader
	limiter  *rate.Limiter
	settle   time.Duration
	logger   *zap.Logger

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	pending string
	timer   *time.Timer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithSettle sets how long a dropped file must stay quiet before it is
// forwarded. Copies into the directory emit several writes after the
// create event.
func WithSettle(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.settle = d
		}
	}
}

// WithWatcherLogger sets the diagnostic logger.
func WithWatcherLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger.Named("dropwatch")
		}
	}
}

// NewWatcher creates a watcher for dir. A non-positive window uses
// DefaultDropWindow. The directory is created if missing.
func NewWatcher(dir string, window time.Duration, uploader *Uploader, opts ...WatcherOption) (*Watcher, error) {
	if window <= 0 {
		window = DefaultDropWindow
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create drop dir: %w", err)
	}

	w := &Watcher{
		dir:      dir,
		uploader: uploader,
		limiter:  rate.NewLimiter(rate.Every(window), 1),
		settle:   DefaultSettle,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Start begins watching. Events are processed until ctx is cancelled or
// Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.fsw = fsw
	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.processEvents()

	w.logger.Info("watching drop directory", zap.String("dir", w.dir))
	return nil
}

// Close stops the watcher and waits for the event loop to exit. A drop
// still settling is abandoned.
func (w *Watcher) Close() error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = ""
	w.mu.Unlock()

	return w.fsw.Close()
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("drop watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if ignoredName(filepath.Base(event.Name)) {
		return
	}

	switch {
	case event.Op&fsnotify.Create != 0:
		if info, err := os.Stat(event.Name); err != nil || !info.Mode().IsRegular() {
			return
		}
		// One token per window: the first file of a burst takes it and
		// the rest of the burst is dropped here.
		if !w.limiter.Allow() {
			w.logger.Debug("discarding extra dropped file", zap.String("path", event.Name))
			return
		}
		w.uploader.DropZone().Arm()
		w.mu.Lock()
		w.pending = event.Name
		w.resetTimerLocked()
		w.mu.Unlock()

	case event.Op&fsnotify.Write != 0:
		w.mu.Lock()
		if w.pending == event.Name {
			w.resetTimerLocked()
		}
		w.mu.Unlock()
	}
}

func (w *Watcher) resetTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.settle, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	path := w.pending
	w.pending = ""
	w.timer = nil
	w.mu.Unlock()

	if path == "" || w.ctx.Err() != nil {
		return
	}

	if err := w.uploader.Drop(w.ctx, []string{path}); err != nil {
		w.logger.Info("dropped file not uploaded",
			zap.String("path", path),
			zap.Error(err))
	}
}

func ignoredName(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	lower := strings.ToLower(name)
	for _, suffix := range partialSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
