// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, window time.Duration) (*Watcher, *recordingSink, string) {
	t.Helper()
	dir := t.TempDir()
	sink := &recordingSink{}
	u := NewUploader(sink, nil)

	w, err := NewWatcher(dir, window, u, WithSettle(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { w.Close() })
	return w, sink, dir
}

func TestWatcher_ForwardsFirstOfBurst(t *testing.T) {
	_, sink, dir := startWatcher(t, 500*time.Millisecond)

	writeFile(t, dir, "first.pdf")
	writeFile(t, dir, "second.pdf")
	writeFile(t, dir, "third.png")

	require.Eventually(t, func() bool { return len(sink.received()) == 1 },
		2*time.Second, 10*time.Millisecond)

	// Nothing else from the burst shows up.
	time.Sleep(150 * time.Millisecond)
	got := sink.received()
	require.Len(t, got, 1)
	assert.Equal(t, "first.pdf", got[0].Name)
}

func TestWatcher_SeparateDropsAfterWindow(t *testing.T) {
	_, sink, dir := startWatcher(t, 100*time.Millisecond)

	writeFile(t, dir, "one.pdf")
	require.Eventually(t, func() bool { return len(sink.received()) == 1 },
		2*time.Second, 10*time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	writeFile(t, dir, "two.pdf")
	require.Eventually(t, func() bool { return len(sink.received()) == 2 },
		2*time.Second, 10*time.Millisecond)

	got := sink.received()
	assert.Equal(t, "one.pdf", got[0].Name)
	assert.Equal(t, "two.pdf", got[1].Name)
}

func TestWatcher_IgnoresHiddenAndPartial(t *testing.T) {
	_, sink, dir := startWatcher(t, 50*time.Millisecond)

	writeFile(t, dir, ".hidden.pdf")
	writeFile(t, dir, "download.pdf.crdownload")

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, sink.received())
}

func TestWatcher_ArmsDropZone(t *testing.T) {
	dir := t.TempDir()
	sink := &recordingSink{}
	u := NewUploader(sink, nil)

	w, err := NewWatcher(dir, time.Second, u, WithSettle(300*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	writeFile(t, dir, "brief.pdf")
	require.Eventually(t, u.DropZone().Armed, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return len(sink.received()) == 1 },
		2*time.Second, 10*time.Millisecond)
	assert.False(t, u.DropZone().Armed())
}

func TestNewWatcher_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drops")
	w, err := NewWatcher(dir, 0, NewUploader(&recordingSink{}, nil))
	require.NoError(t, err)
	assert.Equal(t, dir, w.Dir())
	assert.DirExists(t, dir)
	assert.NoError(t, w.Close(), "closing an unstarted watcher is a no-op")
}
