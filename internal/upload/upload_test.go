// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu    sync.Mutex
	files []File
	err   error
}

func (s *recordingSink) SubmitFile(_ context.Context, f File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, f)
	return s.err
}

func (s *recordingSink) received() []File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]File(nil), s.files...)
}

type alertRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (a *alertRecorder) alert(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, msg)
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	return path
}

func TestTypeByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"brief.pdf", TypePDF},
		{"BRIEF.PDF", TypePDF},
		{"site-plan.docx", TypeDOCX},
		{"legacy.doc", "application/msword"},
		{"photo.jpg", TypeJPEG},
		{"photo.jpeg", TypeJPEG},
		{"pond.png", TypePNG},
		{"anim.gif", "image/gif"},
		{"notes.txt", "text/plain"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeByName(tt.name))
		})
	}
}

func TestAllowed_ExactMatch(t *testing.T) {
	for _, typ := range []string{TypePDF, TypeDOCX, TypeJPEG, TypeJPG, TypePNG} {
		assert.True(t, Allowed(typ), typ)
	}
	for _, typ := range []string{"image/gif", "text/plain", "application/msword", "IMAGE/PNG", "image/png; charset=binary", ""} {
		assert.False(t, Allowed(typ), typ)
	}
}

func TestValidate_Rejection(t *testing.T) {
	err := Validate(File{Name: "anim.gif", Type: "image/gif"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	var rej *RejectionError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Please select a valid file type (PDF, DOCX, or image)", rej.UserMessage())
	assert.Equal(t, "anim.gif", rej.Name)
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "brief.pdf")

	f, err := FromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "brief.pdf", f.Name)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, TypePDF, f.Type)
	assert.Equal(t, int64(len("content")), f.Size)

	_, err = FromPath(dir)
	assert.ErrorIs(t, err, ErrNotRegularFile)

	_, err = FromPath(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

func TestUploader_SelectAccepted(t *testing.T) {
	sink := &recordingSink{}
	alerts := &alertRecorder{}
	u := NewUploader(sink, alerts.alert)

	path := writeFile(t, t.TempDir(), "brief.pdf")
	require.NoError(t, u.Select(context.Background(), path))

	got := sink.received()
	require.Len(t, got, 1)
	assert.Equal(t, "brief.pdf", got[0].Name)
	assert.Empty(t, alerts.messages)
}

func TestUploader_SelectRejectedRaisesAlert(t *testing.T) {
	sink := &recordingSink{}
	alerts := &alertRecorder{}
	u := NewUploader(sink, alerts.alert)

	path := writeFile(t, t.TempDir(), "anim.gif")
	err := u.Select(context.Background(), path)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	assert.Empty(t, sink.received(), "rejected file must not reach the store")
	assert.Equal(t, []string{RejectionMessage}, alerts.messages)
}

func TestUploader_DocOfferedButRejected(t *testing.T) {
	assert.Contains(t, PickerExtensions, ".doc")

	sink := &recordingSink{}
	u := NewUploader(sink, nil)
	path := writeFile(t, t.TempDir(), "legacy.doc")
	assert.ErrorIs(t, u.Select(context.Background(), path), ErrUnsupportedType)
	assert.Empty(t, sink.received())
}

func TestUploader_SinkErrorPropagates(t *testing.T) {
	boom := errors.New("busy")
	sink := &recordingSink{err: boom}
	u := NewUploader(sink, nil)

	path := writeFile(t, t.TempDir(), "pond.png")
	assert.ErrorIs(t, u.Select(context.Background(), path), boom)
}

func TestUploader_DropUsesFirstOnly(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.pdf")
	second := writeFile(t, dir, "second.pdf")

	sink := &recordingSink{}
	u := NewUploader(sink, nil)
	u.DropZone().Arm()

	require.NoError(t, u.Drop(context.Background(), []string{first, second}))

	got := sink.received()
	require.Len(t, got, 1)
	assert.Equal(t, "first.pdf", got[0].Name)
	assert.False(t, u.DropZone().Armed(), "drop disarms the zone")
}

func TestUploader_DropFirstRejected(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "anim.gif")
	good := writeFile(t, dir, "brief.pdf")

	sink := &recordingSink{}
	alerts := &alertRecorder{}
	u := NewUploader(sink, alerts.alert)

	err := u.Drop(context.Background(), []string{bad, good})
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, sink.received(), "later files are not tried")
	assert.Len(t, alerts.messages, 1)
}

func TestUploader_DropEmpty(t *testing.T) {
	u := NewUploader(&recordingSink{}, nil)
	assert.ErrorIs(t, u.Drop(context.Background(), nil), ErrNoFile)
}

func TestDropZone(t *testing.T) {
	var z DropZone
	assert.False(t, z.Armed())
	assert.Equal(t, LabelIdle, z.Label())

	z.Arm()
	assert.True(t, z.Armed())
	assert.Equal(t, "Drop file here", z.Label())

	z.Disarm()
	assert.False(t, z.Armed())
}

func TestDroppedPaths(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "brief.pdf")
	spaced := writeFile(t, dir, "site plan.docx")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single path", plain, []string{plain}},
		{"trailing newline", plain + "\n", []string{plain}},
		{"single quoted", "'" + spaced + "'", []string{spaced}},
		{"double quoted", `"` + spaced + `"`, []string{spaced}},
		{"escaped space", filepath.Join(dir, `site\ plan.docx`), []string{spaced}},
		{"file uri", "file://" + filepath.ToSlash(dir) + "/site%20plan.docx", []string{spaced}},
		{"two files", plain + " '" + spaced + "'", []string{plain, spaced}},
		{"prose", "how much does it cost", nil},
		{"path and prose", plain + " please", nil},
		{"missing file", filepath.Join(dir, "nope.pdf"), nil},
		{"directory", dir, nil},
		{"unterminated quote", "'" + plain, nil},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DroppedPaths(tt.input))
		})
	}
}
