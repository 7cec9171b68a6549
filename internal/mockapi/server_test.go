// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mockapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/algaeverse-tui/internal/remote"
)

func chatContext(t *testing.T, s *Server, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func uploadContext(t *testing.T, s *Server, name, contentType, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func TestChat_Success(t *testing.T) {
	s := New(Options{})
	c, rec := chatContext(t, s, `{"message":"What would it cost?","userCountry":"Malaysia"}`)

	require.NoError(t, s.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var reply remote.ChatReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.True(t, reply.Success)
	assert.True(t, reply.HasCurrentData)
	assert.Contains(t, reply.Response, "Cost Analysis")
	assert.Contains(t, reply.Response, "Malaysia")
}

func TestChat_MentionsFile(t *testing.T) {
	s := New(Options{})
	c, rec := chatContext(t, s, `{"message":"tell me about the climate impact","fileData":{"fileName":"site.pdf","extractedText":"x","filePath":"uploads/site.pdf"},"userCountry":""}`)

	require.NoError(t, s.Chat(c))
	var reply remote.ChatReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Contains(t, reply.Response, "Environmental Impact")
	assert.Contains(t, reply.Response, "site.pdf")
	assert.False(t, reply.HasCurrentData)
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		body   string
		status int
	}{
		{"blank message", Options{}, `{"message":"  "}`, http.StatusBadRequest},
		{"bad json", Options{}, `{"message":`, http.StatusBadRequest},
		{"forced failure", Options{FailChat: true}, `{"message":"hi"}`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.opts)
			c, rec := chatContext(t, s, tt.body)
			require.NoError(t, s.Chat(c))
			assert.Equal(t, tt.status, rec.Code)

			var reply remote.ChatReply
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
			assert.False(t, reply.Success)
			assert.NotEmpty(t, reply.Error)
		})
	}
}

func TestUpload_Success(t *testing.T) {
	s := New(Options{})
	c, rec := uploadContext(t, s, "brief.pdf", "application/pdf", "%PDF-1.7")

	require.NoError(t, s.Upload(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var reply remote.UploadReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.True(t, reply.Success)
	assert.Equal(t, "brief.pdf", reply.FileName)
	assert.Contains(t, reply.ExtractedText, "8 bytes")
	assert.True(t, strings.HasPrefix(reply.FilePath, "uploads/"))
	assert.True(t, strings.HasSuffix(reply.FilePath, "-brief.pdf"))
}

func TestUpload_RejectsType(t *testing.T) {
	s := New(Options{})
	c, rec := uploadContext(t, s, "anim.gif", "image/gif", "GIF89a")

	require.NoError(t, s.Upload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var reply remote.UploadReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.False(t, reply.Success)
	assert.Equal(t, "Invalid file type", reply.Error)
}

func TestUpload_MissingFile(t *testing.T) {
	s := New(Options{})
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()

	require.NoError(t, s.Upload(s.echo.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	s := New(Options{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
