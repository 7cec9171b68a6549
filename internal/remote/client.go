// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultBaseURL is the production backend.
	DefaultBaseURL = "https://algaeverse.kenn.my"

	// DefaultChatPath is the chat endpoint.
	DefaultChatPath = "/api/chat"

	// DefaultUploadPath is the upload endpoint.
	DefaultUploadPath = "/api/upload"

	// MaxResponseSize is the default cap on reply bodies.
	MaxResponseSize = 10 * 1024 * 1024

	// UploadField is the multipart field carrying the file.
	UploadField = "file"

	defaultUserAgent = "algaeverse-tui"
)

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the chat and upload endpoints.
type Client struct {
	baseURL     string
	chatPath    string
	uploadPath  string
	userAgent   string
	maxResponse int64
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a client for the backend at baseURL. The client sets no
// request timeout; bound requests with the context or WithTimeout.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		chatPath:    DefaultChatPath,
		uploadPath:  DefaultUploadPath,
		userAgent:   defaultUserAgent,
		maxResponse: MaxResponseSize,
		httpClient:  &http.Client{},
		logger:      zap.NewNop(),
	}
}

// WithPaths overrides the endpoint paths.
func (c *Client) WithPaths(chatPath, uploadPath string) *Client {
	if chatPath != "" {
		c.chatPath = chatPath
	}
	if uploadPath != "" {
		c.uploadPath = uploadPath
	}
	return c
}

// WithTimeout sets a per-request timeout. Zero disables it.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// WithUserAgent sets the User-Agent header.
func (c *Client) WithUserAgent(ua string) *Client {
	if ua != "" {
		c.userAgent = ua
	}
	return c
}

// WithMaxResponseSize caps how many reply bytes are read.
func (c *Client) WithMaxResponseSize(n int64) *Client {
	if n > 0 {
		c.maxResponse = n
	}
	return c
}

// WithLogger sets the diagnostic logger.
func (c *Client) WithLogger(logger *zap.Logger) *Client {
	if logger != nil {
		c.logger = logger.Named("remote")
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ChatURL returns the full chat endpoint URL.
func (c *Client) ChatURL() string {
	return c.baseURL + c.chatPath
}

// UploadURL returns the full upload endpoint URL.
func (c *Client) UploadURL() string {
	return c.baseURL + c.uploadPath
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Chat sends a message and returns the successful envelope. A success=false
// envelope is returned as an *EnvelopeError.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var reply ChatReply
	status, err := c.do(ctx, c.ChatURL(), "application/json", bytes.NewReader(body), &reply)
	if err != nil {
		return nil, err
	}
	if !reply.Success {
		return nil, &EnvelopeError{Op: "chat", Message: orDefault(reply.Error, "Failed to get response"), Status: status}
	}

	c.logger.Info("chat reply received",
		zap.Int("status", status),
		zap.Int("response_len", len(reply.Response)),
		zap.Bool("has_current_data", reply.HasCurrentData))
	return &reply, nil
}

// Upload sends a file under the "file" multipart field. contentType is
// declared on the part; empty means application/octet-stream.
func (c *Client) Upload(ctx context.Context, name, contentType string, r io.Reader) (*UploadReply, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+UploadField+`"; filename="`+escapeQuotes(name)+`"`)
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read upload source: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	var reply UploadReply
	status, err := c.do(ctx, c.UploadURL(), mw.FormDataContentType(), &buf, &reply)
	if err != nil {
		return nil, err
	}
	if !reply.Success {
		return nil, &EnvelopeError{Op: "upload", Message: orDefault(reply.Error, "File upload failed"), Status: status}
	}

	c.logger.Info("upload reply received",
		zap.Int("status", status),
		zap.String("file_name", reply.FileName),
		zap.Int("extracted_len", len(reply.ExtractedText)))
	return &reply, nil
}

// =============================================================================
// INTERNALS
// =============================================================================

func (c *Client) setHeaders(req *http.Request, contentType string) {
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
}

// do posts body to url and decodes the reply envelope into out. The envelope
// is decoded whatever the HTTP status, and the status is returned.
func (c *Client) do(ctx context.Context, url, contentType string, body io.Reader, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req, contentType)

	start := time.Now()
	c.logger.Debug("api request", zap.String("method", req.Method), zap.String("path", req.URL.Path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", zap.String("path", req.URL.Path), zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api response",
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	data, err := c.readResponse(resp)
	if err != nil {
		return resp.StatusCode, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("malformed reply",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return resp.StatusCode, fmt.Errorf("%w (HTTP %d): %v", ErrMalformedReply, resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}

// readResponse reads the body up to the configured limit.
func (c *Client) readResponse(resp *http.Response) ([]byte, error) {
	// Read one byte past the limit so an exact-size body is still accepted.
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponse+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}
	if int64(len(data)) > c.maxResponse {
		return nil, fmt.Errorf("%w (%d bytes)", ErrReplyTooLarge, c.maxResponse)
	}
	return data, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
