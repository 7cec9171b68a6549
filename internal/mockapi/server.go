// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package mockapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jeranaias/algaeverse-tui/internal/model"
	"github.com/jeranaias/algaeverse-tui/internal/remote"
	"github.com/jeranaias/algaeverse-tui/internal/thinking"
	"github.com/jeranaias/algaeverse-tui/internal/upload"
)

// MaxUploadBytes caps accepted upload bodies.
const MaxUploadBytes = 10 << 20

// Options configures the mock server.
type Options struct {
	// Delay is added before every chat reply, so the thinking panel has
	// something to show.
	Delay time.Duration
	// FailChat makes every chat reply a {success:false} envelope.
	FailChat bool
	Logger   *zap.Logger
}

// Server is the mock backend.
type Server struct {
	echo    *echo.Echo
	opts    Options
	logger  *zap.Logger
	planner *thinking.Planner

	mu      sync.Mutex
	uploads map[string]model.FileContext
	chats   int
}

// New creates a server with its routes and middleware registered.
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		echo:    echo.New(),
		opts:    opts,
		logger:  logger.Named("mockapi"),
		planner: thinking.DefaultPlanner(),
		uploads: make(map[string]model.FileContext),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	s.RegisterRoutes(s.echo)
	return s
}

// RegisterRoutes registers the backend routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST(remote.DefaultChatPath, s.Chat)
	e.POST(remote.DefaultUploadPath, s.Upload)
	e.GET("/health", s.Health)
}

// Handler exposes the server for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("mock backend listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Chat answers POST /api/chat.
func (s *Server) Chat(c echo.Context) error {
	var req remote.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, remote.ChatReply{Error: "Invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, remote.ChatReply{Error: "Message is required"})
	}

	s.mu.Lock()
	s.chats++
	s.mu.Unlock()

	if s.opts.Delay > 0 {
		select {
		case <-time.After(s.opts.Delay):
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	if s.opts.FailChat {
		return c.JSON(http.StatusInternalServerError, remote.ChatReply{Error: "Failed to generate response"})
	}

	branch := s.planner.Classify(req.Message, req.UserCountry).Name
	s.logger.Debug("chat",
		zap.String("branch", branch),
		zap.Bool("file", req.FileData != nil))

	return c.JSON(http.StatusOK, remote.ChatReply{
		Success:        true,
		Response:       composeReply(branch, req.UserCountry, req.FileData),
		HasCurrentData: strings.TrimSpace(req.UserCountry) != "",
	})
}

// Upload answers POST /api/upload.
func (s *Server) Upload(c echo.Context) error {
	fh, err := c.FormFile(remote.UploadField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, remote.UploadReply{Error: "No file uploaded"})
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if !upload.Allowed(contentType) {
		return c.JSON(http.StatusBadRequest, remote.UploadReply{Error: "Invalid file type"})
	}
	if fh.Size > MaxUploadBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, remote.UploadReply{Error: "File too large"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, remote.UploadReply{Error: "Failed to read file"})
	}
	defer src.Close()

	n, err := io.Copy(io.Discard, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, remote.UploadReply{Error: "Failed to read file"})
	}

	name := filepath.Base(fh.Filename)
	fc := model.FileContext{
		FileName:      name,
		ExtractedText: fmt.Sprintf("[%d bytes of %s from %s]", n, contentType, name),
		FilePath:      "uploads/" + uuid.NewString() + "-" + name,
	}

	s.mu.Lock()
	s.uploads[fc.FilePath] = fc
	s.mu.Unlock()

	return c.JSON(http.StatusOK, remote.UploadReply{
		Success:       true,
		FileName:      fc.FileName,
		ExtractedText: fc.ExtractedText,
		FilePath:      fc.FilePath,
	})
}

// Health answers GET /health.
func (s *Server) Health(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"chats":   s.chats,
		"uploads": len(s.uploads),
	})
}
