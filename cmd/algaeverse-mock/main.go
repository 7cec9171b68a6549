// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command algaeverse-mock serves a canned stand-in for the AlgaeVerse
// backend so the terminal client can run offline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jeranaias/algaeverse-tui/internal/mockapi"
)

const version = "0.1.0"

func main() {
	addr := ":8787"
	opts := mockapi.Options{}
	verbose := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--addr", "-a":
			if i+1 < len(args) {
				i++
				addr = args[i]
			}
		case "--delay", "-d":
			if i+1 < len(args) {
				i++
				ms, err := strconv.Atoi(args[i])
				if err != nil || ms < 0 {
					fmt.Fprintf(os.Stderr, "invalid --delay %q: want milliseconds\n", args[i])
					os.Exit(2)
				}
				opts.Delay = time.Duration(ms) * time.Millisecond
			}
		case "--fail-chat":
			opts.FailChat = true
		case "--verbose", "-v":
			verbose = true
		case "--help", "-h":
			printHelp()
			return
		case "--version":
			fmt.Printf("algaeverse-mock v%s\n", version)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n", arg)
			printHelp()
			os.Exit(2)
		}
	}

	logger, err := newLogger(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	opts.Logger = logger

	srv := mockapi.New(opts)

	go func() {
		if err := srv.Start(addr); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func printHelp() {
	fmt.Println(`algaeverse-mock v` + version + `

Usage: algaeverse-mock [OPTIONS]

Options:
  --addr, -a ADDR    Listen address (default :8787)
  --delay, -d MS     Delay every chat reply by MS milliseconds
  --fail-chat        Answer every chat with {"success": false}
  --verbose, -v      Debug logging
  --help, -h         Show this help
  --version          Show version

Point the client at it with:
  algaeverse --base-url http://localhost:8787`)
}
