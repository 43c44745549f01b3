package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/gravitor/parameter"
)

// setupLogging routes slog and the log package to the rotating log file when debug is set
// The terminal owns stdout and stderr, so nothing is ever written there; without debug all
// output is discarded and the returned file is nil
func setupLogging(debug bool, level slog.Level, format string) (*slog.Logger, *os.File) {
	if !debug {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(f, opts)
	} else {
		handler = slog.NewTextHandler(f, opts)
	}
	logger := slog.New(handler)

	// SetDefault also points the log package at the handler
	slog.SetDefault(logger)
	logger.Info("logging started", "pid", os.Getpid(), "level", level.String())
	return logger, f
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= parameter.MaxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	os.Rename(logPath, rotated)
}
