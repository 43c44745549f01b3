package main

import (
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/gravitor/parameter"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(false, slog.LevelInfo, "text")
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected discarding logger when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(parameter.LogDir); !os.IsNotExist(err) {
		t.Error("logs directory created without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(true, slog.LevelInfo, "text")
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}

	logger.Info("test message", "k", 1)
	logger.Debug("filtered out")
	log.Println("legacy message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	for _, want := range []string{"test message", "k=1", "legacy message"} {
		if !strings.Contains(text, want) {
			t.Errorf("log missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "filtered out") {
		t.Error("debug record written at info level")
	}
}

func TestSetupLogging_JSON(t *testing.T) {
	t.Chdir(t.TempDir())

	logger, logFile := setupLogging(true, slog.LevelDebug, "json")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()
	logger.Debug("json record", "tick", 7)

	data, err := os.ReadFile(filepath.Join(parameter.LogDir, parameter.LogFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &rec); err != nil {
		t.Fatalf("last line is not JSON: %v", err)
	}
	if rec["msg"] != "json record" || rec["tick"] != float64(7) {
		t.Errorf("record = %v", rec)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	if err := os.WriteFile(logPath, make([]byte, parameter.MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	_, logFile := setupLogging(true, slog.LevelInfo, "text")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(parameter.LogDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != parameter.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > parameter.MaxLogSize {
		t.Errorf("new log file is %d bytes, want below %d", info.Size(), parameter.MaxLogSize)
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	t.Chdir(t.TempDir())

	_, logFile := setupLogging(true, slog.LevelInfo, "text")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
