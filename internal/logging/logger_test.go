package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("parsing log line %q: %v", scanner.Text(), err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLoggerWritesJSON(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "INFO", DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("navigated", "page", "products")
	logger.Debug("should be filtered at info level")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readEntries(t, filepath.Join(dir, "stockdeck.log"))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (debug filtered)", len(entries))
	}
	if entries[0]["msg"] != "navigated" {
		t.Errorf("msg = %v, want %q", entries[0]["msg"], "navigated")
	}
	if entries[0]["page"] != "products" {
		t.Errorf("page = %v, want %q", entries[0]["page"], "products")
	}
}

func TestNewLoggerRequiresDir(t *testing.T) {
	if _, err := NewLogger("", "INFO", DefaultRotationConfig()); err == nil {
		t.Error("NewLogger(\"\") = nil error, want error")
	}
}

func TestWithComponentAttrs(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "DEBUG", DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	child := logger.WithComponent("nav").With("theme", "nord")
	child.Debug("theme changed")
	logger.Info("no component")
	logger.Close()

	entries := readEntries(t, filepath.Join(dir, "stockdeck.log"))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["component"] != "nav" {
		t.Errorf("component = %v, want %q", entries[0]["component"], "nav")
	}
	if entries[0]["theme"] != "nord" {
		t.Errorf("theme = %v, want %q", entries[0]["theme"], "nord")
	}
	// Child attrs must not leak into the parent.
	if _, ok := entries[1]["component"]; ok {
		t.Error("parent entry has component attr from child logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	logger.Info("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRotatingWriterRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	defer rw.Close()

	// Three writes of ~600KB each force two rotations.
	chunk := []byte(strings.Repeat("x", 600*1024) + "\n")
	for i := 0; i < 3; i++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("live log file missing: %v", err)
	}
	if _, err := os.Stat(path + ".1"); err != nil {
		t.Errorf("backup .1 missing: %v", err)
	}
	if rw.CurrentSize() > 1024*1024 {
		t.Errorf("CurrentSize() = %d, want under the 1MB limit", rw.CurrentSize())
	}
}

func TestRotatingWriterDropsOldest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	defer rw.Close()

	chunk := []byte(strings.Repeat("y", 700*1024) + "\n")
	for i := 0; i < 4; i++ {
		if _, err := rw.Write(chunk); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	if _, err := os.Stat(path + ".2"); err == nil {
		t.Error("backup .2 exists, want at most 1 backup")
	}
}

func TestRotatingWriterClosedWrite(t *testing.T) {
	dir := t.TempDir()
	rw, err := NewRotatingWriter(filepath.Join(dir, "app.log"), DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewRotatingWriter() error = %v", err)
	}
	if err := rw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := rw.Write([]byte("late")); err == nil {
		t.Error("Write() after Close() = nil error, want error")
	}
	// Double close is fine.
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
