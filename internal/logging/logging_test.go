package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tile-roguelike/internal/config"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("shown", "tick", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d records; want 1:\n%s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "shown" || rec["tick"] != float64(3) {
		t.Errorf("record = %v", rec)
	}
	src, _ := rec["source"].(map[string]any)
	if file, _ := src["file"].(string); file != "logging_test.go" {
		t.Errorf("source file = %q; want the base name", file)
	}
}

func TestSetupWritesRotatingFile(t *testing.T) {
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "nested", "game.log")
	cfg.Level = "debug"

	logger, closer, err := Setup(cfg)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("map generated", "rooms", 4)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"map generated"`) {
		t.Errorf("log file missing record: %s", data)
	}
}

func TestSetupBadLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "chatty"
	if _, _, err := Setup(cfg); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
