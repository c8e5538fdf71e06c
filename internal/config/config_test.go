package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}

	if cfg.App.Port != 8080 || cfg.App.LogLevel != "info" {
		t.Fatalf("Unexpected app defaults %+v", cfg.App)
	}
	if cfg.Segmenter.ContextSize != 2 || cfg.Segmenter.TrainingMark != "+" || cfg.Segmenter.SmoothingK != 1.0 {
		t.Fatalf("Unexpected segmenter defaults %+v", cfg.Segmenter)
	}
	if cfg.Kwic.Window != 8 {
		t.Fatalf("Expected kwic window 8, got %d", cfg.Kwic.Window)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	data := []byte(`
app:
  port: 9090
  log_level: debug
segmenter:
  context_size: 3
  training_mark: "#"
  training_corpus: /data/tagged.txt
mcp:
  enabled: true
  host: localhost
  port: 9191
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.App.Port != 9090 || cfg.App.LogLevel != "debug" {
		t.Fatalf("Unexpected app config %+v", cfg.App)
	}
	if cfg.Segmenter.ContextSize != 3 || cfg.Segmenter.TrainingMark != "#" {
		t.Fatalf("Unexpected segmenter config %+v", cfg.Segmenter)
	}
	if cfg.Segmenter.TrainingCorpus != "/data/tagged.txt" {
		t.Fatalf("Expected training corpus path, got %q", cfg.Segmenter.TrainingCorpus)
	}
	if cfg.Mcp.GetAddress() != "localhost:9191" {
		t.Fatalf("Expected MCP address localhost:9191, got %s", cfg.Mcp.GetAddress())
	}
	if cfg.Kwic.Window != 8 {
		t.Fatalf("Expected default kwic window, got %d", cfg.Kwic.Window)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("app:\n  port: 70000\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("Expected an error for an invalid port")
	}
}
