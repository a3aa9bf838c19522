package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faizmokh/masa/internal/files"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.DataFile != files.DefaultDataFile {
		t.Fatalf("DataFile = %q, want %q", cfg.DataFile, files.DefaultDataFile)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_file: ~/logs/masa.json\ntick: 500ms\nstale_after: 12h\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "~/logs/masa.json" {
		t.Fatalf("DataFile = %q", cfg.DataFile)
	}
	if cfg.Tick != 500*time.Millisecond {
		t.Fatalf("Tick = %s, want 500ms", cfg.Tick)
	}
	if cfg.StaleAfter != 12*time.Hour {
		t.Fatalf("StaleAfter = %s, want 12h", cfg.StaleAfter)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tick: [not a duration"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted invalid YAML")
	}
}
