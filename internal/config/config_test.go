package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("dimensions should be positive")
	}
	if cfg.MaxIterations != 100 {
		t.Errorf("expected 100 iterations, got %d", cfg.MaxIterations)
	}
	if cfg.Palette != "spectrum" {
		t.Errorf("expected palette spectrum, got %s", cfg.Palette)
	}
	if cfg.Region != "overview" {
		t.Errorf("expected region overview, got %s", cfg.Region)
	}
	if cfg.Workers <= 0 {
		t.Error("workers should default to the cpu count")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractview.yaml")

	cfg := DefaultConfig()
	cfg.Width = 1024
	cfg.MaxIterations = 500
	cfg.Palette = "fire"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Width != 1024 || loaded.MaxIterations != 500 || loaded.Palette != "fire" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("width: 320\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Width != 320 {
		t.Errorf("expected width 320, got %d", cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("unset height should keep default, got %d", cfg.Height)
	}
	if cfg.Palette != DefaultPalette {
		t.Errorf("unset palette should keep default, got %s", cfg.Palette)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
