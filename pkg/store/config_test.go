package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATEFIELD_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Format != "L" || cfg.Locale != "en-US" || cfg.Density != "dense" || cfg.MinutesStep != 1 || cfg.ValueType != "date-time" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Path == "~/.datefield" || filepath.Base(cfg.Path) != ".datefield" {
		t.Fatalf("expected an expanded path, got %q", cfg.Path)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATEFIELD_CONFIG_PATH", dir)
	t.Chdir(t.TempDir())
	yaml := "format: DD.MM.YYYY\nlocale: en-GB\nminutes_step: 15\nrtl: true\nplaceholders:\n  day: jj\n"
	if err := os.WriteFile(filepath.Join(dir, ".datefield.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Format != "DD.MM.YYYY" || cfg.Locale != "en-GB" || cfg.MinutesStep != 15 || !cfg.RTL {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Placeholders["day"] != "jj" {
		t.Fatalf("expected the day placeholder override, got %v", cfg.Placeholders)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("DATEFIELD_CONFIG_PATH", t.TempDir())
	t.Setenv("DATEFIELD_FORMAT", "YYYY")
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Format != "YYYY" {
		t.Fatalf("expected the environment to win, got %q", cfg.Format)
	}
}
