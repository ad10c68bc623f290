package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want Default() %+v", cfg, Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corvid.toml")
	contents := "threads = 4\nlog_level = \"debug\"\ndefault_depth = 8\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threads != 4 || cfg.LogLevel != "debug" || cfg.DefaultDepth != 8 {
		t.Fatalf("got %+v, want threads=4 log_level=debug default_depth=8", cfg)
	}
	if cfg.MoveOverheadMillis != Default().MoveOverheadMillis {
		t.Fatalf("unspecified field MoveOverheadMillis should keep its default, got %d", cfg.MoveOverheadMillis)
	}
}
