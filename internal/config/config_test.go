package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored, got %v", err)
	}
	if cfg.Quiz.Difficulty != nil || cfg.Quiz.Category != nil || cfg.Quiz.Questions != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigReadsQuizSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[quiz]\ndifficulty = \"advanced\"\ncategory = \"tense\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Quiz.Difficulty == nil || *cfg.Quiz.Difficulty != "advanced" {
		t.Fatalf("unexpected difficulty: %v", cfg.Quiz.Difficulty)
	}
	if cfg.Quiz.Category == nil || *cfg.Quiz.Category != "tense" {
		t.Fatalf("unexpected category: %v", cfg.Quiz.Category)
	}
	if cfg.Quiz.Questions != nil {
		t.Fatalf("expected questions to stay unset")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[quiz]\nlevel = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "gramquiz", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "gramquiz", "gramquiz.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
