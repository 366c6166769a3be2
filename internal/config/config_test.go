package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Practice.WordList != nil || cfg.Serve.Addr != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[practice]\nwordlist = \"/tmp/words.txt\"\n\n[serve]\naddr = \":9000\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.WordList == nil || *cfg.Practice.WordList != "/tmp/words.txt" {
		t.Fatalf("unexpected wordlist: %v", cfg.Practice.WordList)
	}
	if cfg.Serve.Addr == nil || *cfg.Serve.Addr != ":9000" {
		t.Fatalf("unexpected addr: %v", cfg.Serve.Addr)
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nwords = 25\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "minitype", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := ExpandHome("~/words.txt"); got != filepath.Join(home, "words.txt") {
		t.Fatalf("unexpected expansion: %s", got)
	}
	if got := ExpandHome("/abs/words.txt"); got != "/abs/words.txt" {
		t.Fatalf("absolute path changed: %s", got)
	}
}
