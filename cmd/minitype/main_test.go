package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/minitype/internal/config"
	"github.com/verte-zerg/minitype/internal/generator"
	"github.com/verte-zerg/minitype/internal/model"
)

func resetFlags(t *testing.T) {
	t.Helper()
	practiceWordList = ""
	serveAddr = defaultAddr
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestWordsCmdPrintsDefaultVocabulary(t *testing.T) {
	resetFlags(t)
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"words"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) < model.DefaultWords || lines[0] != "time" {
		t.Fatalf("unexpected vocabulary output: %v", lines)
	}
	if strings.Count(out.String(), "work\n") != 1 {
		t.Fatalf("expected deduplicated vocabulary")
	}
}

func TestWordsCmdUsesConfigWordList(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	listPath := filepath.Join(dir, "words.txt")
	writeFile(t, listPath, "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\n")
	writeFile(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "minitype", "config.toml"),
		"[practice]\nwordlist = \""+listPath+"\"\n")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"words"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.Fields(out.String()); len(got) != 10 || got[0] != "a" {
		t.Fatalf("unexpected output %v", got)
	}
}

func TestWordListFlagOverridesConfig(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	configured := filepath.Join(dir, "configured.txt")
	flagged := filepath.Join(dir, "flagged.txt")
	writeFile(t, configured, "only\n")
	writeFile(t, flagged, "x\na\nb\nc\nd\ne\nf\ng\nh\ni\n")
	writeFile(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "minitype", "config.toml"),
		"[practice]\nwordlist = \""+configured+"\"\n")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"words", "--wordlist", flagged})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.Fields(out.String()); len(got) != 10 || got[0] != "x" {
		t.Fatalf("expected flag word list, got %v", got)
	}
}

func TestLoadVocabularyTooSmall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeFile(t, path, "one\ntwo\none\n")
	_, err := loadVocabulary(model.Config{Words: model.DefaultWords, WordListPath: path})
	if !errors.Is(err, generator.ErrNotEnoughWords) {
		t.Fatalf("expected ErrNotEnoughWords, got %v", err)
	}
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	_, err := loadVocabulary(model.Config{Words: model.DefaultWords, WordListPath: filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Fatalf("expected error for missing word list")
	}
}

func TestDisplayAddr(t *testing.T) {
	if got := displayAddr(":8080"); got != "localhost:8080" {
		t.Fatalf("unexpected addr %s", got)
	}
	if got := displayAddr("127.0.0.1:9000"); got != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %s", got)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, defaultConfigTemplate())
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template must decode: %v", err)
	}
	if cfg.Practice.WordList != nil || cfg.Serve.Addr != nil {
		t.Fatalf("template values must be commented out: %+v", cfg)
	}
}
