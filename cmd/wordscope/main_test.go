package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wordscope/wordscope/internal/app"
)

func defaultFlagConfig() app.Config {
	return app.Config{
		ListenAddr:    app.DefaultListenAddr,
		MaxBodyBytes:  app.DefaultMaxBodyBytes,
		StopwordsPath: app.DefaultStopwordsPath,
		FontPath:      app.DefaultFontPath,
	}
}

func TestResolveConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("WORDSCOPE_LISTEN", ":6060")

	flags := defaultFlagConfig()
	flags.ListenAddr = ":3000"
	cfg, err := resolveConfig(flags, map[string]bool{"listen": true}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":3000" {
		t.Fatalf("explicit flag must beat env, got %q", cfg.ListenAddr)
	}
}

func TestResolveConfig_EnvBeatsFile(t *testing.T) {
	t.Setenv("WORDSCOPE_LISTEN", ":6060")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveConfig(defaultFlagConfig(), nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":6060" {
		t.Fatalf("env must beat file config, got %q", cfg.ListenAddr)
	}
}

func TestResolveConfig_FileFillsDefaultedFlags(t *testing.T) {
	t.Setenv("WORDSCOPE_LISTEN", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("listen: \":9090\"\nstopwords: \"from-file.txt\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := resolveConfig(defaultFlagConfig(), nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("file config must fill defaulted flags, got %q", cfg.ListenAddr)
	}
	if cfg.StopwordsPath != "from-file.txt" {
		t.Fatalf("file config must fill defaulted stopwords path, got %q", cfg.StopwordsPath)
	}
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	if _, err := resolveConfig(defaultFlagConfig(), nil, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
