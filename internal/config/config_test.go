package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frameforge/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantOutput := filepath.Join(tempHome, ".local", "share", "frameforge", "output")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	if len(cfg.Paths.TemplateDirs) == 0 {
		t.Fatal("expected default template dirs")
	}
	if cfg.Paths.TemplateDirs[0] != filepath.Join(tempHome, ".local", "share", "frameforge", "templates") {
		t.Fatalf("unexpected template dir: %q", cfg.Paths.TemplateDirs[0])
	}
	if !filepath.IsAbs(cfg.Paths.ScratchDir) {
		t.Fatalf("expected absolute scratch dir, got %q", cfg.Paths.ScratchDir)
	}
	if cfg.Renderer.RenderTimeout != 60 {
		t.Fatalf("unexpected render timeout: %d", cfg.Renderer.RenderTimeout)
	}
	if cfg.Renderer.MaxBackends != 4 {
		t.Fatalf("unexpected backend cap: %d", cfg.Renderer.MaxBackends)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if got := cfg.HistoryPath(); got != filepath.Join(cfg.Paths.LogDir, "history.db") {
		t.Fatalf("unexpected history path: %q", got)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.ScratchDir, cfg.Paths.LogDir, cfg.Renderer.ProfileDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadReadsFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`template_dirs = ["` + filepath.ToSlash(filepath.Join(dir, "tpl")) + `"]`,
		`output_dir = "` + filepath.ToSlash(filepath.Join(dir, "out")) + `"`,
		`log_dir = "` + filepath.ToSlash(filepath.Join(dir, "logs")) + `"`,
		"[renderer]",
		"render_timeout = 5",
		"max_backends = 2",
		"[history]",
		"enabled = false",
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Renderer.RenderTimeout != 5 {
		t.Fatalf("unexpected timeout: %d", cfg.Renderer.RenderTimeout)
	}
	if cfg.History.Enabled {
		t.Fatal("expected history disabled")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"no template dirs", func(c *config.Config) { c.Paths.TemplateDirs = nil }},
		{"empty output dir", func(c *config.Config) { c.Paths.OutputDir = "" }},
		{"negative timeout", func(c *config.Config) { c.Renderer.RenderTimeout = -1 }},
		{"zero backends", func(c *config.Config) { c.Renderer.MaxBackends = 0 }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Format = "console"
			cfg.Logging.Level = "info"
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[renderer]") {
		t.Fatal("expected sample to contain renderer section")
	}
}
