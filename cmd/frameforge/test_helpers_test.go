package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frameforge/internal/config"
	"frameforge/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))

	cfg := testsupport.NewConfig(t, opts...)

	configPath := filepath.Join(homeDir, ".config", "frameforge", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	var b strings.Builder
	b.WriteString("[paths]\n")
	b.WriteString("template_dirs = [")
	for i, dir := range cfg.Paths.TemplateDirs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", dir)
	}
	b.WriteString("]\n")
	fmt.Fprintf(&b, "output_dir = %q\n", cfg.Paths.OutputDir)
	fmt.Fprintf(&b, "scratch_dir = %q\n", cfg.Paths.ScratchDir)
	fmt.Fprintf(&b, "log_dir = %q\n\n", cfg.Paths.LogDir)
	b.WriteString("[renderer]\n")
	fmt.Fprintf(&b, "profile_dir = %q\n", cfg.Renderer.ProfileDir)
	fmt.Fprintf(&b, "render_timeout = %d\n", cfg.Renderer.RenderTimeout)
	fmt.Fprintf(&b, "max_backends = %d\n\n", cfg.Renderer.MaxBackends)
	b.WriteString("[history]\n")
	fmt.Fprintf(&b, "enabled = %t\n", cfg.History.Enabled)
	if cfg.History.Path != "" {
		fmt.Fprintf(&b, "path = %q\n", cfg.History.Path)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
