package testsupport

import (
	"path/filepath"
	"testing"

	"frameforge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.TemplateDirs = []string{filepath.Join(base, "templates")}
	cfgVal.Paths.OutputDir = filepath.Join(base, "output")
	cfgVal.Paths.ScratchDir = filepath.Join(base, "scratch")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Renderer.ProfileDir = filepath.Join(base, "profiles")
	cfgVal.History.Enabled = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithHistory enables the render-history store backed by a per-test database.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
		b.cfg.History.Path = filepath.Join(b.baseDir, "history.db")
	}
}

// WithTemplateDirs replaces the template roots on the test config.
func WithTemplateDirs(dirs ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.TemplateDirs = dirs
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
