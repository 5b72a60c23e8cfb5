package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultOutputDir     = "~/.local/share/frameforge/output"
	defaultLogDir        = "~/.local/share/frameforge/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRenderTimeout = 60
	defaultMaxBackends   = 4
)

var defaultTemplateDirs = []string{
	"~/.local/share/frameforge/templates",
	"templates",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			TemplateDirs: append([]string(nil), defaultTemplateDirs...),
			OutputDir:    defaultOutputDir,
			ScratchDir:   defaultCacheDir("scratch"),
			LogDir:       defaultLogDir,
		},
		Renderer: Renderer{
			RenderTimeout: defaultRenderTimeout,
			ProfileDir:    defaultCacheDir("profiles"),
			MaxBackends:   defaultMaxBackends,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCacheDir(sub string) string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "frameforge", sub)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~/.cache/frameforge", sub)
	}
	return filepath.Join(home, ".cache", "frameforge", sub)
}
