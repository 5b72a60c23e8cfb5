package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeRenderer(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if len(c.Paths.TemplateDirs) == 0 {
		c.Paths.TemplateDirs = append([]string(nil), defaultTemplateDirs...)
	}
	dirs := make([]string, 0, len(c.Paths.TemplateDirs))
	for _, dir := range c.Paths.TemplateDirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("paths.template_dirs: %w", err)
		}
		dirs = append(dirs, expanded)
	}
	c.Paths.TemplateDirs = dirs

	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ScratchDir) == "" {
		c.Paths.ScratchDir = defaultCacheDir("scratch")
	}
	if c.Paths.ScratchDir, err = expandPath(c.Paths.ScratchDir); err != nil {
		return fmt.Errorf("paths.scratch_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRenderer() error {
	var err error
	if strings.TrimSpace(c.Renderer.ChromePath) != "" {
		if c.Renderer.ChromePath, err = expandPath(c.Renderer.ChromePath); err != nil {
			return fmt.Errorf("renderer.chrome_path: %w", err)
		}
	}
	if strings.TrimSpace(c.Renderer.ProfileDir) == "" {
		c.Renderer.ProfileDir = defaultCacheDir("profiles")
	}
	if c.Renderer.ProfileDir, err = expandPath(c.Renderer.ProfileDir); err != nil {
		return fmt.Errorf("renderer.profile_dir: %w", err)
	}
	if c.Renderer.RenderTimeout == 0 {
		c.Renderer.RenderTimeout = defaultRenderTimeout
	}
	if c.Renderer.MaxBackends == 0 {
		c.Renderer.MaxBackends = defaultMaxBackends
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		return nil
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
