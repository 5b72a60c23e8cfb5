package main

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"frameforge/internal/config"
	"frameforge/internal/frame"
	"frameforge/internal/history"
	"frameforge/internal/logging"
	"frameforge/internal/output"
	"frameforge/internal/preflight"
	"frameforge/internal/render"
	"frameforge/internal/template"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) resolver() (*template.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return template.NewResolver(cfg.Paths.TemplateDirs...), nil
}

// withEngine builds a fully wired engine, runs fn against it, and tears the
// engine down afterwards. The browser pool only spawns on first render, so
// schema-only callers pay nothing for the wiring.
func (c *commandContext) withEngine(fn func(*frame.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	if res := preflight.CheckFonts(context.Background()); !res.Passed {
		logger.Warn("font preflight", logging.String("detail", res.Detail))
	}

	alloc, err := output.NewAllocator(cfg.Paths.OutputDir)
	if err != nil {
		return err
	}

	pool := render.NewPool(render.Options{
		ChromePath:  cfg.Renderer.ChromePath,
		ProfileDir:  cfg.Renderer.ProfileDir,
		ScratchDir:  cfg.Paths.ScratchDir,
		Timeout:     time.Duration(cfg.Renderer.RenderTimeout) * time.Second,
		MaxBackends: cfg.Renderer.MaxBackends,
		Logger:      logger,
	})

	opts := []frame.Option{frame.WithLogger(logger)}
	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.HistoryPath())
		if err != nil {
			_ = pool.Close()
			return fmt.Errorf("open history store: %w", err)
		}
		opts = append(opts, frame.WithRecorder(store))
	}

	engine := frame.New(template.NewResolver(cfg.Paths.TemplateDirs...), alloc, pool, opts...)
	defer func() {
		_ = engine.Close()
		if store != nil {
			_ = store.Close()
		}
	}()

	return fn(engine)
}

func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("render history is disabled in the configuration")
	}
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()
	return fn(store)
}
