package render

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"frameforge/internal/logging"
)

// Options configures the pool and the backends it spawns.
type Options struct {
	// ChromePath overrides chromedp's browser discovery when set.
	ChromePath string
	// ProfileDir is the parent directory for per-size browser profiles.
	ProfileDir string
	// ScratchDir receives in-flight screenshots before relocation.
	ScratchDir string
	// Timeout bounds a single rasterization; zero disables the bound.
	Timeout time.Duration
	// MaxBackends caps live backends; the least recently used one is closed
	// when a new size would exceed the cap. Values below one mean one.
	MaxBackends int
	Logger      *slog.Logger
}

// rasterizer is the per-size backend surface the pool manages; the indirection
// exists so pool behaviour is testable without a browser.
type rasterizer interface {
	Rasterize(ctx context.Context, html string) (string, error)
	Close() error
}

// Pool lazily constructs rendering backends keyed by requested size and
// reuses them across renders. Keying by size (rather than reusing whatever
// size the first call happened to request) guarantees every render hits a
// correctly sized browser.
type Pool struct {
	opts  Options
	spawn func(Options, Size) (rasterizer, error)

	mu       sync.Mutex
	backends map[Size]rasterizer
	lastUse  map[Size]time.Time
	closed   bool
}

// NewPool builds an empty pool; no browser is spawned until the first
// Rasterize call.
func NewPool(opts Options) *Pool {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.MaxBackends < 1 {
		opts.MaxBackends = 1
	}
	return &Pool{
		opts: opts,
		spawn: func(o Options, s Size) (rasterizer, error) {
			return newBackend(o, s)
		},
		backends: make(map[Size]rasterizer),
		lastUse:  make(map[Size]time.Time),
	}
}

// Rasterize renders html at the requested size, constructing a backend for
// that size on first use, and returns the scratch path of the screenshot.
func (p *Pool) Rasterize(ctx context.Context, html string, size Size) (string, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return "", fmt.Errorf("%w: invalid size %s", ErrFailed, size)
	}
	backend, err := p.acquire(size)
	if err != nil {
		return "", err
	}
	return backend.Rasterize(ctx, html)
}

func (p *Pool) acquire(size Size) (rasterizer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, fmt.Errorf("%w: pool is closed", ErrFailed)
	}
	if backend, ok := p.backends[size]; ok {
		p.lastUse[size] = time.Now()
		return backend, nil
	}

	if len(p.backends) >= p.opts.MaxBackends {
		p.evictOldest()
	}

	backend, err := p.spawn(p.opts, size)
	if err != nil {
		return nil, err
	}
	p.backends[size] = backend
	p.lastUse[size] = time.Now()
	p.opts.Logger.Debug("backend added to pool",
		logging.String(logging.FieldComponent, "render"),
		logging.Int(logging.FieldWidth, size.Width),
		logging.Int(logging.FieldHeight, size.Height),
		logging.Int("pool_size", len(p.backends)))
	return backend, nil
}

func (p *Pool) evictOldest() {
	var oldest Size
	var oldestAt time.Time
	first := true
	for size, at := range p.lastUse {
		if first || at.Before(oldestAt) {
			oldest, oldestAt = size, at
			first = false
		}
	}
	if first {
		return
	}
	if backend, ok := p.backends[oldest]; ok {
		if err := backend.Close(); err != nil {
			p.opts.Logger.Warn("close evicted backend",
				logging.String(logging.FieldComponent, "render"),
				logging.Error(err))
		}
	}
	delete(p.backends, oldest)
	delete(p.lastUse, oldest)
}

// Sizes returns the resolutions with a live backend, for diagnostics.
func (p *Pool) Sizes() []Size {
	p.mu.Lock()
	defer p.mu.Unlock()
	sizes := make([]Size, 0, len(p.backends))
	for size := range p.backends {
		sizes = append(sizes, size)
	}
	return sizes
}

// Close shuts down every live backend. The pool is unusable afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var firstErr error
	for size, backend := range p.backends {
		if err := backend.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close backend %s: %w", size, err)
		}
		delete(p.backends, size)
		delete(p.lastUse, size)
	}
	return firstErr
}
