package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"frameforge/internal/logging"
)

// Size identifies a backend by its target resolution.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Backend owns one headless browser process sized to a fixed resolution.
// The underlying browser session is not safe for concurrent screenshot
// requests, so Rasterize holds a mutex for the whole call.
type Backend struct {
	size       Size
	scratchDir string
	timeout    time.Duration
	logger     *slog.Logger

	lock          *flock.Flock
	allocCancel   context.CancelFunc
	browserCancel context.CancelFunc
	browserCtx    context.Context

	mu     sync.Mutex
	closed bool
}

// newBackend spawns a browser for the given size. Construction is a
// suspension point: the process launch can take noticeable wall-clock time,
// which callers pay once per size.
func newBackend(opts Options, size Size) (*Backend, error) {
	profileDir := filepath.Join(opts.ProfileDir, size.String())
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create profile directory: %w", ErrFailed, err)
	}
	if err := os.MkdirAll(opts.ScratchDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create scratch directory: %w", ErrFailed, err)
	}

	// One browser per profile directory, across processes too.
	lock := flock.New(filepath.Join(profileDir, "backend.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire profile lock: %w", ErrFailed, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: profile %s is in use by another renderer", ErrFailed, profileDir)
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		allocatorOptions(opts.ChromePath, profileDir, size)...,
	)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Spawn eagerly so launch failures (missing binary, broken font stack)
	// surface at construction rather than on the first screenshot.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: start browser: %w", ErrFailed, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Debug("rendering backend started",
		logging.String(logging.FieldComponent, "render"),
		logging.Int(logging.FieldWidth, size.Width),
		logging.Int(logging.FieldHeight, size.Height))

	return &Backend{
		size:          size,
		scratchDir:    opts.ScratchDir,
		timeout:       opts.Timeout,
		logger:        logger,
		lock:          lock,
		allocCancel:   allocCancel,
		browserCancel: browserCancel,
		browserCtx:    browserCtx,
	}, nil
}

// Size returns the resolution this backend was constructed for.
func (b *Backend) Size() Size {
	return b.size
}

// Rasterize renders the given HTML in a fresh tab and writes the screenshot
// into the backend's scratch directory, returning the scratch path. The call
// blocks for the duration of the rasterization; the configured timeout (and
// the caller's context) bound it, and expiry surfaces as ErrFailed.
func (b *Backend) Rasterize(ctx context.Context, html string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return "", fmt.Errorf("%w: backend is closed", ErrFailed)
	}

	// A dedicated tab keeps a timeout from tearing down the whole browser.
	tabCtx, tabCancel := chromedp.NewContext(b.browserCtx)
	defer tabCancel()

	runCtx := tabCtx
	if b.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(tabCtx, b.timeout)
		defer cancel()
	}
	stop := propagateCancel(ctx, tabCancel)
	defer stop()

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(b.size.Width), int64(b.size.Height)),
		chromedp.Navigate(dataURI),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&shot),
	}
	if err := chromedp.Run(runCtx, tasks); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", fmt.Errorf("%w: screenshot at %s: %w", ErrFailed, b.size, err)
	}
	if len(shot) == 0 {
		return "", fmt.Errorf("%w: empty screenshot at %s", ErrFailed, b.size)
	}

	scratchPath := filepath.Join(b.scratchDir, "raster_"+scratchSuffix()+".png")
	if err := os.WriteFile(scratchPath, shot, 0o644); err != nil {
		return "", fmt.Errorf("%w: write scratch artifact: %w", ErrFailed, err)
	}
	return scratchPath, nil
}

// Close shuts the browser down and releases the profile lock. Safe to call
// more than once.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.browserCancel()
	b.allocCancel()
	if err := b.lock.Unlock(); err != nil {
		return fmt.Errorf("release profile lock: %w", err)
	}
	return nil
}

func scratchSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// propagateCancel cancels the tab when the caller's context expires before
// the run finishes. The returned stop func must be deferred.
func propagateCancel(ctx context.Context, cancel context.CancelFunc) func() {
	if ctx == nil || ctx.Done() == nil {
		return func() {}
	}
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}
