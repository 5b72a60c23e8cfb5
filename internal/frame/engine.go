package frame

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"frameforge/internal/history"
	"frameforge/internal/logging"
	"frameforge/internal/output"
	"frameforge/internal/render"
	"frameforge/internal/template"
)

// ErrNoMediaSize marks template references whose path carries no
// <width>x<height> segment. That is a caller-configuration problem: the
// engine cannot pick a resolution for the backend.
var ErrNoMediaSize = errors.New("template path has no media size segment")

// Rasterizer is the backend surface the engine drives. render.Pool satisfies
// it; tests substitute fakes.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, size render.Size) (string, error)
	Close() error
}

// Recorder persists completed renders. *history.Store satisfies it.
type Recorder interface {
	Add(ctx context.Context, rec history.Record) (*history.Record, error)
}

// RenderResult describes one successfully rendered frame. Ownership of the
// file transfers to the caller; the engine does not retain or clean it up.
type RenderResult struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// Engine is the frame rendering orchestrator.
type Engine struct {
	resolver *template.Resolver
	alloc    *output.Allocator
	raster   Rasterizer
	recorder Recorder
	logger   *slog.Logger
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithRecorder wires a render-history recorder. Recording is best effort; a
// recorder failure never fails a render.
func WithRecorder(recorder Recorder) Option {
	return func(e *Engine) { e.recorder = recorder }
}

// WithLogger overrides the no-op default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an engine over the given collaborators.
func New(resolver *template.Resolver, alloc *output.Allocator, raster Rasterizer, opts ...Option) *Engine {
	engine := &Engine{
		resolver: resolver,
		alloc:    alloc,
		raster:   raster,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// RenderFrame resolves and loads the referenced template, substitutes the
// caller's fields, rasterizes the result at the template's media size, and
// relocates the artifact into the output directory.
//
// The substitution context layers, lowest priority first: declared parameter
// defaults, required fields, extension fields. Placeholders with no binding
// anywhere pass through verbatim into the rasterized frame.
func (e *Engine) RenderFrame(ctx context.Context, ref string, fields template.Fields, ext map[string]string) (*RenderResult, error) {
	start := time.Now()
	logger := e.logger.With(
		logging.String(logging.FieldComponent, "frame"),
		logging.String(logging.FieldTemplate, ref),
		logging.String(logging.FieldRenderID, uuid.NewString()),
	)

	tpl, err := e.load(ref)
	if err != nil {
		return nil, err
	}
	if !tpl.HasSize() {
		return nil, fmt.Errorf("%w: %s", ErrNoMediaSize, ref)
	}
	size := render.Size{Width: tpl.Width, Height: tpl.Height}

	subCtx := template.BuildContext(fields, ext)
	schema := template.ParseSchema(tpl)
	for _, name := range schema.ParamNames() {
		subCtx.SetDefault(name, schema.Params[name].Default)
	}
	html := template.Substitute(tpl.Source, subCtx)

	logger.Debug("rasterizing frame",
		logging.Int(logging.FieldWidth, size.Width),
		logging.Int(logging.FieldHeight, size.Height))

	scratch, err := e.raster.Rasterize(ctx, html, size)
	if err != nil {
		return nil, err
	}

	dest := e.alloc.Allocate()
	if err := e.alloc.Commit(scratch, dest); err != nil {
		return nil, fmt.Errorf("%w: %w", render.ErrFailed, err)
	}

	elapsed := time.Since(start)
	e.record(ctx, logger, ref, dest, size, elapsed)
	logger.Info("frame rendered",
		logging.String(logging.FieldOutput, dest),
		logging.Int(logging.FieldWidth, size.Width),
		logging.Int(logging.FieldHeight, size.Height),
		logging.Duration("elapsed", elapsed))

	return &RenderResult{OutputPath: dest, Width: size.Width, Height: size.Height}, nil
}

// TemplateParameters resolves and loads the referenced template and returns
// its parameter schema. It never touches the rendering backend, so it is safe
// to call on engines that will never render.
func (e *Engine) TemplateParameters(ref string) (template.Schema, error) {
	tpl, err := e.load(ref)
	if err != nil {
		return template.Schema{}, err
	}
	return template.ParseSchema(tpl), nil
}

// Close releases the rendering backends.
func (e *Engine) Close() error {
	return e.raster.Close()
}

func (e *Engine) load(ref string) (*template.Template, error) {
	path, err := e.resolver.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return template.Load(ref, path)
}

func (e *Engine) record(ctx context.Context, logger *slog.Logger, ref, dest string, size render.Size, elapsed time.Duration) {
	if e.recorder == nil {
		return
	}
	_, err := e.recorder.Add(ctx, history.Record{
		Template:   ref,
		OutputPath: dest,
		Width:      size.Width,
		Height:     size.Height,
		Duration:   elapsed,
	})
	if err != nil {
		logger.Warn("record render history", logging.Error(err))
	}
}
