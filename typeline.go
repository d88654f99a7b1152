package typeline

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/typeline/internal/engine"
	"github.com/aretw0/typeline/pkg/adapters/timer"
	"github.com/aretw0/typeline/pkg/playback"
	"github.com/aretw0/typeline/pkg/surface"
)

// Engine is the high-level entry point for the typeline library.
// It wraps the internal playback scheduler and provides the script-building
// API for consumers.
type Engine struct {
	core    *engine.Engine
	surface surface.Surface
	frames  surface.FrameSource
	cfg     playback.Config
	hooks   playback.LifecycleHooks
	logger  *slog.Logger
	randInt engine.RandInt
	nowFn   func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks playback.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithFrameSource injects a custom frame source, bypassing the default
// wall-clock timer. Tests use the memory adapter's manual pump here.
func WithFrameSource(frames surface.FrameSource) Option {
	return func(e *Engine) {
		e.frames = frames
	}
}

// WithLoop enables infinite replay of the whole script.
func WithLoop(loop bool) Option {
	return func(e *Engine) {
		e.cfg.Loop = loop
	}
}

// WithTypeDelay configures the typing speed (default: natural).
func WithTypeDelay(d playback.Delay) Option {
	return func(e *Engine) {
		e.cfg.TypeDelay = d
	}
}

// WithDeleteDelay configures the deleting speed (default: natural).
func WithDeleteDelay(d playback.Delay) Option {
	return func(e *Engine) {
		e.cfg.DeleteDelay = d
	}
}

// WithRandInt replaces the random source behind natural delays.
// Intended for deterministic tests.
func WithRandInt(r engine.RandInt) Option {
	return func(e *Engine) {
		e.randInt = r
	}
}

// WithClock replaces the wall clock consulted when Start ticks
// immediately. Intended for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.nowFn = now
	}
}

// New initializes a typeline Engine typing into surf.
// By default playback is driven by a wall-clock timer at roughly 60 frames
// per second; use WithFrameSource to drive frames yourself.
func New(surf surface.Surface, opts ...Option) (*Engine, error) {
	if surf == nil {
		return nil, playback.ErrNoSurface
	}

	eng := &Engine{
		surface: surf,
		cfg:     playback.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.frames == nil {
		eng.frames = timer.New(timer.DefaultInterval)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	coreOpts := []engine.Option{
		engine.WithLogger(eng.logger),
		engine.WithHooks(eng.hooks),
	}
	if eng.randInt != nil {
		coreOpts = append(coreOpts, engine.WithRandInt(eng.randInt))
	}
	if eng.nowFn != nil {
		coreOpts = append(coreOpts, engine.WithClock(eng.nowFn))
	}
	eng.core = engine.NewEngine(surf, eng.frames, eng.cfg, coreOpts...)

	return eng, nil
}

// Start arms playback: a tick runs immediately and on every subsequent
// frame. Calling Start while paused resumes execution.
func (e *Engine) Start() {
	e.core.Start()
}

// Pause suppresses execution while keeping frames running; Start resumes.
func (e *Engine) Pause() {
	e.core.Pause()
}

// Stop cancels the pending frame and halts all progress until Start.
func (e *Engine) Stop() {
	e.core.Stop()
}

// Done is closed when playback runs out of commands with looping disabled,
// or when a callback failure stops playback (see Err).
func (e *Engine) Done() <-chan struct{} {
	return e.core.Done()
}

// Err returns the callback failure that stopped playback, if any.
func (e *Engine) Err() error {
	return e.core.Err()
}
