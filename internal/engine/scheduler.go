package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/typeline/internal/logging"
	"github.com/aretw0/typeline/pkg/playback"
	"github.com/aretw0/typeline/pkg/surface"
)

// Engine is the playback scheduler: the per-frame tick driver that turns
// the command queue into timed mutations against the rendered-node stack.
//
// The scheduler is in one of three states: Idle (no frame armed), Armed (a
// frame callback is pending), or Paused (armed, but ticks are no-ops beyond
// re-arming). Frames are never cancelled by Pause; only Stop cancels.
type Engine struct {
	mu sync.Mutex

	surface surface.Surface
	frames  surface.FrameSource

	queue  *Queue
	inbox  Inbox
	stack  *Stack
	played []playback.Command
	timing timingState

	cfg     playback.Config
	initial playback.Config
	cycles  int

	logger  *slog.Logger
	hooks   playback.LifecycleHooks
	randInt RandInt
	now     func() time.Time

	paused atomic.Bool
	armed  bool
	handle surface.FrameHandle

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers lifecycle hooks.
func WithHooks(hooks playback.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRandInt replaces the random source used for natural delays.
func WithRandInt(r RandInt) Option {
	return func(e *Engine) {
		if r != nil {
			e.randInt = r
		}
	}
}

// WithClock replaces the wall clock consulted by Start's immediate tick.
// Frame-driven ticks carry their own timestamps; this exists so tests can
// pin every instant the engine sees.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a scheduler bound to a surface and a frame source.
// cfg is snapshotted: every loop cycle restores it verbatim.
func NewEngine(surf surface.Surface, frames surface.FrameSource, cfg playback.Config, opts ...Option) *Engine {
	e := &Engine{
		surface: surf,
		frames:  frames,
		queue:   NewQueue(),
		stack:   NewStack(),
		cfg:     cfg,
		initial: cfg,
		logger:  logging.NewNop(),
		randInt: defaultRandInt,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit hands commands to the engine from outside the tick (builder calls,
// user callbacks). They join the queue, in arrival order, at the top of the
// next tick.
func (e *Engine) Submit(cmds ...playback.Command) {
	e.inbox.Put(cmds...)
}

// Start arms the scheduler: it clears the paused flag, executes a tick
// immediately, and keeps ticking on every subsequent frame.
func (e *Engine) Start() {
	e.paused.Store(false)

	e.mu.Lock()
	if e.armed {
		e.mu.Unlock()
		return
	}
	e.armed = true
	e.mu.Unlock()

	e.Tick(e.now())
}

// Pause suppresses command execution. The scheduler stays armed and keeps
// re-arming every frame; each tick becomes a no-op. Safe to call from a
// playback callback.
func (e *Engine) Pause() {
	e.paused.Store(true)
}

// Stop cancels the pending frame and transitions to Idle. No further ticks
// occur until Start is called again. Must not be called from inside a
// playback callback; a callback stops playback by returning an error.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handle != nil {
		e.handle.Cancel()
		e.handle = nil
	}
	e.armed = false
}

// Done is closed the first time playback runs out of work with looping
// disabled, or when a callback failure stops playback.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Err returns the callback failure that stopped playback, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Tick runs one frame of the scheduler at the given instant. At most one
// command executes per tick. The returned error is a callback failure
// propagating, unmodified, to the caller of the tick.
func (e *Engine) Tick(now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.armed {
		return nil
	}

	// External producers first, so fresh commands keep playback alive.
	for _, cmd := range e.inbox.Drain() {
		e.queue.Enqueue(cmd)
	}

	// First tick is a no-op timing anchor.
	if !e.timing.hasLast {
		e.timing.lastTick = now
		e.timing.hasLast = true
	}
	delta := now.Sub(e.timing.lastTick)

	if e.queue.Empty() {
		if !e.cfg.Loop {
			// Playback terminates: no re-arm.
			e.armed = false
			e.finish()
			return nil
		}
		e.replay()
	}

	e.arm()

	if e.paused.Load() {
		return nil
	}

	if !e.timing.pauseUntil.IsZero() {
		if now.Before(e.timing.pauseUntil) {
			return nil
		}
		e.timing.pauseUntil = time.Time{}
	}

	front, err := e.queue.Peek()
	if err != nil {
		return nil
	}
	if delta <= effectiveDelay(front, e.cfg, e.randInt) {
		// Not enough time elapsed: skip without consuming queue state or
		// the time reference.
		return nil
	}

	cmd, _ := e.queue.DequeueFront()
	if err := e.execute(cmd, now); err != nil {
		e.err = err
		if e.handle != nil {
			e.handle.Cancel()
			e.handle = nil
		}
		e.armed = false
		if e.hooks.OnCallbackError != nil {
			e.hooks.OnCallbackError(err)
		}
		e.finish()
		return err
	}

	if e.cfg.Loop && cmd.Kind != playback.RemoveAll && cmd.Kind != playback.RemoveCharacter {
		e.played = append(e.played, cmd)
	}
	if e.hooks.OnCommand != nil {
		e.hooks.OnCommand(cmd.Kind)
	}

	e.timing.lastTick = now
	return nil
}

// arm schedules the next tick. Re-arming happens only inside the current
// tick body, so no two ticks ever execute concurrently.
func (e *Engine) arm() {
	e.handle = e.frames.RequestFrame(func(now time.Time) {
		e.Tick(now)
	})
}

func (e *Engine) finish() {
	e.doneOnce.Do(func() { close(e.done) })
}
