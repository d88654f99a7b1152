package memory

import (
	"sync"
	"time"

	"github.com/aretw0/typeline/pkg/surface"
)

// Frames is a manually pumped frame source: the engine's frame requests
// park until the caller invokes Step with a timestamp of its choosing.
// This is what makes scheduler behavior fully deterministic in tests.
type Frames struct {
	mu      sync.Mutex
	seq     int
	pending func(now time.Time)
}

// NewFrames creates an idle pump.
func NewFrames() *Frames {
	return &Frames{}
}

// RequestFrame parks fn until the next Step. Only one frame is ever
// pending: the engine re-arms from inside the tick.
func (f *Frames) RequestFrame(fn func(now time.Time)) surface.FrameHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	f.pending = fn
	return &handle{frames: f, seq: f.seq}
}

// Step fires the pending frame at the given instant. It returns false when
// no frame was armed (playback terminated or was stopped).
func (f *Frames) Step(now time.Time) bool {
	f.mu.Lock()
	fn := f.pending
	f.pending = nil
	f.mu.Unlock()
	if fn == nil {
		return false
	}
	fn(now)
	return true
}

// Pending reports whether a frame is armed.
func (f *Frames) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending != nil
}

type handle struct {
	frames *Frames
	seq    int
}

// Cancel drops the parked frame if it is still the one this handle armed.
func (h *handle) Cancel() {
	h.frames.mu.Lock()
	defer h.frames.mu.Unlock()
	if h.frames.seq == h.seq {
		h.frames.pending = nil
	}
}
