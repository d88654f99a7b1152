// Package timer provides the default wall-clock FrameSource: each frame
// request fires once after a fixed interval.
package timer

import (
	"time"

	"github.com/aretw0/typeline/pkg/surface"
)

// DefaultInterval approximates a 60fps host (the engine assumes no fixed
// frame rate, so the exact value only bounds pacing resolution).
const DefaultInterval = 16 * time.Millisecond

// Source implements surface.FrameSource on top of time.AfterFunc.
type Source struct {
	interval time.Duration
}

// New creates a Source firing frames every interval. A non-positive
// interval falls back to DefaultInterval.
func New(interval time.Duration) *Source {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Source{interval: interval}
}

// RequestFrame schedules fn to run once after the interval.
func (s *Source) RequestFrame(fn func(now time.Time)) surface.FrameHandle {
	t := time.AfterFunc(s.interval, func() {
		fn(time.Now())
	})
	return handle{t: t}
}

type handle struct {
	t *time.Timer
}

func (h handle) Cancel() {
	h.t.Stop()
}
