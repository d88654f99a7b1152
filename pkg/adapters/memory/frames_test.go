package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFramesStepFiresPending(t *testing.T) {
	f := NewFrames()
	assert.False(t, f.Step(time.Unix(0, 0)), "nothing armed")

	var got time.Time
	f.RequestFrame(func(now time.Time) { got = now })
	assert.True(t, f.Pending())

	at := time.Unix(42, 0)
	assert.True(t, f.Step(at))
	assert.Equal(t, at, got)
	assert.False(t, f.Pending(), "a frame fires once")
}

func TestFrameCancel(t *testing.T) {
	f := NewFrames()
	fired := false
	h := f.RequestFrame(func(time.Time) { fired = true })

	h.Cancel()
	assert.False(t, f.Step(time.Unix(0, 0)))
	assert.False(t, fired)
}

func TestStaleCancelKeepsNewerFrame(t *testing.T) {
	f := NewFrames()
	old := f.RequestFrame(func(time.Time) {})
	f.Step(time.Unix(0, 0))

	fired := false
	f.RequestFrame(func(time.Time) { fired = true })
	old.Cancel()

	assert.True(t, f.Step(time.Unix(1, 0)), "stale handle must not cancel a newer frame")
	assert.True(t, fired)
}

func TestReArmFromInsideFrame(t *testing.T) {
	f := NewFrames()
	ticks := 0
	var tick func(time.Time)
	tick = func(time.Time) {
		ticks++
		if ticks < 3 {
			f.RequestFrame(tick)
		}
	}
	f.RequestFrame(tick)

	for i := 0; f.Step(time.Unix(int64(i), 0)); i++ {
	}
	assert.Equal(t, 3, ticks)
}
