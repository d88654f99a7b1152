package engine

import (
	"math/rand/v2"
	"time"

	"github.com/aretw0/typeline/pkg/playback"
)

// Natural delay ranges in milliseconds. Deletion reads faster than typing,
// matching how people actually hold backspace.
const (
	naturalTypeMin   = 120
	naturalTypeMax   = 160
	naturalDeleteMin = 40
	naturalDeleteMax = 80
)

// timingState tracks the engine's relationship to wall-clock time.
// lastTick updates only when a command actually executes, never on skipped
// frames. pauseUntil, once reached, is cleared.
type timingState struct {
	lastTick   time.Time
	hasLast    bool
	pauseUntil time.Time
}

// RandInt draws a pseudo-random integer in [min, max]. Injectable so tests
// can pin the natural ranges.
type RandInt func(min, max int) int

func defaultRandInt(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// effectiveDelay resolves how long the front command must wait before it
// may fire. Deletion-class commands (single-character deletes and the
// removals expanded from them) use the deleting delay; everything else uses
// the typing delay. A natural delay is redrawn on every evaluation, so a
// command re-evaluated across skipped frames may see a different threshold
// each tick.
func effectiveDelay(cmd playback.Command, cfg playback.Config, randInt RandInt) time.Duration {
	switch cmd.Kind {
	case playback.RemoveCharacter, playback.RemoveLastVisibleNode:
		return resolve(cfg.DeleteDelay, naturalDeleteMin, naturalDeleteMax, randInt)
	default:
		return resolve(cfg.TypeDelay, naturalTypeMin, naturalTypeMax, randInt)
	}
}

func resolve(d playback.Delay, min, max int, randInt RandInt) time.Duration {
	if d.IsNatural() {
		return time.Duration(randInt(min, max)) * time.Millisecond
	}
	return d.Duration()
}
