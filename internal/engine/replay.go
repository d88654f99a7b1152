package engine

import "github.com/aretw0/typeline/pkg/playback"

// replay is the loop controller, invoked only when the queue is empty and
// looping is enabled. Atomically within the same tick it rebuilds the
// queue from the played log, restores the initial configuration so that
// mid-script speed changes do not leak into the next repetition, and
// prepends a fresh full clear so the cycle begins on an empty output.
//
// The played log deliberately excludes RemoveAll and RemoveCharacter:
// a recorded full clear would expand against the wrong node count on
// replay, and character deletes are already represented by the removal
// commands they expanded into.
func (e *Engine) replay() {
	cmds := make([]playback.Command, 0, len(e.played)+1)
	cmds = append(cmds, playback.Command{Kind: playback.RemoveAll})
	cmds = append(cmds, e.played...)

	e.queue = NewQueueFrom(cmds)
	e.played = nil
	e.cfg = e.initial
	e.cycles++

	e.logger.Debug("loop replay", "cycle", e.cycles, "commands", len(cmds))
	if e.hooks.OnLoop != nil {
		e.hooks.OnLoop(e.cycles)
	}
}
