/*
Package typeline renders a typewriter text effect into a host visual
container: it types and deletes characters (and inline markup) one at a
time at configurable, human-feeling speeds, supports pausing, callback
injection, and infinite replay of the whole script.

The core is a frame-paced command queue: script-building calls enqueue
high-level actions (type a string, pause, delete, change speed, invoke a
callback) that the playback scheduler turns into a timed stream of
primitive mutations against a stack of rendered nodes. This Hexagonal
Architecture keeps the core decoupled from presentation: the engine types
into whatever implements the surface ports, whether a terminal, an HTTP
event stream, or an in-memory tree.

# Key Features

  - Deterministic core: one command per tick, strict queue order, with
    composite commands expanding at the queue front.
  - Natural pacing: randomized per-evaluation delays when no explicit
    speed is configured.
  - Infinite replay: looping rebuilds the script from the played log and
    restores the initial configuration each cycle.
  - Pluggable hosts: terminal (termenv), SSE streaming, and in-memory
    surfaces ship as adapters.

# Usage

	package main

	import (
		"log"
		"time"

		"github.com/aretw0/typeline"
		"github.com/aretw0/typeline/pkg/adapters/term"
	)

	func main() {
		surf := term.New(nil)
		eng, err := typeline.New(surf)
		if err != nil {
			log.Fatal(err)
		}

		eng.TypeString("Hello <b>world</b>")
		eng.PauseFor(1200 * time.Millisecond)
		eng.DeleteChars(5)
		eng.TypeString("there")

		eng.Start()
		<-eng.Done()
	}
*/
package typeline
