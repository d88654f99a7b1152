/*
Package engine implements the typeline playback core: a frame-paced command
queue turned into a timed stream of mutations against a stack of rendered
nodes.

# Anatomy

  - Queue: strict FIFO of pending commands with a front-prepend escape
    hatch used for composite expansion.
  - Stack: LIFO record of every materialized visual node, tagged by kind,
    enabling correct last-in-first-out removal.
  - timing: per-kind delay resolution (fixed or randomized "natural"
    ranges) and the paused-until deadline.
  - Engine: the per-frame tick driver; executes at most one command per
    tick and re-arms itself through the host FrameSource.
  - replay: on queue exhaustion with looping enabled, rebuilds the queue
    from the played log and restores the initial configuration.

The core is cooperative and single-threaded: all mutation happens inside
the tick, and a frame is re-armed only after the tick body returns.
External producers (builder calls, user callbacks) hand commands to a small
mutex-guarded inbox drained at the top of each tick.
*/
package engine
