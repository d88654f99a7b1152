package playback

import "errors"

// ErrNoSurface is returned when an engine is constructed without a host
// surface.
var ErrNoSurface = errors.New("no surface given")

// ErrInvalidArgument is returned by builder calls for arguments that must
// never reach the core (zero delete counts, nil callbacks, empty strings).
var ErrInvalidArgument = errors.New("invalid command argument")

// ErrEmptyQueue is returned when dequeuing from an empty command queue.
// Inside the core this is a valid terminal state, not a failure.
var ErrEmptyQueue = errors.New("empty command queue")

// ErrEmptyStack is returned when popping an empty rendered-node stack.
// Inside the core this degrades to a no-op: scripts may legitimately delete
// more than was typed.
var ErrEmptyStack = errors.New("empty rendered-node stack")
