package engine

import (
	"sync"

	"github.com/aretw0/typeline/pkg/playback"
)

// Queue is the ordered, mutable sequence of pending commands. Front = next
// to execute. No deduplication, no priority: strict FIFO with an explicit
// prepend used so that expanded sub-commands run before anything enqueued
// later by the user.
//
// Queue is owned and mutated exclusively by the Engine's tick; external
// producers go through the Inbox.
type Queue struct {
	items []playback.Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: make([]playback.Command, 0, 64)}
}

// NewQueueFrom creates a queue pre-populated with cmds in order.
func NewQueueFrom(cmds []playback.Command) *Queue {
	q := &Queue{items: make([]playback.Command, len(cmds))}
	copy(q.items, cmds)
	return q
}

// Enqueue appends cmd to the back.
func (q *Queue) Enqueue(cmd playback.Command) {
	q.items = append(q.items, cmd)
}

// Prepend inserts cmds as a block at the front, preserving their relative
// order, so they execute before everything already queued.
func (q *Queue) Prepend(cmds ...playback.Command) {
	if len(cmds) == 0 {
		return
	}
	q.items = append(append(make([]playback.Command, 0, len(cmds)+len(q.items)), cmds...), q.items...)
}

// Peek returns the front command without consuming it.
func (q *Queue) Peek() (playback.Command, error) {
	if len(q.items) == 0 {
		return playback.Command{}, playback.ErrEmptyQueue
	}
	return q.items[0], nil
}

// DequeueFront removes and returns the front command.
func (q *Queue) DequeueFront() (playback.Command, error) {
	if len(q.items) == 0 {
		return playback.Command{}, playback.ErrEmptyQueue
	}
	cmd := q.items[0]
	q.items = q.items[1:]
	return cmd, nil
}

// Len returns the number of pending commands.
func (q *Queue) Len() int { return len(q.items) }

// Empty reports whether no commands are pending.
func (q *Queue) Empty() bool { return len(q.items) == 0 }

// Inbox collects commands from outside the tick (builder calls, user
// callbacks) so that producers never touch the Queue directly. The Engine
// drains it at the top of each tick, preserving arrival order.
//
// Thread-safety covers the common host shape where builder calls happen on
// one goroutine while a timer-driven FrameSource ticks on another.
type Inbox struct {
	mu    sync.Mutex
	items []playback.Command
}

// Put appends cmds to the inbox.
func (in *Inbox) Put(cmds ...playback.Command) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.items = append(in.items, cmds...)
}

// Drain removes and returns everything currently buffered.
func (in *Inbox) Drain() []playback.Command {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.items
	in.items = nil
	return out
}
