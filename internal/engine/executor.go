package engine

import (
	"time"

	"github.com/aretw0/typeline/pkg/playback"
	"github.com/aretw0/typeline/pkg/surface"
)

// execute dispatches one dequeued command. Composite commands expand by
// prepending sub-commands to the queue, preserving order, so they run (and
// are timed) before anything already queued. Malformed commands fall
// through as no-ops: deleting past empty and unknown kinds are reachable,
// valid states, not failures. The only error path is a user callback.
func (e *Engine) execute(cmd playback.Command, now time.Time) error {
	switch cmd.Kind {
	case playback.TypeCharacter:
		node := e.surface.NewText(string(cmd.Char))
		parent := cmd.Parent
		if parent == nil {
			parent = e.surface.Root()
		}
		parent.AppendChild(node)
		e.stack.Push(Rendered{Kind: surface.TextNode, Node: node})

	case playback.RemoveCharacter:
		// Nothing is removed directly; the removal runs as the very next
		// command so it gets its own deletion-paced delay.
		e.queue.Prepend(playback.Command{
			Kind:              playback.RemoveLastVisibleNode,
			RemovingCharacter: true,
		})

	case playback.PauseFor:
		e.timing.pauseUntil = now.Add(cmd.Duration)

	case playback.CallFunction:
		return cmd.Fn(surface.View{Root: e.surface.Root(), Caret: e.surface.Caret()})

	case playback.AddMarkupElement:
		parent := cmd.Parent
		if parent == nil {
			parent = e.surface.Root()
		}
		parent.AppendChild(cmd.Node)
		e.stack.Push(Rendered{Kind: surface.MarkupElement, Node: cmd.Node})

	case playback.RemoveAll:
		e.expandRemoveAll(cmd)

	case playback.RemoveLastVisibleNode:
		r, err := e.stack.PopLast()
		if err != nil {
			// Deleting more than was typed: valid, nothing to do.
			return nil
		}
		if r.Kind == surface.MarkupElement && cmd.RemovingCharacter {
			// The pop removed the last character of a wrapper; sweep the
			// now-empty wrapper on the very next tick.
			e.queue.Prepend(playback.Command{Kind: playback.RemoveLastVisibleNode})
		}

	case playback.ChangeDeleteSpeed:
		e.cfg.DeleteDelay = cmd.Speed

	case playback.ChangeDelay:
		e.cfg.TypeDelay = cmd.Speed

	default:
		e.logger.Debug("ignoring unknown command kind", "kind", string(cmd.Kind))
	}
	return nil
}

// expandRemoveAll turns a full clear into: an optional speed override,
// exactly one removal per rendered node, and (when overridden) a restore
// back to the configured deleting speed. The block is prepended whole, so
// it runs before anything already queued. An empty stack expands to zero
// removals.
func (e *Engine) expandRemoveAll(cmd playback.Command) {
	block := make([]playback.Command, 0, e.stack.Len()+2)
	if cmd.HasSpeed {
		block = append(block, playback.Command{
			Kind:     playback.ChangeDeleteSpeed,
			Speed:    cmd.Speed,
			HasSpeed: true,
		})
	}
	for i := 0; i < e.stack.Len(); i++ {
		block = append(block, playback.Command{Kind: playback.RemoveLastVisibleNode})
	}
	if cmd.HasSpeed {
		block = append(block, playback.Command{
			Kind:     playback.ChangeDeleteSpeed,
			Speed:    e.cfg.DeleteDelay,
			HasSpeed: true,
		})
	}
	e.queue.Prepend(block...)
}
