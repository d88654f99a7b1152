package typeline

import (
	"fmt"
	"time"

	"github.com/aretw0/typeline/internal/markup"
	"github.com/aretw0/typeline/pkg/playback"
)

// The script-building API. Each call validates its argument synchronously
// and translates it into command descriptors for the playback core; invalid
// arguments are rejected here and never reach the queue.

// TypeString enqueues s to be typed one character at a time. Inline markup
// (e.g. "Hello <b>world</b>") is split into elements whose extracted text
// is typed into them.
func (e *Engine) TypeString(s string) error {
	if s == "" {
		return fmt.Errorf("type string: %w: empty input", playback.ErrInvalidArgument)
	}

	var cmds []playback.Command
	for _, seg := range markup.Parse(s) {
		if seg.IsElement() {
			el := e.surface.NewElement(seg.Tag, seg.Attrs)
			cmds = append(cmds, playback.Command{Kind: playback.AddMarkupElement, Node: el})
			for _, r := range seg.Text {
				cmds = append(cmds, playback.Command{Kind: playback.TypeCharacter, Char: r, Parent: el})
			}
			continue
		}
		for _, r := range seg.Text {
			cmds = append(cmds, playback.Command{Kind: playback.TypeCharacter, Char: r})
		}
	}
	e.core.Submit(cmds...)
	return nil
}

// PauseFor enqueues a pause of the given duration.
func (e *Engine) PauseFor(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("pause for: %w: non-positive duration %v", playback.ErrInvalidArgument, d)
	}
	e.core.Submit(playback.Command{Kind: playback.PauseFor, Duration: d})
	return nil
}

// DeleteChars enqueues n single-character deletes. Deleting through a
// markup boundary also removes the emptied wrapper.
func (e *Engine) DeleteChars(n int) error {
	if n <= 0 {
		return fmt.Errorf("delete chars: %w: non-positive count %d", playback.ErrInvalidArgument, n)
	}
	cmds := make([]playback.Command, n)
	for i := range cmds {
		cmds[i] = playback.Command{Kind: playback.RemoveCharacter}
	}
	e.core.Submit(cmds...)
	return nil
}

// DeleteAll enqueues a full clear of the rendered output at the configured
// deleting speed.
func (e *Engine) DeleteAll() error {
	e.core.Submit(playback.Command{Kind: playback.RemoveAll})
	return nil
}

// DeleteAllWithSpeed enqueues a full clear at an explicit speed; the
// configured deleting speed is restored afterwards.
func (e *Engine) DeleteAllWithSpeed(speed playback.Delay) error {
	if err := validateDelay("delete all", speed); err != nil {
		return err
	}
	e.core.Submit(playback.Command{Kind: playback.RemoveAll, Speed: speed, HasSpeed: true})
	return nil
}

// CallFunc enqueues a callback invocation. The callback runs synchronously
// inside a tick with a read-only view of the surface; it may enqueue more
// script or call Pause, but must not block or call Stop. A returned error
// stops playback.
func (e *Engine) CallFunc(fn playback.Callback) error {
	if fn == nil {
		return fmt.Errorf("call func: %w: nil callback", playback.ErrInvalidArgument)
	}
	e.core.Submit(playback.Command{Kind: playback.CallFunction, Fn: fn})
	return nil
}

// ChangeDelay enqueues a typing-speed change effective from its place in
// the script.
func (e *Engine) ChangeDelay(d playback.Delay) error {
	if err := validateDelay("change delay", d); err != nil {
		return err
	}
	e.core.Submit(playback.Command{Kind: playback.ChangeDelay, Speed: d, HasSpeed: true})
	return nil
}

// ChangeDeleteSpeed enqueues a deleting-speed change effective from its
// place in the script.
func (e *Engine) ChangeDeleteSpeed(d playback.Delay) error {
	if err := validateDelay("change delete speed", d); err != nil {
		return err
	}
	e.core.Submit(playback.Command{Kind: playback.ChangeDeleteSpeed, Speed: d, HasSpeed: true})
	return nil
}

func validateDelay(op string, d playback.Delay) error {
	if !d.IsNatural() && d.Duration() <= 0 {
		return fmt.Errorf("%s: %w: non-positive delay %v", op, playback.ErrInvalidArgument, d.Duration())
	}
	return nil
}
