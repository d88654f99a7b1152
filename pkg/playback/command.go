package playback

import (
	"time"

	"github.com/aretw0/typeline/pkg/surface"
)

// CommandKind identifies a playback instruction.
type CommandKind string

// The command vocabulary shared by the builder API and the core.
const (
	// TypeCharacter materializes one character, optionally inside a markup
	// element.
	TypeCharacter CommandKind = "type_character"

	// RemoveCharacter deletes the last typed character. It never removes
	// anything itself; it expands into a timed RemoveLastVisibleNode.
	RemoveCharacter CommandKind = "remove_character"

	// PauseFor suspends execution for a duration without dropping frames.
	PauseFor CommandKind = "pause_for"

	// CallFunction invokes a user callback with a read-only view.
	CallFunction CommandKind = "call_function"

	// AddMarkupElement attaches a (text-stripped) markup element.
	AddMarkupElement CommandKind = "add_markup_element"

	// RemoveAll clears the whole output; expands into one removal per
	// currently rendered node.
	RemoveAll CommandKind = "remove_all"

	// RemoveLastVisibleNode pops and detaches the most recent node.
	RemoveLastVisibleNode CommandKind = "remove_last_visible_node"

	// ChangeDeleteSpeed mutates the configured deleting delay.
	ChangeDeleteSpeed CommandKind = "change_delete_speed"

	// ChangeDelay mutates the configured typing delay.
	ChangeDelay CommandKind = "change_delay"
)

// Callback is the extension point invoked by CallFunction commands. It runs
// synchronously inside a tick and must not block; an error stops playback
// and propagates to the engine's caller unmodified.
type Callback func(view surface.View) error

// Command is one primitive or composite playback instruction. Commands are
// immutable once enqueued; only the fields relevant to Kind are set.
type Command struct {
	Kind CommandKind

	// Char and Parent apply to TypeCharacter. A nil Parent targets the
	// surface root.
	Char   rune
	Parent surface.Node

	// Node applies to AddMarkupElement.
	Node surface.Node

	// Duration applies to PauseFor.
	Duration time.Duration

	// Fn applies to CallFunction.
	Fn Callback

	// Speed applies to ChangeDeleteSpeed and ChangeDelay, and to the
	// optional RemoveAll override (guarded by HasSpeed).
	Speed    Delay
	HasSpeed bool

	// RemovingCharacter applies to RemoveLastVisibleNode: it marks removals
	// that stand in for a single character delete, which must also sweep a
	// markup wrapper once its last character is gone.
	RemovingCharacter bool
}
