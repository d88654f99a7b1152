package surface

import "time"

// NodeKind distinguishes the two kinds of nodes a playback engine materializes.
type NodeKind int

const (
	// TextNode is a single typed character (or any plain text fragment).
	TextNode NodeKind = iota
	// MarkupElement is a styled wrapper (e.g. <b>) whose characters are
	// typed into it one at a time.
	MarkupElement
)

// Attr is a single attribute on a markup element (e.g. color="red").
type Attr struct {
	Key   string
	Value string
}

// Node is an opaque handle to a materialized visual node.
// Handles are owned by the engine's rendered-node stack from attach until
// detach; hosts must not remove nodes behind the engine's back.
type Node interface {
	// AppendChild attaches a child node under this node.
	AppendChild(child Node)

	// Remove detaches this node (and its children) from the output.
	// Removing an already-detached node is a no-op.
	Remove()

	// SetText replaces the node's text content.
	SetText(text string)
}

// Surface is the driven port for a host visual container. Implementations
// decide how nodes are presented (terminal cells, SSE events, an in-memory
// tree for tests).
type Surface interface {
	// Root returns the container node that hosts all typed output.
	Root() Node

	// Caret returns the node presenting the blinking caret. Styling is the
	// host's business; the engine only exposes it to callbacks.
	Caret() Node

	// NewText creates a detached text node.
	NewText(text string) Node

	// NewElement creates a detached markup element. Its text content, if
	// any, has already been extracted by the markup parser and will arrive
	// as individual typed characters.
	NewElement(tag string, attrs []Attr) Node
}

// View is the read-only snapshot handed to user callbacks. Callbacks must
// not retain the handles beyond the call.
type View struct {
	Root  Node
	Caret Node
}

// FrameHandle cancels a pending frame request.
type FrameHandle interface {
	Cancel()
}

// FrameSource is the host timing primitive: it schedules fn to run once on
// the next frame and returns a handle to cancel it. The engine treats this
// as its only source of time advancement and assumes no fixed frame rate.
//
// Implementations must never run two callbacks concurrently; the engine
// re-arms only after the previous callback returns.
type FrameSource interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
}
