// Package memory implements the surface ports in memory: a node tree with
// a mutation journal, and a manually pumped frame source. It backs tests
// and headless playback.
package memory

import (
	"strings"
	"sync"

	"github.com/aretw0/typeline/pkg/surface"
)

// MutationOp labels a journal entry.
type MutationOp string

const (
	OpAttach  MutationOp = "attach"
	OpDetach  MutationOp = "detach"
	OpSetText MutationOp = "set_text"
)

// Mutation is one recorded change to the tree. The journal preserves exact
// mutation order, which the replay tests compare across loop cycles.
type Mutation struct {
	Op   MutationOp
	Kind surface.NodeKind
	Tag  string
	Text string
}

// Surface is an in-memory host container. Safe for concurrent use.
type Surface struct {
	mu       sync.Mutex
	root     *Node
	caret    *Node
	journal  []Mutation
	observer func(Mutation)
}

// Option configures the Surface.
type Option func(*Surface)

// WithObserver registers a callback invoked on every mutation, in mutation
// order. The httpstream adapter uses this to turn the journal into a live
// event feed. The callback runs under the surface lock; keep it cheap.
func WithObserver(fn func(Mutation)) Option {
	return func(s *Surface) {
		s.observer = fn
	}
}

// New creates an empty surface with a root container and a caret node.
func New(opts ...Option) *Surface {
	s := &Surface{}
	s.root = &Node{surf: s, kind: surface.MarkupElement, tag: "root"}
	s.caret = &Node{surf: s, kind: surface.MarkupElement, tag: "caret", text: "|"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the container hosting all typed output.
func (s *Surface) Root() surface.Node { return s.root }

// Caret returns the caret node.
func (s *Surface) Caret() surface.Node { return s.caret }

// NewText creates a detached text node.
func (s *Surface) NewText(text string) surface.Node {
	return &Node{surf: s, kind: surface.TextNode, text: text}
}

// NewElement creates a detached markup element.
func (s *Surface) NewElement(tag string, attrs []surface.Attr) surface.Node {
	return &Node{surf: s, kind: surface.MarkupElement, tag: tag, attrs: attrs}
}

// Text returns the flattened visible text under the root.
func (s *Surface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	s.root.flatten(&b)
	return b.String()
}

// NodeCount returns the number of attached nodes under the root, counting
// elements and text nodes alike (the root itself excluded).
func (s *Surface) NodeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.descendants()
}

// Journal returns a copy of the mutation log.
func (s *Surface) Journal() []Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Mutation, len(s.journal))
	copy(out, s.journal)
	return out
}

// ResetJournal clears the mutation log (the tree is untouched).
func (s *Surface) ResetJournal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.journal = nil
}

func (s *Surface) record(m Mutation) {
	s.journal = append(s.journal, m)
	if s.observer != nil {
		s.observer(m)
	}
}

// Node is an in-memory visual node.
type Node struct {
	surf     *Surface
	kind     surface.NodeKind
	tag      string
	attrs    []surface.Attr
	text     string
	parent   *Node
	children []*Node
}

// Kind returns the node kind.
func (n *Node) Kind() surface.NodeKind { return n.kind }

// Tag returns the element tag ("" for text nodes).
func (n *Node) Tag() string { return n.tag }

// Text returns the node's own text content.
func (n *Node) Text() string { return n.text }

// AppendChild attaches child under n.
func (n *Node) AppendChild(child surface.Node) {
	c, ok := child.(*Node)
	if !ok {
		return
	}
	n.surf.mu.Lock()
	defer n.surf.mu.Unlock()
	c.parent = n
	n.children = append(n.children, c)
	n.surf.record(Mutation{Op: OpAttach, Kind: c.kind, Tag: c.tag, Text: c.text})
}

// Remove detaches n from its parent. Removing a detached node is a no-op.
func (n *Node) Remove() {
	n.surf.mu.Lock()
	defer n.surf.mu.Unlock()
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.surf.record(Mutation{Op: OpDetach, Kind: n.kind, Tag: n.tag, Text: n.text})
}

// SetText replaces the node's text content.
func (n *Node) SetText(text string) {
	n.surf.mu.Lock()
	defer n.surf.mu.Unlock()
	n.text = text
	n.surf.record(Mutation{Op: OpSetText, Kind: n.kind, Tag: n.tag, Text: text})
}

func (n *Node) flatten(b *strings.Builder) {
	if n.kind == surface.TextNode {
		b.WriteString(n.text)
	}
	for _, c := range n.children {
		c.flatten(b)
	}
}

func (n *Node) descendants() int {
	count := 0
	for _, c := range n.children {
		count += 1 + c.descendants()
	}
	return count
}
