// Package term implements the surface ports for ANSI terminals using
// termenv. Every mutation re-renders the typed line group in place, with
// markup elements mapped to terminal styles and a blinking block caret.
package term

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/aretw0/typeline/pkg/surface"
)

// Surface renders the node tree onto a terminal. Safe for concurrent use;
// rendering is serialized under an internal lock.
type Surface struct {
	mu      sync.Mutex
	out     *termenv.Output
	root    *node
	caret   *node
	lines   int // lines occupied by the previous render
	noCaret bool
}

// Option configures the Surface.
type Option func(*Surface)

// WithoutCaret disables the trailing caret glyph.
func WithoutCaret() Option {
	return func(s *Surface) {
		s.noCaret = true
	}
}

// New creates a terminal surface writing to w (os.Stdout when nil).
func New(w io.Writer, opts ...Option) *Surface {
	if w == nil {
		w = os.Stdout
	}
	s := &Surface{out: termenv.NewOutput(w)}
	s.root = &node{surf: s, kind: surface.MarkupElement, tag: "root"}
	s.caret = &node{surf: s, kind: surface.MarkupElement, tag: "caret", text: "▌"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the container hosting all typed output.
func (s *Surface) Root() surface.Node { return s.root }

// Caret returns the caret node; SetText changes the glyph.
func (s *Surface) Caret() surface.Node { return s.caret }

// NewText creates a detached text node.
func (s *Surface) NewText(text string) surface.Node {
	return &node{surf: s, kind: surface.TextNode, text: text}
}

// NewElement creates a detached markup element.
func (s *Surface) NewElement(tag string, attrs []surface.Attr) surface.Node {
	return &node{surf: s, kind: surface.MarkupElement, tag: tag, attrs: attrs}
}

// redraw repaints the whole line group in place. Caller holds s.mu.
func (s *Surface) redraw() {
	if s.lines > 1 {
		s.out.CursorUp(s.lines - 1)
	}
	s.out.WriteString("\r")
	s.out.ClearLineRight()

	var b strings.Builder
	s.root.render(&b, s.out, nil)
	text := b.String()
	if !s.noCaret {
		text += s.styleFor(s.caret).Styled(s.caret.text)
	}

	// Clearing happens per line while writing, so stale longer lines from
	// the previous render do not bleed through.
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			s.out.WriteString("\n\r")
			s.out.ClearLineRight()
		}
		s.out.WriteString(line)
	}
	s.lines = strings.Count(text, "\n") + 1
}

// styleFor maps an element to a termenv style: b/strong bold, i/em italic,
// u underline, s/del crossed out, mark reversed, blink blinking, plus
// color/bg attributes.
func (s *Surface) styleFor(n *node) termenv.Style {
	st := s.out.String()
	if n == nil || n.kind != surface.MarkupElement {
		return st
	}
	switch n.tag {
	case "b", "strong":
		st = st.Bold()
	case "i", "em":
		st = st.Italic()
	case "u":
		st = st.Underline()
	case "s", "del":
		st = st.CrossOut()
	case "mark":
		st = st.Reverse()
	case "blink", "caret":
		st = st.Blink()
	}
	p := s.out.ColorProfile()
	for _, a := range n.attrs {
		switch a.Key {
		case "color":
			st = st.Foreground(p.Color(a.Value))
		case "bg":
			st = st.Background(p.Color(a.Value))
		}
	}
	return st
}

type node struct {
	surf     *Surface
	kind     surface.NodeKind
	tag      string
	attrs    []surface.Attr
	text     string
	parent   *node
	children []*node
}

func (n *node) AppendChild(child surface.Node) {
	c, ok := child.(*node)
	if !ok {
		return
	}
	n.surf.mu.Lock()
	defer n.surf.mu.Unlock()
	c.parent = n
	n.children = append(n.children, c)
	n.surf.redraw()
}

func (n *node) Remove() {
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
	n.surf.redraw()
}

func (n *node) SetText(text string) {
	n.surf.mu.Lock()
	defer n.surf.mu.Unlock()
	n.text = text
	if n == n.surf.caret || n.attachedToRoot() {
		n.surf.redraw()
	}
}

func (n *node) attachedToRoot() bool {
	for p := n; p != nil; p = p.parent {
		if p == n.surf.root {
			return true
		}
	}
	return false
}

// render walks the subtree writing styled text. Element styles apply to
// the text directly inside them; nesting inherits the innermost style.
func (n *node) render(b *strings.Builder, out *termenv.Output, elem *node) {
	if n.kind == surface.TextNode {
		b.WriteString(n.surf.styleFor(elem).Styled(n.text))
		return
	}
	next := elem
	if n != n.surf.root {
		next = n
	}
	if n.text != "" && n != n.surf.root && n != n.surf.caret {
		b.WriteString(n.surf.styleFor(next).Styled(n.text))
	}
	for _, c := range n.children {
		c.render(b, out, next)
	}
}
