package engine

import (
	"github.com/aretw0/typeline/pkg/playback"
	"github.com/aretw0/typeline/pkg/surface"
)

// Rendered is one materialized visual node, tagged by kind so that removal
// can tell a plain character from a markup wrapper.
type Rendered struct {
	Kind surface.NodeKind
	Node surface.Node
}

// Stack is the LIFO record of every node currently attached to the visual
// output. It exclusively owns the node handles between push and pop.
type Stack struct {
	items []Rendered
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push records a node that was just attached.
func (s *Stack) Push(r Rendered) {
	s.items = append(s.items, r)
}

// PopLast detaches the most recently attached node from the visual output
// and returns it. Popping a markup element whose last character was just
// removed leaves nothing behind; the scheduler is responsible for issuing
// the extra pop that sweeps a now-empty wrapper.
func (s *Stack) PopLast() (Rendered, error) {
	if len(s.items) == 0 {
		return Rendered{}, playback.ErrEmptyStack
	}
	r := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	r.Node.Remove()
	return r, nil
}

// Len returns the number of rendered nodes.
func (s *Stack) Len() int { return len(s.items) }
