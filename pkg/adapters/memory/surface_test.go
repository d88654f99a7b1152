package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typeline/pkg/surface"
)

func TestSurfaceTreeAndText(t *testing.T) {
	s := New()
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, s.NodeCount())

	el := s.NewElement("b", []surface.Attr{{Key: "color", Value: "red"}})
	s.Root().AppendChild(el)
	el.AppendChild(s.NewText("h"))
	el.AppendChild(s.NewText("i"))
	s.Root().AppendChild(s.NewText("!"))

	assert.Equal(t, "hi!", s.Text())
	assert.Equal(t, 4, s.NodeCount(), "element, its two characters, and the bang")
}

func TestNodeRemoveDetaches(t *testing.T) {
	s := New()
	a := s.NewText("a")
	b := s.NewText("b")
	s.Root().AppendChild(a)
	s.Root().AppendChild(b)

	a.Remove()
	assert.Equal(t, "b", s.Text())

	// Removing an already detached node changes nothing.
	a.Remove()
	assert.Equal(t, "b", s.Text())
	assert.Equal(t, 1, s.NodeCount())
}

func TestRemoveElementDropsSubtree(t *testing.T) {
	s := New()
	el := s.NewElement("b", nil)
	s.Root().AppendChild(el)
	el.AppendChild(s.NewText("x"))

	el.Remove()
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, s.NodeCount())
}

func TestJournalRecordsMutationOrder(t *testing.T) {
	s := New()
	a := s.NewText("a")
	s.Root().AppendChild(a)
	a.SetText("A")
	a.Remove()

	got := s.Journal()
	require.Len(t, got, 3)
	assert.Equal(t, Mutation{Op: OpAttach, Kind: surface.TextNode, Text: "a"}, got[0])
	assert.Equal(t, Mutation{Op: OpSetText, Kind: surface.TextNode, Text: "A"}, got[1])
	assert.Equal(t, Mutation{Op: OpDetach, Kind: surface.TextNode, Text: "A"}, got[2])

	s.ResetJournal()
	assert.Empty(t, s.Journal())
	assert.Equal(t, 0, s.NodeCount(), "reset clears the log, not the tree")
}

func TestObserverSeesEveryMutation(t *testing.T) {
	var seen []MutationOp
	s := New(WithObserver(func(m Mutation) { seen = append(seen, m.Op) }))

	n := s.NewText("a")
	s.Root().AppendChild(n)
	n.Remove()

	assert.Equal(t, []MutationOp{OpAttach, OpDetach}, seen)
}

func TestCaretIsNotPartOfOutput(t *testing.T) {
	s := New()
	assert.NotNil(t, s.Caret())
	s.Root().AppendChild(s.NewText("a"))
	assert.Equal(t, "a", s.Text())
}
