package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typeline/pkg/adapters/memory"
	"github.com/aretw0/typeline/pkg/playback"
	"github.com/aretw0/typeline/pkg/surface"
)

func TestStackPopDetachesLIFO(t *testing.T) {
	surf := memory.New()
	st := NewStack()

	a := surf.NewText("a")
	b := surf.NewText("b")
	surf.Root().AppendChild(a)
	surf.Root().AppendChild(b)
	st.Push(Rendered{Kind: surface.TextNode, Node: a})
	st.Push(Rendered{Kind: surface.TextNode, Node: b})
	require.Equal(t, 2, st.Len())
	require.Equal(t, "ab", surf.Text())

	r, err := st.PopLast()
	require.NoError(t, err)
	assert.Equal(t, surface.TextNode, r.Kind)
	assert.Equal(t, "a", surf.Text(), "pop detaches the last attached node")

	_, err = st.PopLast()
	require.NoError(t, err)
	assert.Equal(t, "", surf.Text())
	assert.Equal(t, 0, st.Len())
}

func TestStackPopEmpty(t *testing.T) {
	st := NewStack()
	_, err := st.PopLast()
	assert.ErrorIs(t, err, playback.ErrEmptyStack)
	assert.Equal(t, 0, st.Len())
}
