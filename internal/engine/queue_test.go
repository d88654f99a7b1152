package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typeline/pkg/playback"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	assert.True(t, q.Empty())

	q.Enqueue(playback.Command{Kind: playback.TypeCharacter, Char: 'a'})
	q.Enqueue(playback.Command{Kind: playback.TypeCharacter, Char: 'b'})
	require.Equal(t, 2, q.Len())

	cmd, err := q.DequeueFront()
	require.NoError(t, err)
	assert.Equal(t, 'a', cmd.Char)

	cmd, err = q.DequeueFront()
	require.NoError(t, err)
	assert.Equal(t, 'b', cmd.Char)
	assert.True(t, q.Empty())
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue()
	_, err := q.DequeueFront()
	assert.ErrorIs(t, err, playback.ErrEmptyQueue)

	_, err = q.Peek()
	assert.ErrorIs(t, err, playback.ErrEmptyQueue)
}

func TestQueuePrependRunsBeforeQueued(t *testing.T) {
	q := NewQueue()
	q.Enqueue(playback.Command{Kind: playback.TypeCharacter, Char: 'z'})

	// An expansion block keeps its relative order and jumps the line.
	q.Prepend(
		playback.Command{Kind: playback.RemoveLastVisibleNode},
		playback.Command{Kind: playback.ChangeDeleteSpeed},
	)

	kinds := []playback.CommandKind{}
	for !q.Empty() {
		cmd, _ := q.DequeueFront()
		kinds = append(kinds, cmd.Kind)
	}
	assert.Equal(t, []playback.CommandKind{
		playback.RemoveLastVisibleNode,
		playback.ChangeDeleteSpeed,
		playback.TypeCharacter,
	}, kinds)
}

func TestQueuePrependNothing(t *testing.T) {
	q := NewQueue()
	q.Enqueue(playback.Command{Kind: playback.PauseFor})
	q.Prepend()
	assert.Equal(t, 1, q.Len())
}

func TestInboxDrainPreservesOrder(t *testing.T) {
	var in Inbox
	in.Put(playback.Command{Char: 'a'}, playback.Command{Char: 'b'})
	in.Put(playback.Command{Char: 'c'})

	got := in.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, 'a', got[0].Char)
	assert.Equal(t, 'c', got[2].Char)
	assert.Empty(t, in.Drain())
}
