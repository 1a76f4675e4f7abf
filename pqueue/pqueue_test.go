package pqueue_test

import (
	"container/heap"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/pqueue"
)

func TestQueue_PopsLowestScoreFirst(t *testing.T) {
	q := pqueue.New(4)
	q.Enqueue(3, core.Pt(3, 0))
	q.Enqueue(0.5, core.Pt(1, 0))
	q.Enqueue(math.Inf(1), core.Pt(9, 9))
	q.Enqueue(1, core.Pt(2, 0))

	var got []float64
	for {
		it, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, it.Score)
	}
	assert.Equal(t, []float64{0.5, 1, 3, math.Inf(1)}, got)
}

func TestQueue_EmptyDequeue(t *testing.T) {
	q := pqueue.New(0)
	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueue_PeekMatchesDequeue(t *testing.T) {
	q := pqueue.New(2)
	q.Enqueue(2, core.Pt(0, 2))
	q.Enqueue(1, core.Pt(0, 1))

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, q.Len(), "Peek must not remove")

	it, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, top, it)
	assert.Equal(t, core.Pt(0, 1), it.Position)
}

// TestQueue_HeapInterface drives the queue through container/heap directly,
// including duplicate positions the way lazy decrease-key pushes them.
func TestQueue_HeapInterface(t *testing.T) {
	q := &pqueue.Queue{}
	heap.Init(q)
	p := core.Pt(4, 4)
	heap.Push(q, pqueue.Item{Score: 10, Position: p})
	heap.Push(q, pqueue.Item{Score: 7, Position: p})
	heap.Push(q, pqueue.Item{Score: 8, Position: core.Pt(1, 1)})

	first := heap.Pop(q).(pqueue.Item)
	assert.Equal(t, 7.0, first.Score)
	assert.Equal(t, p, first.Position)
	assert.Equal(t, 8.0, heap.Pop(q).(pqueue.Item).Score)
	assert.Equal(t, 10.0, heap.Pop(q).(pqueue.Item).Score)
	assert.Zero(t, q.Len())
}
