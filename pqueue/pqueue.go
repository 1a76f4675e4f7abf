// Package pqueue provides the min-first priority queue shared by the path
// and escape searches.
//
// Queue implements container/heap.Interface ordered by ascending Item.Score,
// so heap.Pop always yields the lowest score. Ties are broken arbitrarily.
// Searches use the "lazy decrease-key" pattern: an improved score is pushed
// as a new Item and the outdated entry is discarded when popped.
//
// Complexity: Push and Pop are O(log N); Len and Peek are O(1).
package pqueue

import (
	"container/heap"

	"github.com/bonnetn/pathfinder/core"
)

// Item is a transient (score, position) pair.
type Item struct {
	Score    float64
	Position core.Point
}

// Queue is a binary min-heap of Items keyed by Score.
type Queue []Item

// New returns an empty Queue with room for capacity items.
func New(capacity int) *Queue {
	q := make(Queue, 0, capacity)
	return &q
}

// Len returns the number of items in the heap.
func (q Queue) Len() int { return len(q) }

// Less orders by ascending score: the lowest score has the highest priority.
func (q Queue) Less(i, j int) bool { return q[i].Score < q[j].Score }

// Swap swaps two elements in the heap.
func (q Queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x, which must be an Item. Called by heap.Push.
func (q *Queue) Push(x any) { *q = append(*q, x.(Item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *Queue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// Enqueue pushes (score, p) keeping the heap invariant.
func (q *Queue) Enqueue(score float64, p core.Point) {
	heap.Push(q, Item{Score: score, Position: p})
}

// Dequeue removes and returns the lowest-score item. ok is false when the
// queue is empty.
func (q *Queue) Dequeue() (item Item, ok bool) {
	if q.Len() == 0 {
		return Item{}, false
	}
	return heap.Pop(q).(Item), true
}

// Peek returns the lowest-score item without removing it.
func (q Queue) Peek() (Item, bool) {
	if len(q) == 0 {
		return Item{}, false
	}
	return q[0], true
}
