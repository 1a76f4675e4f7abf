package escape

import (
	"fmt"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
	"github.com/bonnetn/pathfinder/gridmap"
	"github.com/bonnetn/pathfinder/pqueue"
)

// initialQueueCapacity is the heap's starting capacity.
const initialQueueCapacity = 1024

// ExitRedZone returns start when it is free, otherwise the nearest free
// cell of m by Euclidean distance.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. A free start is returned unchanged without searching.
//  3. start must lie inside m.Bounds() (core.ErrNoPathFound).
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H))
//   - Space: O(W·H)
func ExitRedZone(m gridmap.Map, start core.Point, opts ...Option) (core.Point, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return core.Point{}, ErrNilMap
	}
	if !m.Obstacle(start) {
		return start, nil
	}
	if !m.Bounds().Contains(start) {
		return core.Point{}, fmt.Errorf("%w: start %s outside map %s", core.ErrNoPathFound, start, m.Bounds())
	}

	r := &runner{
		m:       m,
		options: cfg,
		start:   start,
		seen:    gridgraph.New(m.Bounds(), false),
		open:    pqueue.New(initialQueueCapacity),
	}
	if p, ok := r.run(); ok {
		return p, nil
	}
	if r.capped {
		return core.Point{}, fmt.Errorf("%w: no free cell within %g of %s", core.ErrNoPathFound, cfg.MaxDistance, start)
	}
	return core.Point{}, fmt.Errorf("%w: no free cell reachable from %s", core.ErrNoPathFound, start)
}

// runner holds the mutable state of a single escape search.
type runner struct {
	m       gridmap.Map
	options Options
	start   core.Point
	seen    *gridgraph.Grid[bool] // set when a cell is enqueued
	open    *pqueue.Queue
	capped  bool // stopped by MaxDistance
}

// enqueue pushes p scored by its distance from start and marks it seen.
func (r *runner) enqueue(p core.Point) {
	r.open.Enqueue(core.EuclideanDistance(r.start, p), p)
	r.seen.Set(p, true)
}

// run pops cells in order of distance from start until a free one appears.
func (r *runner) run() (core.Point, bool) {
	r.enqueue(r.start)
	bounds := r.m.Bounds()

	for {
		item, ok := r.open.Dequeue()
		if !ok {
			return core.Point{}, false
		}
		// Scores never decrease, so nothing farther can be closer.
		if item.Score > r.options.MaxDistance {
			r.capped = true
			return core.Point{}, false
		}
		if r.options.OnVisit != nil {
			r.options.OnVisit(item.Position, item.Score)
		}
		if !r.m.Obstacle(item.Position) {
			return item.Position, true
		}

		for n := range gridgraph.Neighbors(item.Position, bounds) {
			if !r.seen.Get(n) {
				r.enqueue(n)
			}
		}
	}
}
