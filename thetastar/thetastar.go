package thetastar

import (
	"fmt"
	"math"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/geo"
	"github.com/bonnetn/pathfinder/gridgraph"
	"github.com/bonnetn/pathfinder/gridmap"
	"github.com/bonnetn/pathfinder/pqueue"
)

// initialQueueCapacity is the heap's starting capacity.
const initialQueueCapacity = 1024

// FindPath returns the any-angle waypoints from start to end on m.
// It is Search without the counters.
func FindPath(m gridmap.Map, start, end core.Point, opts ...Option) ([]core.Point, error) {
	res, err := Search(m, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search finds an any-angle path from start to end on m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. Component labels, if given, must span m.Bounds() (ErrComponentsBounds).
//  3. start and end must be free cells (core.ErrNoPathFound).
//
// When start sees end directly, including start == end, the result is
// [start, end] and nothing is expanded.
//
// Complexity:
//
//   - Time:  O(W·H·(log(W·H) + L))
//   - Space: O(W·H)
func Search(m gridmap.Map, start, end core.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return Result{}, ErrNilMap
	}
	if cfg.Components != nil && cfg.Components.Bounds() != m.Bounds() {
		return Result{}, fmt.Errorf("%w: labels %s, map %s",
			ErrComponentsBounds, cfg.Components.Bounds(), m.Bounds())
	}

	if m.Obstacle(start) {
		return Result{}, fmt.Errorf("%w: start %s is an obstacle", core.ErrNoPathFound, start)
	}
	if m.Obstacle(end) {
		return Result{}, fmt.Errorf("%w: end %s is an obstacle", core.ErrNoPathFound, end)
	}

	if m.LineOfSight(start, end) {
		path := []core.Point{start, end}
		return Result{Path: path, Length: geo.Length(path)}, nil
	}

	if cfg.Components != nil && !gridgraph.Connected(cfg.Components, start, end) {
		return Result{}, fmt.Errorf("%w: %s and %s lie in different regions",
			core.ErrNoPathFound, start, end)
	}

	r := newRunner(m, cfg, end, start)
	path, ok := r.run()
	if !ok {
		return Result{}, fmt.Errorf("%w: %s is unreachable from %s", core.ErrNoPathFound, start, end)
	}
	return Result{
		Path:     path,
		Length:   geo.Length(path),
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	m       gridmap.Map
	options Options
	bounds  core.Bounds
	origin  core.Point // search root (the caller's end)
	target  core.Point // search goal (the caller's start)

	g    *gridgraph.Grid[float64]
	f    *gridgraph.Grid[float64]
	came *gridgraph.Grid[gridgraph.Link]
	open *pqueue.Queue

	expanded int
	pushed   int
}

func newRunner(m gridmap.Map, cfg Options, origin, target core.Point) *runner {
	b := m.Bounds()
	return &runner{
		m:       m,
		options: cfg,
		bounds:  b,
		origin:  origin,
		target:  target,
		g:       gridgraph.New(b, math.Inf(1)),
		f:       gridgraph.New(b, math.Inf(1)),
		came:    gridgraph.New(b, gridgraph.Link{}),
		open:    pqueue.New(initialQueueCapacity),
	}
}

// h is the straight-line distance from p to the target.
func (r *runner) h(p core.Point) float64 {
	return core.EuclideanDistance(p, r.target)
}

func (r *runner) push(p core.Point, f float64) {
	r.open.Enqueue(f, p)
	r.pushed++
}

// parent returns came[p]. An unset link here is a broken invariant: every
// pushed cell has its parent recorded before the push.
func (r *runner) parent(p core.Point) core.Point {
	l := r.came.Get(p)
	if !l.Set {
		panic(fmt.Sprintf("thetastar: cell %s has no parent", p))
	}
	return l.To
}

// run drives the main loop and returns the path once the target is popped.
func (r *runner) run() ([]core.Point, bool) {
	hOrigin := r.h(r.origin)
	r.g.Set(r.origin, 0)
	r.f.Set(r.origin, hOrigin)
	r.came.Set(r.origin, gridgraph.LinkTo(r.origin))
	r.push(r.origin, hOrigin)

	for {
		item, ok := r.open.Dequeue()
		if !ok {
			return nil, false
		}
		pos := item.Position

		// Stale entry: a better f was recorded after this push.
		if item.Score > r.f.Get(pos) {
			continue
		}
		r.expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(pos, item.Score)
		}

		if !r.m.LineOfSight(pos, r.parent(pos)) {
			r.reanchor(pos)
		}
		r.relax(pos)

		if pos == r.target {
			return r.reconstruct(), true
		}
	}
}

// reanchor attaches pos to its first neighbor of minimum g, obstacles
// included, and recomputes g[pos] with the heuristic folded in.
func (r *runner) reanchor(pos core.Point) {
	var best core.Point
	found := false
	for n := range gridgraph.Neighbors(pos, r.bounds) {
		if !found || r.g.Get(n) < r.g.Get(best) {
			best, found = n, true
		}
	}
	if !found {
		// Single-cell map: nothing to re-anchor to.
		return
	}

	r.g.Set(pos, r.g.Get(best)+core.EuclideanDistance(pos, best)+r.h(pos))
	r.came.Set(pos, gridgraph.LinkTo(best))
	if r.options.OnReanchor != nil {
		r.options.OnReanchor(pos, best)
	}
}

// relax offers came[pos] as parent to every free neighbor of pos.
func (r *runner) relax(pos core.Point) {
	parent := r.parent(pos)
	gParent := r.g.Get(parent)
	for n := range gridgraph.Neighbors(pos, r.bounds) {
		if r.m.Obstacle(n) {
			continue
		}
		hn := r.h(n)
		t := gParent + core.EuclideanDistance(n, parent) + hn
		if t >= r.g.Get(n) {
			continue
		}
		r.came.Set(n, gridgraph.LinkTo(parent))
		r.g.Set(n, t)
		f := t + 2*hn
		r.f.Set(n, f)
		r.push(n, f)
	}
}

// reconstruct follows came-from links from the target back to the origin.
// A chain longer than the number of cells means the links form a cycle.
func (r *runner) reconstruct() []core.Point {
	limit := r.bounds.Area()
	path := []core.Point{r.target}
	for p := r.target; p != r.origin; {
		p = r.parent(p)
		path = append(path, p)
		if len(path) > limit {
			panic(fmt.Sprintf("thetastar: came-from cycle through %s", p))
		}
	}
	return path
}
