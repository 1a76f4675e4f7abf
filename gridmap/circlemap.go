package gridmap

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/geo"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// R-tree shape: 2D, 25..50 entries per node.
const (
	treeDim      = 2
	treeMinChild = 25
	treeMaxChild = 50
)

// boxPad widens every indexed and queried box so touching or degenerate
// boxes (zero radius, axis-aligned segments) still overlap with positive
// area.
const boxPad = 1.0

// CircleMap is a Map whose cells are blocked by a grid of obstacle flags
// and whose line of sight is blocked by circles.
//
// LineOfSight ignores the grid flags entirely: a segment crossing blocked
// cells but no circle is clear.
type CircleMap struct {
	obstacles *gridgraph.Grid[bool]
	circles   []Circle
	index     *rtreego.Rtree
}

var _ Map = (*CircleMap)(nil)

// circleEntry stores a circle in the R-tree.
type circleEntry struct {
	circle Circle
	box    rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *circleEntry) Bounds() rtreego.Rect {
	return e.box
}

// NewCircleMap builds a CircleMap over a deep copy of obstacles and circles.
// Returns ErrNilGrid if obstacles is nil.
// Complexity: O(W×H + C log C) for C circles.
func NewCircleMap(obstacles *gridgraph.Grid[bool], circles []Circle) (*CircleMap, error) {
	if obstacles == nil {
		return nil, ErrNilGrid
	}
	m := &CircleMap{
		obstacles: obstacles.Clone(),
		circles:   append([]Circle(nil), circles...),
		index:     rtreego.NewTree(treeDim, treeMinChild, treeMaxChild),
	}
	for _, c := range m.circles {
		box := geo.DiscBound(c.Center, math.Abs(float64(c.Radius))+boxPad)
		m.index.Insert(&circleEntry{circle: c, box: toRect(box)})
	}
	return m, nil
}

// Bounds returns the bounds of the obstacle grid.
func (m *CircleMap) Bounds() core.Bounds {
	return m.obstacles.Bounds()
}

// Circles returns a copy of the circle list in construction order.
func (m *CircleMap) Circles() []Circle {
	return append([]Circle(nil), m.circles...)
}

// Obstacle reports the obstacle flag at p; points outside the map are
// blocked.
// Complexity: O(1).
func (m *CircleMap) Obstacle(p core.Point) bool {
	return !m.obstacles.InBounds(p) || m.obstacles.Get(p)
}

// LineOfSight reports whether the segment start→end crosses no circle.
// A circle blocks when its boundary meets the segment strictly between the
// endpoints (0 < t < 1 on start + t·(end−start)); tangency exactly at an
// endpoint does not block, nor does a segment lying wholly inside a circle.
// Complexity: O(log C + K) for K candidate circles.
func (m *CircleMap) LineOfSight(start, end core.Point) bool {
	query := toRect(geo.SegmentBound(start, end).Pad(boxPad))
	for _, s := range m.index.SearchIntersect(query) {
		if crosses(s.(*circleEntry).circle, start, end) {
			return false
		}
	}
	return true
}

// crosses solves |start + t·dir − center|² = r² for t:
//
//	A = |dir|², B = 2·dir·(start−center), C = |start−center|² − r²
//
// and reports whether a root lies in the open interval (0, 1). Integer
// terms are computed in 64 bits before the float conversion.
func crosses(c Circle, start, end core.Point) bool {
	dir := end.Sub(start)
	alpha := start.Sub(c.Center)
	r := int64(c.Radius)

	a := dir.Norm2()
	b := 2 * dir.Dot(alpha)
	cc := alpha.Norm2() - r*r

	delta := b*b - 4*a*cc
	if delta < 0 || a == 0 {
		return false
	}

	sq := math.Sqrt(float64(delta))
	x1 := (-float64(b) - sq) / 2 / float64(a)
	if x1 > 0 && x1 < 1 {
		return true
	}
	x2 := (-float64(b) + sq) / 2 / float64(a)
	return x2 > 0 && x2 < 1
}

// toRect converts a padded orb.Bound to an rtreego.Rect. Padded bounds
// always have positive side lengths, so NewRect cannot fail.
func toRect(b orb.Bound) rtreego.Rect {
	r, err := rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		[]float64{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1]},
	)
	if err != nil {
		panic("gridmap: degenerate box " + err.Error())
	}
	return r
}
