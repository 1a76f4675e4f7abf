package gridgraph

import (
	"iter"

	"github.com/bonnetn/pathfinder/core"
)

// octant identifies which of the 8 slope sectors a segment falls in.
// Line maps every segment into octant 0 (0 <= dy <= dx), walks it there and
// maps each cell back.
type octant uint8

func octantOf(a, b core.Point) octant {
	dx, dy := b.X-a.X, b.Y-a.Y
	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

func (o octant) toFirst(p core.Point) core.Point {
	switch o {
	case 0:
		return p
	case 1:
		return core.Point{X: p.Y, Y: p.X}
	case 2:
		return core.Point{X: p.Y, Y: -p.X}
	case 3:
		return core.Point{X: -p.X, Y: p.Y}
	case 4:
		return core.Point{X: -p.X, Y: -p.Y}
	case 5:
		return core.Point{X: -p.Y, Y: -p.X}
	case 6:
		return core.Point{X: -p.Y, Y: p.X}
	default:
		return core.Point{X: p.X, Y: -p.Y}
	}
}

func (o octant) fromFirst(p core.Point) core.Point {
	switch o {
	case 0:
		return p
	case 1:
		return core.Point{X: p.Y, Y: p.X}
	case 2:
		return core.Point{X: -p.Y, Y: p.X}
	case 3:
		return core.Point{X: -p.X, Y: p.Y}
	case 4:
		return core.Point{X: -p.X, Y: -p.Y}
	case 5:
		return core.Point{X: -p.Y, Y: -p.X}
	case 6:
		return core.Point{X: p.Y, Y: -p.X}
	default:
		return core.Point{X: p.X, Y: -p.Y}
	}
}

// Line yields the Bresenham rasterization of the segment a→b, starting at a
// and stopping before b. Consecutive cells are 8-adjacent. For a == b the
// sequence is empty.
// Complexity: O(max(|dx|,|dy|)).
func Line(a, b core.Point) iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		o := octantOf(a, b)
		s, e := o.toFirst(a), o.toFirst(b)
		dx, dy := e.X-s.X, e.Y-s.Y
		y, diff := s.Y, dy-dx
		for x := s.X; x < e.X; x++ {
			if !yield(o.fromFirst(core.Point{X: x, Y: y})) {
				return
			}
			if diff >= 0 {
				y++
				diff -= dx
			}
			diff += dy
		}
	}
}

// Visible walks Line(a, b) followed by b itself and reports false as soon as
// a visited cell is blocked. Both endpoints are tested.
func Visible(a, b core.Point, blocked func(core.Point) bool) bool {
	for p := range Line(a, b) {
		if blocked(p) {
			return false
		}
	}
	return !blocked(b)
}

// LineOfSight reports whether no obstacle cell of obstacles lies on the
// rasterized segment a→b, endpoints included. Both a and b must lie inside
// the grid bounds; every rasterized cell then does too.
// Complexity: O(max(|dx|,|dy|)).
func LineOfSight(a, b core.Point, obstacles *Grid[bool]) bool {
	return Visible(a, b, obstacles.Get)
}

// Trace expands a waypoint path into the cells its straight hops cross, in
// path order, each waypoint appearing once. A nil or empty path gives nil.
// Complexity: O(total hop length).
func Trace(path []core.Point) []core.Point {
	if len(path) == 0 {
		return nil
	}
	var cells []core.Point
	for i := 1; i < len(path); i++ {
		for p := range Line(path[i-1], path[i]) {
			cells = append(cells, p)
		}
	}
	return append(cells, path[len(path)-1])
}
