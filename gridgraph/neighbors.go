package gridgraph

import (
	"iter"

	"github.com/bonnetn/pathfinder/core"
)

// step moves p by one cell and reports whether the result stays in bounds.
// Each cardinal step checks only the side it moves towards.
type step func(p core.Point, b core.Bounds) (core.Point, bool)

func right(p core.Point, b core.Bounds) (core.Point, bool) {
	if p.X+1 >= b.Max.X {
		return p, false
	}
	return core.Point{X: p.X + 1, Y: p.Y}, true
}

func up(p core.Point, b core.Bounds) (core.Point, bool) {
	if p.Y+1 >= b.Max.Y {
		return p, false
	}
	return core.Point{X: p.X, Y: p.Y + 1}, true
}

func left(p core.Point, b core.Bounds) (core.Point, bool) {
	if p.X-1 < b.Min.X {
		return p, false
	}
	return core.Point{X: p.X - 1, Y: p.Y}, true
}

func down(p core.Point, b core.Bounds) (core.Point, bool) {
	if p.Y-1 < b.Min.Y {
		return p, false
	}
	return core.Point{X: p.X, Y: p.Y - 1}, true
}

// then composes two steps: the diagonal up-right is then(up, right).
func then(first, second step) step {
	return func(p core.Point, b core.Bounds) (core.Point, bool) {
		q, ok := first(p, b)
		if !ok {
			return p, false
		}
		return second(q, b)
	}
}

// neighborSteps fixes the enumeration order: cardinals, then diagonals.
var neighborSteps = [8]step{
	right, up, left, down,
	then(up, right), then(up, left), then(down, left), then(down, right),
}

// Neighbors returns the 8-connected neighbors of p that stay inside b, in
// the order right, up, left, down, up-right, up-left, down-left, down-right.
// The sequence is lazy and may be ranged over any number of times.
// Complexity: O(1).
func Neighbors(p core.Point, b core.Bounds) iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		for _, s := range neighborSteps {
			q, ok := s(p, b)
			if !ok {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}
