package gridgraph

import "github.com/bonnetn/pathfinder/core"

// Grid is a dense rectangular container addressed by core.Point.
// Every point within [bounds.Min, bounds.Max) maps to exactly one cell of
// the backing slice. Cells are stored x-major: index = dx*height + dy.
// A Grid is not safe for concurrent mutation; concurrent reads are fine.
type Grid[T any] struct {
	bounds core.Bounds
	height int
	cells  []T
}

// Link is a came-from entry: the predecessor of a cell on its best-known
// path, or the zero Link when no predecessor has been recorded yet.
type Link struct {
	To  core.Point
	Set bool
}

// LinkTo returns a set Link pointing at p.
func LinkTo(p core.Point) Link {
	return Link{To: p, Set: true}
}
