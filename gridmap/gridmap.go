package gridmap

import (
	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// GridMap is a Map backed by a grid of obstacle flags (true = blocked).
type GridMap struct {
	obstacles *gridgraph.Grid[bool]
}

var _ Map = (*GridMap)(nil)

// NewGridMap builds a GridMap over a deep copy of obstacles, so later
// changes to the caller's grid do not reach the map.
// Returns ErrNilGrid if obstacles is nil.
// Complexity: O(W×H).
func NewGridMap(obstacles *gridgraph.Grid[bool]) (*GridMap, error) {
	if obstacles == nil {
		return nil, ErrNilGrid
	}
	return &GridMap{obstacles: obstacles.Clone()}, nil
}

// Bounds returns the bounds of the obstacle grid.
func (m *GridMap) Bounds() core.Bounds {
	return m.obstacles.Bounds()
}

// Obstacle reports the obstacle flag at p; points outside the map are
// blocked.
// Complexity: O(1).
func (m *GridMap) Obstacle(p core.Point) bool {
	return !m.obstacles.InBounds(p) || m.obstacles.Get(p)
}

// LineOfSight walks the rasterized segment a→b, endpoints included, and
// reports false on the first blocked cell.
// Complexity: O(max(|dx|,|dy|)).
func (m *GridMap) LineOfSight(a, b core.Point) bool {
	return gridgraph.Visible(a, b, m.Obstacle)
}
