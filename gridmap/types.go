package gridmap

import (
	"errors"

	"github.com/bonnetn/pathfinder/core"
)

// ErrNilGrid indicates that a nil obstacle grid was passed to a constructor.
var ErrNilGrid = errors.New("gridmap: obstacle grid is nil")

// Bounded exposes the half-open rectangle of addressable cells.
type Bounded interface {
	Bounds() core.Bounds
}

// Map is the read-only capability the searches depend on.
type Map interface {
	Bounded
	// Obstacle reports whether p is blocked. Points outside Bounds are
	// blocked.
	Obstacle(p core.Point) bool
	// LineOfSight reports whether the straight segment a→b is clear.
	LineOfSight(a, b core.Point) bool
}

// Circle is a circular obstacle centered on a cell.
type Circle struct {
	Center core.Point
	Radius int
}
