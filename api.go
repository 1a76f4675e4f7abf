package pathfinder

import (
	"errors"
	"fmt"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/escape"
	"github.com/bonnetn/pathfinder/gridgraph"
	"github.com/bonnetn/pathfinder/gridmap"
	"github.com/bonnetn/pathfinder/thetastar"
)

// ErrOutOfBounds indicates a start or end coordinate outside the obstacle
// array. It is reported before any search runs.
var ErrOutOfBounds = errors.New("pathfinder: position not in bounds")

// FindPath returns the any-angle waypoints from start to end over an x-major
// obstacle array (obstacles[x][y], true = blocked).
//
// Errors:
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular for malformed input.
//   - ErrOutOfBounds (wrapped with "start" or "end") for coordinates outside
//     the array.
//   - core.ErrNoPathFound (wrapped) when no route exists.
func FindPath(obstacles [][]bool, start, end core.Point) ([]core.Point, error) {
	g, err := load(obstacles, start, end)
	if err != nil {
		return nil, err
	}
	m, err := gridmap.NewGridMap(g)
	if err != nil {
		return nil, err
	}
	return thetastar.FindPath(m, start, end)
}

// FindPathAroundCircles is FindPath with line of sight decided by circles
// instead of the obstacle cells; the cells still decide which waypoints are
// free.
func FindPathAroundCircles(obstacles [][]bool, circles []gridmap.Circle, start, end core.Point) ([]core.Point, error) {
	g, err := load(obstacles, start, end)
	if err != nil {
		return nil, err
	}
	m, err := gridmap.NewCircleMap(g, circles)
	if err != nil {
		return nil, err
	}
	return thetastar.FindPath(m, start, end)
}

// ExitRedZone returns start if it is free, otherwise the nearest free cell of
// the x-major obstacle array.
//
// Errors:
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular for malformed input.
//   - ErrOutOfBounds (wrapped with "start") for a start outside the array.
//   - core.ErrNoPathFound (wrapped) when every cell is blocked.
func ExitRedZone(obstacles [][]bool, start core.Point) (core.Point, error) {
	g, err := load(obstacles, start)
	if err != nil {
		return core.Point{}, err
	}
	m, err := gridmap.NewGridMap(g)
	if err != nil {
		return core.Point{}, err
	}
	return escape.ExitRedZone(m, start)
}

// load wraps the array and checks positions in order; the first is labeled
// "start", the second "end".
func load(obstacles [][]bool, positions ...core.Point) (*gridgraph.Grid[bool], error) {
	g, err := gridgraph.From2D(obstacles)
	if err != nil {
		return nil, err
	}
	labels := [...]string{"start", "end"}
	for i, p := range positions {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %s position %s outside %s", ErrOutOfBounds, labels[i], p, g.Bounds())
		}
	}
	return g, nil
}
