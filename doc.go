// Package pathfinder finds short any-angle routes across grids of blocked
// and free cells, and pulls points out of blocked regions.
//
// 🚀 What is pathfinder?
//
//	A pure, synchronous, in-memory library that brings together:
//		• Grid primitives: signed bounds, dense grids, 8-neighborhoods
//		• Line of sight: Bresenham rasterization, ray–circle tests
//		• Any-angle search: an A* variant with Theta*-style parents
//		• Escape: nearest free cell from inside a red zone
//
// This package is the thin front door over plain x-major boolean arrays
// (obstacles[x][y], true = blocked). It validates coordinates, builds the
// map and delegates to the engines:
//
//	core/       Point, Bounds, distance metrics, ErrNoPathFound
//	gridgraph/  Grid[T], Neighbors, Line/LineOfSight, Trace, Components
//	gridmap/    the Map capability: GridMap and CircleMap
//	pqueue/     min-first priority queue shared by both searches
//	thetastar/  FindPath / Search
//	escape/     ExitRedZone
//	geo/        orb bridge: path length and bounding boxes
//	builder/    deterministic obstacle fixtures
//
// Maps are immutable once built and may be shared by concurrent searches;
// every search owns its scratch state.
//
// Quick example:
//
//	obstacles := [][]bool{ // obstacles[x][y]
//		{false, false, false},
//		{true, true, false},
//		{false, false, false},
//	}
//	path, err := pathfinder.FindPath(obstacles, core.Pt(0, 0), core.Pt(2, 0))
//	// path: [(0,0) (1,2) (2,1) (2,0)]
package pathfinder
