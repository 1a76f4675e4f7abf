// Package core holds the small value types shared by every pathfinding
// package: integer cell coordinates (Point), half-open rectangles (Bounds),
// the distance metrics used as costs and heuristics, and ErrNoPathFound.
//
// Coordinates are plain ints and may be negative. A grid whose Bounds are
// [(-10,-7),(-4,-1)) addresses exactly the same way as one anchored at the
// origin; nothing in this package assumes Min is (0,0).
//
// All types are comparable values, safe to copy and to use as map keys.
package core
