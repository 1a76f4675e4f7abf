// Package gridmap defines the Map capability consumed by every search in
// this module, and its two implementations.
//
// A Map answers three questions about an immutable obstacle snapshot:
//
//   - Bounds: the half-open rectangle of addressable cells.
//   - Obstacle: whether a cell is blocked. Points outside Bounds report
//     true and are never read from the backing grid.
//   - LineOfSight: whether a straight segment between two cells is clear.
//
// Implementations:
//
//   - GridMap: obstacle flags in a gridgraph.Grid[bool]; line of sight is
//     the Bresenham walk of gridgraph.LineOfSight over those flags.
//   - CircleMap: the same obstacle flags plus an ordered list of circles;
//     line of sight is decided by ray-circle intersection alone, the grid
//     flags are not consulted for it. Circles are indexed in an R-tree
//     (github.com/dhconnelly/rtreego) so each query only solves the
//     quadratic for circles whose box meets the segment's box.
//
// Thread safety:
//
//   - Maps are never mutated after construction and may be shared by
//     concurrent searches.
//
// Errors:
//
//   - ErrNilGrid: a constructor received a nil obstacle grid.
package gridmap
