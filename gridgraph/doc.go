// Package gridgraph treats a bounded 2D grid of cells as an implicit
// 8-connected graph, the substrate shared by every search in this module.
//
// What:
//
//   - Grid[T] is dense storage addressed by core.Point inside a half-open
//     core.Bounds, possibly with negative coordinates.
//   - Neighbors lazily enumerates the up-to-8 adjacent cells of a point.
//   - Line rasterizes a segment with Bresenham's algorithm; LineOfSight and
//     Visible test a segment against blocked cells.
//   - Trace expands an any-angle path into the contiguous cells it crosses.
//   - Components labels 8-connected regions of free cells.
//
// Addressing:
//
//   - From2D wraps x-major input (values[x][y]); FromRows wraps row-major
//     input (rows[y][x]). Both yield bounds ((0,0),(width,height)).
//   - Get and Set panic on points outside the grid bounds. Such a call is a
//     programming error, never a recoverable condition.
//
// Neighbor order:
//
//   - right, up, left, down, then up-right, up-left, down-left, down-right.
//   - A diagonal is the composition of two cardinal steps, so it exists only
//     when both of its cardinal components are in bounds.
//
// Complexity:
//
//   - Get/Set/InBounds: O(1).
//   - Neighbors: O(1) per call, at most 8 points.
//   - Line/LineOfSight: O(max(|dx|,|dy|)).
//   - Components: O(W×H×8) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
