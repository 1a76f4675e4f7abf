// Package escape moves a point that sits inside a red zone (a region of
// obstacle cells) to the nearest free cell.
//
// ExitRedZone runs a uniform-cost search outward from start over all cells,
// blocked or not, scored by the straight-line distance from start. Cells are
// marked as seen when enqueued, so each cell enters the queue at most once,
// and the first free cell popped is returned. Since every cell has a
// neighbor strictly closer to start, cells are popped in non-decreasing
// distance order and the result is a free cell nearest to start; among
// equally near cells the heap decides.
//
// Options:
//
//   - WithMaxDistance(d): stop once the popped distance exceeds d (d ≥ 0).
//   - WithOnVisit(fn):    called for every popped cell with its distance.
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H)) in the worst case (no free cell).
//   - Space: O(W·H) for the seen grid and the heap.
//
// Errors:
//
//   - core.ErrNoPathFound (wrapped) if no free cell is reachable, or none
//     lies within MaxDistance, or start lies outside the map.
//   - ErrNilMap if the map is nil.
package escape
