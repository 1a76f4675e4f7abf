// Package thetastar finds any-angle paths on a gridmap.Map with an A*
// search that relaxes parents Theta*-style through line of sight.
//
// The search runs backwards: it grows from end (the origin) until start
// (the target) is popped, so following came-from links from start yields
// the path in start→end order without a reversal.
//
// Algorithm outline:
//
//  1. If start or end is an obstacle, fail with core.ErrNoPathFound.
//  2. If m.LineOfSight(start, end), return [start, end] without searching.
//  3. Seed g[end]=0, f[end]=h(end), came[end]=end and push end.
//  4. Pop the lowest f; skip the entry if it is stale (f > f[pos]).
//  5. If pos cannot see came[pos], re-anchor: came[pos] becomes the first
//     neighbor of minimum g, and g[pos] = g[n] + dist(pos, n) + h(pos).
//  6. For every free neighbor n, try parent = came[pos]:
//     t = g[parent] + dist(n, parent) + h(n); on t < g[n] store came[n],
//     g[n]=t, f[n]=t+2·h(n) and push n.
//  7. Once pos == start, walk came-from links to end.
//
// h(p) is the Euclidean distance from p to start. The heuristic is folded
// into g on re-anchoring and counted twice in f.
//
// Options:
//
//   - WithOnExpand(fn):   called for every non-stale pop.
//   - WithOnReanchor(fn): called when a popped cell gets a new parent.
//   - WithComponents(l):  precomputed gridgraph.Components labels; start/end
//     pairs in different regions fail fast after the line-of-sight check.
//
// Complexity:
//
//   - Time:  O(W·H·(log(W·H) + L)) where L bounds one line-of-sight query.
//   - Space: O(W·H) for the g, f and came-from grids plus the heap.
//
// Errors:
//
//   - core.ErrNoPathFound (wrapped with context) when no route exists.
//   - ErrNilMap if the map is nil.
//   - ErrComponentsBounds if WithComponents labels do not match the map.
package thetastar
