// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_disc.go - Disc(center, radius) constructor.
//
// Contract:
//   - radius ≥ 0 (else ErrBadSize).
//   - Blocks every cell whose Euclidean distance to center is < radius.
//   - The disc may extend past the grid or lie wholly outside it; only the
//     overlap is filled.
//
// Complexity:
//   - Time: O(r²) over the disc's clipped bounding box.

package builder

import (
	"fmt"
	"math"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/geo"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// Disc blocks the open disc of the given radius around center.
func Disc(center core.Point, radius float64) Constructor {
	return func(g *gridgraph.Grid[bool], _ builderConfig) error {
		if radius < 0 || math.IsNaN(radius) {
			return fmt.Errorf("%s: radius=%g < 0: %w", methodDisc, radius, ErrBadSize)
		}

		b := g.Bounds()
		box := geo.DiscBound(center, radius)
		// Max is exclusive on the grid, inclusive on the orb box.
		grid := geo.Bound(core.Bounds{Min: b.Min, Max: b.Max.Sub(core.Pt(1, 1))})
		if !grid.Intersects(box) {
			return nil
		}

		minX := max(b.Min.X, int(math.Ceil(box.Min[0])))
		minY := max(b.Min.Y, int(math.Ceil(box.Min[1])))
		maxX := min(b.Max.X-1, int(math.Floor(box.Max[0])))
		maxY := min(b.Max.Y-1, int(math.Floor(box.Max[1])))

		for x := minX; x <= maxX; x++ {
			for y := minY; y <= maxY; y++ {
				p := core.Pt(x, y)
				if core.EuclideanDistance(p, center) < radius {
					g.Set(p, true)
				}
			}
		}
		return nil
	}
}
