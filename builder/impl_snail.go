// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_snail.go - Snail() constructor.
//
// Layout (offsets relative to bounds.Min.X):
//   - Columns 0, 4, 8, ... are walls with a gap in the bottom row.
//   - Columns 2, 6, 10, ... are walls with a gap in the top row.
//
// A route from one side to the other must zigzag through every gap.
// Combine with Clear to free the search endpoints.

package builder

import (
	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// Snail draws the serpentine wall pattern over the whole grid.
// Complexity: O(W×H).
func Snail() Constructor {
	return func(g *gridgraph.Grid[bool], _ builderConfig) error {
		b := g.Bounds()
		bottom, top := b.Min.Y, b.Max.Y-1

		wall := func(x, gap int) {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				g.Set(core.Pt(x, y), y != gap)
			}
		}
		for x := b.Min.X; x < b.Max.X; x += snailPeriod {
			wall(x, bottom)
		}
		for x := b.Min.X + snailOffset; x < b.Max.X; x += snailPeriod {
			wall(x, top)
		}
		return nil
	}
}
