// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_walls.go - Column, Row, Block and Clear constructors.
//
// Contract:
//   - Every addressed cell must lie inside the grid (else ErrOutOfBounds).
//   - Block rejects inverted rectangles (ErrBadSize); an empty one is a no-op.
//   - Cells are visited x-major; the grid is untouched on invalid input.

package builder

import (
	"fmt"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// Column blocks every cell of column x.
// Complexity: O(H).
func Column(x int) Constructor {
	return func(g *gridgraph.Grid[bool], _ builderConfig) error {
		b := g.Bounds()
		if x < b.Min.X || x >= b.Max.X {
			return fmt.Errorf("%s: x=%d not in [%d,%d): %w", methodColumn, x, b.Min.X, b.Max.X, ErrOutOfBounds)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			g.Set(core.Pt(x, y), true)
		}
		return nil
	}
}

// Row blocks every cell of row y.
// Complexity: O(W).
func Row(y int) Constructor {
	return func(g *gridgraph.Grid[bool], _ builderConfig) error {
		b := g.Bounds()
		if y < b.Min.Y || y >= b.Max.Y {
			return fmt.Errorf("%s: y=%d not in [%d,%d): %w", methodRow, y, b.Min.Y, b.Max.Y, ErrOutOfBounds)
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(core.Pt(x, y), true)
		}
		return nil
	}
}

// Block blocks every cell of the half-open rectangle r.
// Complexity: O(area(r)).
func Block(r core.Bounds) Constructor {
	return func(g *gridgraph.Grid[bool], _ builderConfig) error {
		if r.Inverted() {
			return fmt.Errorf("%s: rectangle %s: %w", methodBlock, r, ErrBadSize)
		}
		if r.Empty() {
			return nil
		}
		b := g.Bounds()
		if !b.Contains(r.Min) || r.Max.X > b.Max.X || r.Max.Y > b.Max.Y {
			return fmt.Errorf("%s: rectangle %s exceeds %s: %w", methodBlock, r, b, ErrOutOfBounds)
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				g.Set(core.Pt(x, y), true)
			}
		}
		return nil
	}
}

// Clear frees the given cells, typically a search's start and end after a
// wall pattern covered them.
// Complexity: O(len(points)).
func Clear(points ...core.Point) Constructor {
	return func(g *gridgraph.Grid[bool], _ builderConfig) error {
		for _, p := range points {
			if !g.InBounds(p) {
				return fmt.Errorf("%s: point %s outside %s: %w", methodClear, p, g.Bounds(), ErrOutOfBounds)
			}
		}
		for _, p := range points {
			g.Set(p, false)
		}
		return nil
	}
}
