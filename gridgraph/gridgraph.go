package gridgraph

import (
	"fmt"

	"github.com/bonnetn/pathfinder/core"
)

// New allocates a Grid covering b with every cell set to fill.
// Empty bounds give an empty Grid; inverted bounds (Max below Min) panic.
// Complexity: O(W×H) time and memory.
func New[T any](b core.Bounds, fill T) *Grid[T] {
	if b.Inverted() {
		panic(fmt.Sprintf("gridgraph: inverted bounds %s", b))
	}
	cells := make([]T, b.Area())
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{bounds: b, height: max(b.Height(), 0), cells: cells}
}

// From2D builds a zero-origin Grid from x-major input: values[x][y] is the
// cell at (x, y). The input is deep-copied.
// Returns ErrEmptyGrid if values has no columns or the columns are empty,
// ErrNonRectangular if any column length differs.
// Complexity: O(W×H).
func From2D[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(values), len(values[0])
	for _, col := range values {
		if len(col) != h {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{bounds: core.Rect(0, 0, w, h), height: h, cells: make([]T, w*h)}
	for x := 0; x < w; x++ {
		copy(g.cells[x*h:(x+1)*h], values[x])
	}
	return g, nil
}

// FromRows builds a zero-origin Grid from row-major input: rows[y][x] is the
// cell at (x, y). The input is deep-copied.
// Returns ErrEmptyGrid or ErrNonRectangular like From2D.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{bounds: core.Rect(0, 0, w, h), height: h, cells: make([]T, w*h)}
	for y, row := range rows {
		for x, v := range row {
			g.cells[x*h+y] = v
		}
	}
	return g, nil
}

// Bounds returns the (Min, Max) rectangle the grid was built with.
func (g *Grid[T]) Bounds() core.Bounds {
	return g.bounds
}

// InBounds reports whether p is addressable in g.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p core.Point) bool {
	return g.bounds.Contains(p)
}

// Get returns the cell at p. It panics if p lies outside the grid bounds.
// Complexity: O(1).
func (g *Grid[T]) Get(p core.Point) T {
	return g.cells[g.index(p)]
}

// Set stores v at p. It panics if p lies outside the grid bounds.
// Complexity: O(1).
func (g *Grid[T]) Set(p core.Point, v T) {
	g.cells[g.index(p)] = v
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{bounds: g.bounds, height: g.height, cells: cells}
}

// index translates p by bounds.Min into the backing slice.
func (g *Grid[T]) index(p core.Point) int {
	if !g.bounds.Contains(p) {
		panic(fmt.Sprintf("gridgraph: point %s outside grid bounds %s", p, g.bounds))
	}
	return (p.X-g.bounds.Min.X)*g.height + (p.Y - g.bounds.Min.Y)
}
