package core

import "fmt"

// Bounds is the half-open rectangle [Min, Max): Min is inclusive, Max is
// exclusive. Either corner may have negative coordinates.
type Bounds struct {
	Min, Max Point
}

// Rect builds Bounds from two corners given as (minX, minY, maxX, maxY).
func Rect(minX, minY, maxX, maxY int) Bounds {
	return Bounds{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}

// Contains reports whether p lies within [Min, Max).
// Complexity: O(1).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Width returns Max.X-Min.X.
func (b Bounds) Width() int { return b.Max.X - b.Min.X }

// Height returns Max.Y-Min.Y.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y }

// Area returns the number of cells covered by b, or 0 for empty or
// inverted bounds.
func (b Bounds) Area() int {
	if b.Empty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Empty reports whether b covers no cell.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Inverted reports whether Max lies below Min on either axis.
func (b Bounds) Inverted() bool {
	return b.Width() < 0 || b.Height() < 0
}

// String renders b as "[(minx,miny),(maxx,maxy))".
func (b Bounds) String() string {
	return fmt.Sprintf("[%s,%s)", b.Min, b.Max)
}
