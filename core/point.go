package core

import (
	"fmt"
	"math"
)

// Point is an integer cell coordinate. It carries no validity of its own;
// whether a Point is addressable is always decided against a Bounds.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q, widened to 64 bits before
// multiplying.
func (p Point) Dot(q Point) int64 {
	return int64(p.X)*int64(q.X) + int64(p.Y)*int64(q.Y)
}

// Norm2 returns the squared Euclidean norm of p as a 64-bit integer.
func (p Point) Norm2() int64 {
	return p.Dot(p)
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// EuclideanDistance returns the straight-line distance between a and b.
// Complexity: O(1).
func EuclideanDistance(a, b Point) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanDistance returns |dx|+|dy| between a and b.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ChebyshevDistance returns max(|dx|,|dy|) between a and b, the number of
// 8-connected steps separating two cells on an empty grid.
func ChebyshevDistance(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
