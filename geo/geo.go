// Package geo bridges grid coordinates and planar geometry from
// github.com/paulmach/orb.
//
// Cell coordinates become orb.Point values with the same numeric x and y;
// a waypoint path becomes an orb.LineString whose planar length is the
// Euclidean length of the route.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/bonnetn/pathfinder/core"
)

// PointOf converts a cell coordinate to an orb.Point.
func PointOf(p core.Point) orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// LineString converts a waypoint path to an orb.LineString.
// Complexity: O(len(path)).
func LineString(path []core.Point) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, p := range path {
		ls[i] = PointOf(p)
	}
	return ls
}

// Length returns the Euclidean length of the polyline through path.
// Paths with fewer than two waypoints have length 0.
// Complexity: O(len(path)).
func Length(path []core.Point) float64 {
	if len(path) < 2 {
		return 0
	}
	return planar.Length(LineString(path))
}

// Bound converts half-open cell bounds to an orb.Bound spanning Min to Max.
func Bound(b core.Bounds) orb.Bound {
	return orb.Bound{Min: PointOf(b.Min), Max: PointOf(b.Max)}
}

// SegmentBound returns the axis-aligned box of the segment a→b.
func SegmentBound(a, b core.Point) orb.Bound {
	return PointOf(a).Bound().Extend(PointOf(b))
}

// DiscBound returns the axis-aligned box of the disc centered on c.
// A negative radius is treated as its absolute value.
func DiscBound(c core.Point, radius float64) orb.Bound {
	if radius < 0 {
		radius = -radius
	}
	return PointOf(c).Bound().Pad(radius)
}
