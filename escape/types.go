package escape

import (
	"errors"
	"math"

	"github.com/bonnetn/pathfinder/core"
)

// Sentinel errors returned or raised by the escape search.
var (
	// ErrNilMap indicates that a nil gridmap.Map was passed to ExitRedZone.
	ErrNilMap = errors.New("escape: map is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value.
	ErrBadMaxDistance = errors.New("escape: MaxDistance must be non-negative")
)

// Options configures ExitRedZone.
//
// MaxDistance – cells farther than this from start are never returned.
// Must be ≥ 0. Default is +Inf (no cap).
//
// OnVisit – invoked with each popped cell and its distance from start.
type Options struct {
	MaxDistance float64
	OnVisit     func(p core.Point, distance float64)
}

// Option represents a functional option for configuring ExitRedZone.
type Option func(*Options)

// WithMaxDistance caps the search radius.
// Panics with ErrBadMaxDistance if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithOnVisit registers a hook called for every popped cell.
func WithOnVisit(fn func(p core.Point, distance float64)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Options with no distance cap and no hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}
