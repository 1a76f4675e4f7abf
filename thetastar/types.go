package thetastar

import (
	"errors"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// Sentinel errors for invalid search input.
var (
	// ErrNilMap indicates that a nil gridmap.Map was passed to the search.
	ErrNilMap = errors.New("thetastar: map is nil")

	// ErrComponentsBounds indicates that component labels were computed over
	// different bounds than the searched map.
	ErrComponentsBounds = errors.New("thetastar: component labels do not match map bounds")

	// ErrNilComponents is the panic value of WithComponents(nil).
	ErrNilComponents = errors.New("thetastar: component labels are nil")
)

// Options configures a search.
//
// OnExpand   – invoked with each non-stale popped cell and its f-score.
// OnReanchor – invoked with a popped cell and the neighbor it was re-anchored to.
// Components – optional region labels from gridgraph.Components.
type Options struct {
	OnExpand   func(p core.Point, f float64)
	OnReanchor func(p, parent core.Point)
	Components *gridgraph.Grid[int]
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no hooks and no component labels.
func DefaultOptions() Options {
	return Options{}
}

// WithOnExpand registers a hook called for every non-stale pop.
func WithOnExpand(fn func(p core.Point, f float64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnReanchor registers a hook called whenever a popped cell loses sight
// of its parent and is re-attached to a neighbor.
func WithOnReanchor(fn func(p, parent core.Point)) Option {
	return func(o *Options) {
		o.OnReanchor = fn
	}
}

// WithComponents supplies region labels computed by gridgraph.Components
// over the map's obstacles. Labels are trusted as given.
// Panics with ErrNilComponents if labels is nil.
func WithComponents(labels *gridgraph.Grid[int]) Option {
	return func(o *Options) {
		if labels == nil {
			panic(ErrNilComponents.Error())
		}
		o.Components = labels
	}
}

// Result is the outcome of a successful Search.
type Result struct {
	// Path holds the waypoints from start to end, both included.
	Path []core.Point
	// Length is the Euclidean length of the polyline through Path.
	Length float64
	// Expanded counts non-stale pops.
	Expanded int
	// Pushed counts heap insertions, the seed included.
	Pushed int
}
