// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w, prefixed by the method name.
//   • Constructors do not panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrBadSize indicates empty or inverted bounds, or a negative radius.
// Usage: if errors.Is(err, ErrBadSize) { /* fix bounds/radius */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a probability outside [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor passed to BuildGrid.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOutOfBounds indicates a constructor addressing cells outside the grid.
var ErrOutOfBounds = errors.New("builder: outside grid bounds")
