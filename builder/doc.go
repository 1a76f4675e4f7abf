// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// Package builder assembles obstacle grids for tests, examples and
// benchmarks from composable, deterministic constructors.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGrid(bounds, bopts, cons...): allocates a free grid over bounds
//     and applies the constructors in order.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG used by stochastic constructors.
//   - Constructors (Constructor closures):
//     – Column, Row:  a full wall along one column or row.
//     – Block:        a filled rectangle.
//     – Disc:         every cell strictly closer than r to a center.
//     – Snail:        alternating walls forcing a serpentine route.
//     – Noise:        independent Bernoulli(p) obstacles.
//     – Clear:        frees individual cells (start/end carving).
//
// Guarantees:
//
//   - Determinism: same bounds, options, seed and constructor order give
//     identical grids.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless input.
//
// Errors:
//
//   - ErrBadSize, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed, ErrOutOfBounds.
package builder
