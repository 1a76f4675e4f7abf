// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// api.go — public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGrid(bounds, bopts, cons...). Allocates a free
//     grid, resolves cfg, runs cons in order.
//   - Later constructors see the effects of earlier ones, so Clear after
//     Snail or Noise carves cells back out.

package builder

import (
	"fmt"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// Constructor applies a deterministic mutation to an obstacle grid
// (true = blocked) using the resolved builderConfig. Constructors validate
// parameters before touching the grid and return wrapped sentinels.
type Constructor func(g *gridgraph.Grid[bool], cfg builderConfig) error

// BuildGrid allocates a free grid over b, resolves the builder configuration
// from bopts and applies all constructors in order. The first constructor
// error is returned wrapped with "BuildGrid: %w".
//
// Errors:
//   - ErrBadSize if b is empty or inverted.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel, wrapped.
//
// Complexity: O(W×H) allocation plus the constructors' cost.
func BuildGrid(b core.Bounds, bopts []BuilderOption, cons ...Constructor) (*gridgraph.Grid[bool], error) {
	if b.Empty() {
		return nil, fmt.Errorf("%s: bounds %s: %w", methodBuildGrid, b, ErrBadSize)
	}

	g := gridgraph.New(b, false)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGrid, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGrid, err)
		}
	}
	return g, nil
}
