// SPDX-License-Identifier: MIT
// Package: pathfinder/builder
//
// impl_noise.go - Noise(p) constructor.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Each cell is blocked independently with probability p; cells already
//     blocked stay blocked.
//
// Determinism:
//   - Stable trial order: x asc, then y asc, one draw per cell.

package builder

import (
	"fmt"

	"github.com/bonnetn/pathfinder/core"
	"github.com/bonnetn/pathfinder/gridgraph"
)

// Noise sprinkles random obstacles with density p.
// Complexity: O(W×H) Bernoulli trials.
func Noise(p float64) Constructor {
	return func(g *gridgraph.Grid[bool], cfg builderConfig) error {
		if err := validateProbability(methodNoise, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodNoise, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		b := g.Bounds()
		for x := b.Min.X; x < b.Max.X; x++ {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				pt := core.Pt(x, y)
				if p == MaxProbability || cfg.rng.Float64() < p {
					g.Set(pt, true)
				}
			}
		}
		return nil
	}
}
