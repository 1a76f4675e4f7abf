// SPDX-License-Identifier: MIT
// Package: pathfinder/builder

package builder

// Method names used to prefix constructor errors.
const (
	methodBuildGrid = "BuildGrid"
	methodColumn    = "Column"
	methodRow       = "Row"
	methodBlock     = "Block"
	methodDisc      = "Disc"
	methodNoise     = "Noise"
	methodClear     = "Clear"
)

// Probability domain for Noise.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Snail wall layout: a wall every snailPeriod columns, the second family
// shifted by snailOffset.
const (
	snailPeriod = 4
	snailOffset = 2
)
