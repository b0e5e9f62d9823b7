// SPDX-License-Identifier: MIT
// Package search - deterministic random streams for Monte Carlo sampling.
//
// Concurrency:
//   - math/rand.Rand is not goroutine-safe. Each trial block gets its own
//     stream, derived from the user seed and the block index, and is used
//     by the single goroutine walking that block.

package search

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/paleostress/tensor"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// blockRNG returns the stream of trial block b under seed; seed 0 selects
// defaultRNGSeed.
func blockRNG(seed int64, b int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(b))))
}

// randomAxis draws a unit vector uniformly on the sphere. The colatitude is
// acos(2U-1), uniform in area.
func randomAxis(rng *rand.Rand) tensor.Vector3 {
	return tensor.SphericalToCartesian(tensor.SphericalCoords{
		Phi:   2 * math.Pi * rng.Float64(),
		Theta: math.Acos(2*rng.Float64() - 1),
	})
}
