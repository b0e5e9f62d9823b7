package search

import (
	"math/rand"

	"github.com/katalvlaran/paleostress/tensor"
)

// trialBlock is the number of consecutive trials drawn from one derived
// random stream.
const trialBlock = 32

// MonteCarlo draws NbRandomTrials perturbations, each a rotation about a
// uniform random axis by an angle uniform in [0, RotAngleHalfInterval],
// paired with a stress ratio uniform in [R0-h, R0+h] ∩ [0, 1].
//
// Trials are drawn in blocks of trialBlock, each from its own stream derived
// from Seed and the block index, while the sweep walks them. A given seed
// yields the same candidates and the same result for any worker count, and
// memory does not grow with NbRandomTrials.
type MonteCarlo struct {
	base
	opts MonteCarloOptions
}

// NewMonteCarlo validates opts and returns a Monte Carlo search.
func NewMonteCarlo(opts MonteCarloOptions) (*MonteCarlo, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &MonteCarlo{base: newBase(MonteCarloSearch), opts: opts}, nil
}

// Options returns the options the search was built with.
func (s *MonteCarlo) Options() MonteCarloOptions { return s.opts }

// Run scores the random trials against in.Criterion. Zero trials return an
// unchanged copy of in.
func (s *MonteCarlo) Run(in Solution) (Solution, error) {
	var (
		seed = s.opts.Seed
		half = s.opts.RotAngleHalfInterval
		rot  = s.rot
		rmin = max(0, s.r0-s.opts.StressRatioHalfInterval)
		rmax = min(1, s.r0+s.opts.StressRatioHalfInterval)
	)
	// empty only for an out-of-range R0, which run rejects
	rmax = max(rmin, rmax)

	walk := func(int) candidateAt {
		var rng *rand.Rand
		return func(idx int) (candidate, bool) {
			if rng == nil || idx%trialBlock == 0 {
				rng = blockRNG(seed, idx/trialBlock)
			}
			axis := randomAxis(rng)
			angle := rng.Float64() * half
			r := rmin + rng.Float64()*(rmax-rmin)
			return compose(tensor.ProperRotation(axis, angle), rot, r), true
		}
	}
	return s.run(in, s.opts.NbRandomTrials, trialBlock, walk, s.opts.Workers)
}
