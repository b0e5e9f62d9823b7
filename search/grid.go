package search

import (
	"math"

	"github.com/katalvlaran/paleostress/tensor"
)

// Grid scans perturbations DT(φ, θ, α) on a regular grid of Euler angles
// and, for each, a regular sweep of the stress ratio around R0.
//
// Iteration order is φ, θ, α (outer to inner) then R; with strict <
// comparisons the first candidate reaching the minimum wins.
//
// Complexity: (2n+1)³·(2m+1) criterion evaluations, n = ⌈half/δ⌉ and
// m = ⌈halfR/δR⌉.
type Grid struct {
	base
	opts GridOptions
}

// NewGrid validates opts and returns a grid search.
func NewGrid(opts GridOptions) (*Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Grid{base: newBase(GridSearch), opts: opts}, nil
}

// Options returns the options the search was built with.
func (g *Grid) Options() GridOptions { return g.opts }

// Run scores every grid node against in.Criterion.
func (g *Grid) Run(in Solution) (Solution, error) {
	var (
		n     = nodes(g.opts.AngleHalfInterval, g.opts.DeltaGridAngle)
		m     = nodes(g.opts.StressRatioHalfInterval, g.opts.DeltaStressRatio)
		side  = 2*n + 1
		rs    = 2*m + 1
		delta = g.opts.DeltaGridAngle
		rot   = g.rot
		r0    = g.r0
	)
	at := func(idx int) (candidate, bool) {
		l := idx % rs
		idx /= rs
		k := idx % side
		idx /= side
		j := idx % side
		i := idx / side

		r, ok := stressRatioAt(r0, l-m, g.opts.DeltaStressRatio)
		if !ok {
			return candidate{}, false
		}
		dt := eulerZYX(float64(i-n)*delta, float64(j-n)*delta, float64(k-n)*delta)
		return compose(dt, rot, r), true
	}
	return g.run(in, side*side*side*rs, 1, stateless(at), g.opts.Workers)
}

// eulerZYX returns Rz(phi)·Ry(theta)·Rx(alpha).
func eulerZYX(phi, theta, alpha float64) tensor.Matrix3 {
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	sa, ca := math.Sincos(alpha)
	return tensor.Matrix3{
		{cp * ct, -sp*ca + cp*st*sa, sp*sa + cp*st*ca},
		{sp * ct, cp*ca + sp*st*sa, -cp*sa + sp*st*ca},
		{-st, ct * sa, ct * ca},
	}
}
