package search

import "github.com/katalvlaran/paleostress/tensor"

// Fibonacci rotates the estimate about each axis of a Fibonacci spiral by
// angles jδ, j in [-n, n], and sweeps the stress ratio as Grid does. The
// null rotation is common to every axis and is evaluated once.
type Fibonacci struct {
	base
	opts FibonacciOptions
}

// NewFibonacci validates opts and returns a Fibonacci lattice search.
func NewFibonacci(opts FibonacciOptions) (*Fibonacci, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Fibonacci{base: newBase(FibonacciSearch), opts: opts}, nil
}

// Options returns the options the search was built with.
func (s *Fibonacci) Options() FibonacciOptions { return s.opts }

// Run scores every (axis, angle, R) node against in.Criterion.
func (s *Fibonacci) Run(in Solution) (Solution, error) {
	var (
		nb     = s.opts.NbNodesSpiral
		n      = nodes(s.opts.RotAngleHalfInterval, s.opts.DeltaRotAngle)
		m      = nodes(s.opts.StressRatioHalfInterval, s.opts.DeltaStressRatio)
		angles = 2*n + 1
		rs     = 2*m + 1
		axes   = make([]tensor.Vector3, nb)
	)
	for i := range axes {
		axes[i] = tensor.FibonacciAxis(i, nb)
	}
	at := func(idx int) (candidate, bool) {
		l := idx % rs
		idx /= rs
		j := idx%angles - n
		i := idx / angles
		if j == 0 && i != 0 {
			return candidate{}, false
		}
		r, ok := stressRatioAt(s.r0, l-m, s.opts.DeltaStressRatio)
		if !ok {
			return candidate{}, false
		}
		dt := tensor.ProperRotation(axes[i], float64(j)*s.opts.DeltaRotAngle)
		return compose(dt, s.rot, r), true
	}
	return s.run(in, nb*angles*rs, 1, stateless(at), s.opts.Workers)
}
