package search

import (
	"math"

	"github.com/katalvlaran/paleostress/criteria"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// DefaultStressRatio is the stress ratio of a fresh solution and of the
// default interactive estimate.
const DefaultStressRatio = 0.5

// Solution is the best candidate known to a run.
type Solution struct {
	Criterion criteria.Criterion
	// MisfitValue is +Inf until a candidate has been evaluated.
	MisfitValue float64
	// RotationMatrixD is the perturbation relative to the interactive estimate.
	RotationMatrixD tensor.Matrix3
	// RotationMatrixW maps geographic to the candidate principal frame.
	RotationMatrixW tensor.Matrix3
	StressRatio     float64
}

// NewSolution returns an unevaluated solution scored by c.
func NewSolution(c criteria.Criterion) Solution {
	return Solution{
		Criterion:       c,
		MisfitValue:     math.Inf(1),
		RotationMatrixD: tensor.Identity(),
		RotationMatrixW: tensor.Identity(),
		StressRatio:     DefaultStressRatio,
	}
}

// Clone returns a copy. Matrices are values; the criterion is shared.
func (s Solution) Clone() Solution {
	return s
}

// Tensor returns the stress state of the solution.
func (s Solution) Tensor() geomeca.StressTensor {
	return geomeca.FromRotation(s.RotationMatrixW, s.StressRatio)
}
