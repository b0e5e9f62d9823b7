package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// Strategy explores the neighbourhood of an interactive estimate and keeps
// the candidate with the smallest misfit.
type Strategy interface {
	Method() Method
	// SetInteractiveSolution sets the estimate Rrot (rows S1, S3, S2) and R0
	// that candidates are generated around.
	SetInteractiveSolution(rot tensor.Matrix3, r float64)
	// SetProgress installs fn; nil disables reporting.
	SetProgress(fn ProgressFunc)
	// Run returns in improved by the best candidate whose misfit is strictly
	// below in.MisfitValue, or an unchanged copy of in.
	Run(in Solution) (Solution, error)
}

// DefaultInteractiveRotation is the estimate used until one is set:
// σ1 horizontal toward North, σ3 horizontal toward East.
func DefaultInteractiveRotation() tensor.Matrix3 {
	return geomeca.RotationFromAxes(0, 0, math.Pi/2, 0, geomeca.MasterSigma1)
}

type base struct {
	method   Method
	rot      tensor.Matrix3
	r0       float64
	progress ProgressFunc
}

func newBase(m Method) base {
	return base{method: m, rot: DefaultInteractiveRotation(), r0: DefaultStressRatio}
}

// Method reports the strategy kind.
func (b *base) Method() Method { return b.method }

// SetInteractiveSolution stores the estimate candidates are generated around.
func (b *base) SetInteractiveSolution(rot tensor.Matrix3, r float64) {
	b.rot, b.r0 = rot, r
}

// InteractiveSolution returns the current estimate.
func (b *base) InteractiveSolution() (tensor.Matrix3, float64) { return b.rot, b.r0 }

// SetProgress installs fn; nil disables reporting.
func (b *base) SetProgress(fn ProgressFunc) { b.progress = fn }

// validate checks what every Run needs before candidates are generated.
func (b *base) validate(in Solution) error {
	if in.Criterion == nil {
		return ErrNilCriterion
	}
	if math.IsNaN(b.r0) || b.r0 < 0 || b.r0 > 1 {
		return fmt.Errorf("%w: interactive stress ratio %v outside [0, 1]", ErrInvalidOptions, b.r0)
	}
	return nil
}

// run evaluates total candidates, walked in chunks aligned on align, and
// merges the winner into a copy of in.
func (b *base) run(in Solution, total, align int, walk chunkWalker, workers int) (Solution, error) {
	if err := b.validate(in); err != nil {
		return in, err
	}
	tr := newTracker(b.progress, b.method, total)
	best := sweep(total, align, walk, in.Criterion, workers, tr)
	tr.finish()

	out := in.Clone()
	if best.found && best.value < in.MisfitValue {
		out.MisfitValue = best.value
		out.RotationMatrixD = best.cand.rotD
		out.RotationMatrixW = best.cand.rotW
		out.StressRatio = best.cand.r
	}
	return out, nil
}
