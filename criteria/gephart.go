// SPDX-License-Identifier: MIT
// Package criteria - Gephart minimum-rotation misfit.
//
// Purpose:
//   - Score each fault by the smallest rotation of its measured frame that
//     makes it consistent with the trial stress.
//   - Offer three neighbourhood samplers (grid, Fibonacci, Monte Carlo)
//     that converge to the same minimum.
//
// Concurrency:
//   - Value is pure: the Monte Carlo sampler seeds a fresh stream per call.

package criteria

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// PlaneSearch selects how Gephart samples the planes neighbouring a fault.
type PlaneSearch int

const (
	// PlaneGrid walks concentric circles around the fault normal at a fixed
	// angular step. Deterministic.
	PlaneGrid PlaneSearch = iota
	// PlaneFibonacci rotates the normal about golden-spiral axes through
	// linearly spaced angles. Deterministic.
	PlaneFibonacci
	// PlaneMonteCarlo rotates the normal about uniform random axes through
	// uniform random angles. Seeded.
	PlaneMonteCarlo
)

// String implements fmt.Stringer.
func (p PlaneSearch) String() string {
	switch p {
	case PlaneGrid:
		return "grid"
	case PlaneFibonacci:
		return "fibonacci"
	case PlaneMonteCarlo:
		return "montecarlo"
	}
	return fmt.Sprintf("PlaneSearch(%d)", int(p))
}

// ParsePlaneSearch accepts the String forms, ignoring case, spaces, '-'
// and '_'. The empty string selects PlaneGrid.
func ParsePlaneSearch(s string) (PlaneSearch, error) {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
	switch key {
	case "", "grid":
		return PlaneGrid, nil
	case "fibonacci", "fibonaccilattice":
		return PlaneFibonacci, nil
	case "montecarlo":
		return PlaneMonteCarlo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedPlaneSearch, s)
}

// Defaults for the Gephart neighbourhood search.
const (
	DefaultPlaneDelta = 2 * math.Pi / 180
	DefaultNbNodes    = 50
	DefaultNbTrials   = 500
)

const defaultSeed int64 = 1

// Gephart is the minimum-rotation criterion of Gephart & Forsyth (1984).
//
// For each active fault the start value is the angle between the measured
// striation and the shear resolved on the measured plane (π without shear).
// Neighbouring planes n′ inside the cone of that apex around n are then
// sampled; each defines the proper rotation taking the measured frame
// (n, s, n×s) onto the predicted frame (n′, τ̂′, n′×τ̂′), and the smallest
// such rotation angle is the fault's misfit. Since a rotation of angle Ω
// moves n by at most Ω, planes farther than the current best are skipped.
//
// Fracture-like data are ignored.
type Gephart struct {
	Data   data.Set
	Engine geomeca.EngineFactory
	Search PlaneSearch
	// Delta is the angular step of PlaneGrid and PlaneFibonacci (radians).
	Delta float64
	// NbNodes is the number of spiral axes of PlaneFibonacci.
	NbNodes int
	// NbTrials is the number of draws of PlaneMonteCarlo.
	NbTrials int
	// Seed feeds PlaneMonteCarlo; 0 selects a fixed default.
	Seed int64
	// MaxNbFault > 0 sums only the MaxNbFault smallest weighted rotations.
	MaxNbFault int
}

// NewGephart returns a Gephart criterion with default sampling parameters.
func NewGephart(set data.Set, search PlaneSearch) *Gephart {
	return &Gephart{
		Data:     set,
		Search:   search,
		Delta:    DefaultPlaneDelta,
		NbNodes:  DefaultNbNodes,
		NbTrials: DefaultNbTrials,
	}
}

// Value implements Criterion: the sum of the weighted minimum rotations of
// the active faults, truncated to the MaxNbFault smallest when set.
//
// Contracts:
//   - Fracture-like and inactive data contribute nothing.
//   - Same receiver and stress give the same value, also across goroutines.
//
// Complexity: O(F·K) stress evaluations, F faults and K neighbour planes
// per fault, plus O(F log F) when truncating.
func (c *Gephart) Value(st geomeca.StressTensor) float64 {
	engine := engineFor(c.Engine, st)
	var rng *rand.Rand
	if c.Search == PlaneMonteCarlo {
		seed := c.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}

	rotations := make([]float64, 0, len(c.Data))
	for _, d := range c.Data {
		if !d.Active() || !d.Kind().IsFault() {
			continue
		}
		local := engine.Stress(d.Position())
		rotations = append(rotations, c.MinRotation(d, local, rng)*d.Weight())
	}
	if c.MaxNbFault > 0 && c.MaxNbFault < len(rotations) {
		sort.Float64s(rotations)
		rotations = rotations[:c.MaxNbFault]
	}
	var sum float64
	for _, v := range rotations {
		sum += v
	}
	return sum
}

// faultFrame caches what every neighbour evaluation of one fault needs.
type faultFrame struct {
	n, s, b  tensor.Vector3
	st       geomeca.StressTensor
	eps      float64
	oriented bool
}

// rotation returns the angle of the rotation taking the measured frame onto
// the frame predicted on plane np, or +Inf when np carries no shear.
func (f *faultFrame) rotation(np tensor.Vector3) float64 {
	tau, mag := f.st.Shear(np)
	if mag <= f.eps {
		return math.Inf(1)
	}
	tp := tensor.Scale(1/mag, tau)
	bp := tensor.Cross(np, tp)
	nn := tensor.Dot(np, f.n)
	ts := tensor.Dot(tp, f.s)
	bb := tensor.Dot(bp, f.b)
	tr := nn + ts + bb
	if !f.oriented {
		// reversed striation: (n′, -τ̂′, -b′)
		tr = math.Max(tr, nn-ts-bb)
	}
	return math.Acos(tensor.Clamp((tr-1)/2, -1, 1))
}

// MinRotation returns the minimum rotation angle (radians, in [0, π]) that
// reconciles fault d with the stress st. rng is used by PlaneMonteCarlo
// only; nil selects a stream seeded with c.Seed.
//
// Contracts:
//   - The result never exceeds the angle at the measured plane.
//   - Neighbours farther from n than the current best are not evaluated.
//
// Complexity:
//   - PlaneGrid: O(apex/Δ · 2π/Δ), PlaneFibonacci: O(NbNodes·apex/Δ),
//     PlaneMonteCarlo: O(NbTrials).
func (c *Gephart) MinRotation(d *data.Datum, st geomeca.StressTensor, rng *rand.Rand) float64 {
	f := &faultFrame{
		n:        d.Normal(),
		s:        d.Striation(),
		b:        tensor.Cross(d.Normal(), d.Striation()),
		st:       st,
		eps:      d.ShearEpsilon(),
		oriented: d.Oriented(),
	}
	best := math.Min(math.Pi, f.rotation(f.n))
	apex := best
	if best == 0 {
		return 0
	}

	delta := c.Delta
	if delta <= 0 {
		delta = DefaultPlaneDelta
	}
	visit := func(np tensor.Vector3) {
		if math.Acos(tensor.Clamp(tensor.Dot(np, f.n), -1, 1)) >= best {
			return
		}
		if r := f.rotation(np); r < best {
			best = r
		}
	}

	switch c.Search {
	case PlaneFibonacci:
		nodes := c.NbNodes
		if nodes <= 0 {
			nodes = DefaultNbNodes
		}
		steps := int(math.Floor(apex / delta))
		var i, k int
		for i = 0; i < nodes; i++ {
			axis := tensor.FibonacciAxis(i, nodes)
			for k = 1; k <= steps; k++ {
				visit(tensor.MulVec(tensor.ProperRotation(axis, float64(k)*delta), f.n))
				visit(tensor.MulVec(tensor.ProperRotation(axis, -float64(k)*delta), f.n))
			}
		}
	case PlaneMonteCarlo:
		trials := c.NbTrials
		if trials <= 0 {
			trials = DefaultNbTrials
		}
		if rng == nil {
			seed := c.Seed
			if seed == 0 {
				seed = defaultSeed
			}
			rng = rand.New(rand.NewSource(seed))
		}
		for i := 0; i < trials; i++ {
			axis := tensor.SphericalToCartesian(tensor.SphericalCoords{
				Phi:   2 * math.Pi * rng.Float64(),
				Theta: math.Acos(2*rng.Float64() - 1),
			})
			// the cone shrinks with the best rotation found so far
			visit(tensor.MulVec(tensor.ProperRotation(axis, rng.Float64()*best), f.n))
		}
	default:
		p := tensor.Perpendicular(f.n)
		nRadial := int(math.Floor(apex / delta))
		for j := 1; j <= nRadial; j++ {
			rho := float64(j) * delta
			if rho >= best {
				break
			}
			tilted := tensor.MulVec(tensor.ProperRotation(p, rho), f.n)
			nCircle := int(math.Floor(2 * math.Pi * math.Sin(rho) / delta))
			if nCircle < 1 {
				nCircle = 1
			}
			for k := 0; k < nCircle; k++ {
				psi := 2 * math.Pi * float64(k) / float64(nCircle)
				visit(tensor.MulVec(tensor.ProperRotation(f.n, psi), tilted))
			}
		}
	}
	return best
}
