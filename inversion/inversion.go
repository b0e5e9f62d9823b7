package inversion

import (
	"math"

	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/search"
	"github.com/katalvlaran/paleostress/tensor"
)

// Inversion couples a dataset with a search strategy and a criterion.
// It is not safe for concurrent use; the strategy parallelizes internally.
type Inversion struct {
	data      data.Set
	strategy  search.Strategy
	criterion CriterionFactory
	engine    geomeca.EngineFactory
	best      *search.Solution
}

// New returns an empty inversion.
func New(opts ...Option) *Inversion {
	inv := &Inversion{
		criterion: SimpleMean(0),
		engine:    geomeca.Homogeneous,
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.strategy == nil {
		g, err := search.NewGrid(search.DefaultGridOptions())
		if err != nil {
			panic(err) // defaults are valid
		}
		inv.strategy = g
	}
	return inv
}

// AddData appends data in order; nil entries are skipped.
func (inv *Inversion) AddData(ds ...*data.Datum) {
	for _, d := range ds {
		if d != nil {
			inv.data = append(inv.data, d)
		}
	}
}

// Data returns the dataset in insertion order. The slice is shared.
func (inv *Inversion) Data() data.Set { return inv.data }

// Strategy returns the search strategy.
func (inv *Inversion) Strategy() search.Strategy { return inv.strategy }

// SetInteractiveSolution sets the estimate the search explores around:
// rot has rows (S1, S3, S2) and r is the stress ratio.
func (inv *Inversion) SetInteractiveSolution(rot tensor.Matrix3, r float64) {
	inv.strategy.SetInteractiveSolution(rot, r)
}

// Run searches for the tensor minimizing the criterion over the dataset.
// The search starts from the best solution of the previous Run, rescored
// against the current dataset, unless Reset was called.
func (inv *Inversion) Run() (search.Solution, error) {
	if len(inv.data.Active()) == 0 {
		return search.Solution{}, ErrNoData
	}
	crit := inv.criterion(inv.data, inv.engine)

	in := search.NewSolution(crit)
	if inv.best != nil {
		in = *inv.best
		in.Criterion = crit
		in.MisfitValue = crit.Value(in.Tensor())
	}

	out, err := inv.strategy.Run(in)
	if err != nil {
		return search.Solution{}, err
	}
	inv.best = &out
	return out, nil
}

// Best returns the solution of the last Run, if any.
func (inv *Inversion) Best() (search.Solution, bool) {
	if inv.best == nil {
		return search.Solution{}, false
	}
	return *inv.best, true
}

// Reset forgets the previous best solution.
func (inv *Inversion) Reset() { inv.best = nil }

// Prediction is what one datum would show under a solution.
type Prediction struct {
	Datum *data.Datum
	data.Prediction
	// Residual is the angular misfit in radians.
	Residual float64
	// DotCost is the misfit in data.DotMode, in [0, 1].
	DotCost float64
}

// Predict evaluates every datum, inactive ones included, under the
// stress of sol.
func (inv *Inversion) Predict(sol search.Solution) []Prediction {
	engine := inv.engine(sol.Tensor())
	out := make([]Prediction, 0, len(inv.data))
	for _, d := range inv.data {
		st := engine.Stress(d.Position())
		f := data.Fields{Stress: &st}
		p := Prediction{Datum: d, Residual: math.NaN(), DotCost: math.NaN()}
		if d.Check(f) {
			p.Prediction = d.Predict(engine, f)
			p.Residual = d.Residual(f)
			p.DotCost = d.CostAs(data.DotMode, f)
		}
		out = append(out, p)
	}
	return out
}
