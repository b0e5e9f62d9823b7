package criteria

import (
	"sort"

	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
)

// Criterion scores a candidate stress tensor; lower is better.
type Criterion interface {
	Value(st geomeca.StressTensor) float64
}

// SimpleMean is Σ cost·weight / N over the active data the engine can
// evaluate.
type SimpleMean struct {
	Data data.Set
	// Engine builds the per-candidate engine; nil means homogeneous stress.
	Engine geomeca.EngineFactory
	// MaxNbData > 0 keeps only the MaxNbData smallest weighted costs; N is
	// then the kept count.
	MaxNbData int
}

// NewSimpleMean returns the criterion over set with a homogeneous engine.
func NewSimpleMean(set data.Set) *SimpleMean {
	return &SimpleMean{Data: set}
}

// Value implements Criterion. An empty dataset scores 0.
func (c *SimpleMean) Value(st geomeca.StressTensor) float64 {
	engine := engineFor(c.Engine, st)
	costs := make([]float64, 0, len(c.Data))
	for _, d := range c.Data {
		if !d.Active() {
			continue
		}
		s := engine.Stress(d.Position())
		f := data.Fields{Stress: &s}
		if !d.Check(f) {
			continue
		}
		costs = append(costs, d.Cost(f)*d.Weight())
	}
	if len(costs) == 0 {
		return 0
	}
	costs = keepSmallest(costs, c.MaxNbData)
	var sum float64
	for _, v := range costs {
		sum += v
	}
	return sum / float64(len(costs))
}

func engineFor(factory geomeca.EngineFactory, st geomeca.StressTensor) geomeca.Engine {
	if factory == nil {
		return geomeca.Homogeneous(st)
	}
	return factory(st)
}

// keepSmallest returns the n smallest values in ascending order, or values
// untouched when n <= 0 or n >= len(values).
func keepSmallest(values []float64, n int) []float64 {
	if n <= 0 || n >= len(values) {
		return values
	}
	sort.Float64s(values)
	return values[:n]
}
