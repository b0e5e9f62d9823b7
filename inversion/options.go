package inversion

import (
	"github.com/katalvlaran/paleostress/criteria"
	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/search"
)

// CriterionFactory builds the criterion of a run over the whole dataset.
// engine is never nil.
type CriterionFactory func(set data.Set, engine geomeca.EngineFactory) criteria.Criterion

// SimpleMean returns a factory for criteria.SimpleMean keeping the
// maxNbData smallest costs (0 keeps all).
func SimpleMean(maxNbData int) CriterionFactory {
	return func(set data.Set, engine geomeca.EngineFactory) criteria.Criterion {
		return &criteria.SimpleMean{Data: set, Engine: engine, MaxNbData: maxNbData}
	}
}

// Gephart returns a factory for copies of proto bound to the dataset and
// engine of the run.
func Gephart(proto criteria.Gephart) CriterionFactory {
	return func(set data.Set, engine geomeca.EngineFactory) criteria.Criterion {
		c := proto
		c.Data = set
		c.Engine = engine
		return &c
	}
}

// Option configures an Inversion. Constructors panic on nil arguments.
type Option func(*Inversion)

// WithStrategy selects the search strategy (default: grid search with
// default options).
func WithStrategy(s search.Strategy) Option {
	if s == nil {
		panic("inversion: WithStrategy(nil)")
	}
	return func(inv *Inversion) { inv.strategy = s }
}

// WithCriterion selects the criterion (default: SimpleMean(0)).
func WithCriterion(f CriterionFactory) Option {
	if f == nil {
		panic("inversion: WithCriterion(nil)")
	}
	return func(inv *Inversion) { inv.criterion = f }
}

// WithEngine selects the stress engine (default: geomeca.Homogeneous).
func WithEngine(f geomeca.EngineFactory) Option {
	if f == nil {
		panic("inversion: WithEngine(nil)")
	}
	return func(inv *Inversion) { inv.engine = f }
}
