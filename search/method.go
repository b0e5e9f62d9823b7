package search

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/paleostress/tensor"
)

// Method names a search strategy.
type Method int

const (
	// GridSearch scans a regular Euler-angle grid around the interactive estimate.
	GridSearch Method = iota
	// MonteCarloSearch draws random rotations within a cone of the estimate.
	MonteCarloSearch
	// FibonacciSearch rotates about axes of a Fibonacci spiral.
	FibonacciSearch
)

var methodNames = [...]string{
	GridSearch:       "Grid Search",
	MonteCarloSearch: "Monte Carlo",
	FibonacciSearch:  "Fibonacci Lattice",
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{GridSearch, MonteCarloSearch, FibonacciSearch}
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod accepts the display names, ignoring case, spaces, '-' and '_',
// plus the short forms "grid" and "fibonacci".
func ParseMethod(s string) (Method, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))

	switch key {
	case "gridsearch", "grid":
		return GridSearch, nil
	case "montecarlo":
		return MonteCarloSearch, nil
	case "fibonaccilattice", "fibonacci":
		return FibonacciSearch, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
}

// GridOptions configures GridSearch. Angles are in radians.
type GridOptions struct {
	DeltaGridAngle          float64 `yaml:"deltaGridAngle"`
	AngleHalfInterval       float64 `yaml:"angleHalfInterval"`
	DeltaStressRatio        float64 `yaml:"deltaStressRatio"`
	StressRatioHalfInterval float64 `yaml:"stressRatioHalfInterval"`

	// Workers bounds concurrent evaluation; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultGridOptions returns 2° steps over ±20° and R steps of 0.02 over ±0.1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		DeltaGridAngle:          tensor.Rad(2),
		AngleHalfInterval:       tensor.Rad(20),
		DeltaStressRatio:        0.02,
		StressRatioHalfInterval: 0.1,
	}
}

// Validate checks that steps are positive and intervals non-negative.
func (o GridOptions) Validate() error {
	return firstErr(
		positive("deltaGridAngle", o.DeltaGridAngle),
		nonNegative("angleHalfInterval", o.AngleHalfInterval),
		positive("deltaStressRatio", o.DeltaStressRatio),
		nonNegative("stressRatioHalfInterval", o.StressRatioHalfInterval),
		workers(o.Workers),
	)
}

// MonteCarloOptions configures MonteCarloSearch.
type MonteCarloOptions struct {
	RotAngleHalfInterval    float64 `yaml:"rotAngleHalfInterval"`
	NbRandomTrials          int     `yaml:"nbRandomTrials"`
	StressRatioHalfInterval float64 `yaml:"stressRatioHalfInterval"`

	// Seed 0 selects a fixed default seed.
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

// DefaultMonteCarloOptions returns 100 trials within 0.1 rad and ±0.1 in R.
func DefaultMonteCarloOptions() MonteCarloOptions {
	return MonteCarloOptions{
		RotAngleHalfInterval:    0.1,
		NbRandomTrials:          100,
		StressRatioHalfInterval: 0.1,
	}
}

// Validate checks that intervals and the trial count are non-negative.
func (o MonteCarloOptions) Validate() error {
	err := firstErr(
		nonNegative("rotAngleHalfInterval", o.RotAngleHalfInterval),
		nonNegative("stressRatioHalfInterval", o.StressRatioHalfInterval),
		workers(o.Workers),
	)
	if err == nil && o.NbRandomTrials < 0 {
		err = fmt.Errorf("%w: nbRandomTrials=%d", ErrInvalidOptions, o.NbRandomTrials)
	}
	return err
}

// FibonacciOptions configures FibonacciSearch.
type FibonacciOptions struct {
	RotAngleHalfInterval    float64 `yaml:"rotAngleHalfInterval"`
	DeltaRotAngle           float64 `yaml:"deltaRotAngle"`
	NbNodesSpiral           int     `yaml:"nbNodesSpiral"`
	DeltaStressRatio        float64 `yaml:"deltaStressRatio"`
	StressRatioHalfInterval float64 `yaml:"stressRatioHalfInterval"`
	Workers                 int     `yaml:"workers"`
}

// DefaultFibonacciOptions returns 100 spiral axes, rotations of ±0.1 rad in
// 0.001 steps, and the grid's stress-ratio sweep.
func DefaultFibonacciOptions() FibonacciOptions {
	g := DefaultGridOptions()
	return FibonacciOptions{
		RotAngleHalfInterval:    0.1,
		DeltaRotAngle:           0.001,
		NbNodesSpiral:           100,
		DeltaStressRatio:        g.DeltaStressRatio,
		StressRatioHalfInterval: g.StressRatioHalfInterval,
	}
}

// Validate checks steps, intervals and the node count.
func (o FibonacciOptions) Validate() error {
	err := firstErr(
		nonNegative("rotAngleHalfInterval", o.RotAngleHalfInterval),
		positive("deltaRotAngle", o.DeltaRotAngle),
		positive("deltaStressRatio", o.DeltaStressRatio),
		nonNegative("stressRatioHalfInterval", o.StressRatioHalfInterval),
		workers(o.Workers),
	)
	if err == nil && o.NbNodesSpiral < 1 {
		err = fmt.Errorf("%w: nbNodesSpiral=%d", ErrInvalidOptions, o.NbNodesSpiral)
	}
	return err
}

// Options groups the per-method options; New reads the group of the
// requested method only.
type Options struct {
	Grid       GridOptions       `yaml:"grid"`
	MonteCarlo MonteCarloOptions `yaml:"monteCarlo"`
	Fibonacci  FibonacciOptions  `yaml:"fibonacci"`
}

// DefaultOptions returns the defaults of every method.
func DefaultOptions() Options {
	return Options{
		Grid:       DefaultGridOptions(),
		MonteCarlo: DefaultMonteCarloOptions(),
		Fibonacci:  DefaultFibonacciOptions(),
	}
}

// New builds the strategy for method. Unknown methods yield
// ErrUnsupportedMethod; invalid option groups yield ErrInvalidOptions.
func New(method Method, opts Options) (Strategy, error) {
	switch method {
	case GridSearch:
		return NewGrid(opts.Grid)
	case MonteCarloSearch:
		return NewMonteCarlo(opts.MonteCarlo)
	case FibonacciSearch:
		return NewFibonacci(opts.Fibonacci)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMethod, method)
	}
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v must be positive", ErrInvalidOptions, name, v)
	}
	return nil
}

func nonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v must be non-negative", ErrInvalidOptions, name, v)
	}
	return nil
}

func workers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidOptions, n)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
