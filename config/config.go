package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paleostress/criteria"
	"github.com/katalvlaran/paleostress/inversion"
	"github.com/katalvlaran/paleostress/search"
)

// Run is the content of a run file.
type Run struct {
	Search    Search    `yaml:"search"`
	Criterion Criterion `yaml:"criterion"`
	Estimate  Estimate  `yaml:"interactiveStressTensor"`
	Datasets  []Dataset `yaml:"datasets"`
	Output    Output    `yaml:"output"`

	// Dir anchors relative dataset paths; Load sets it to the file's directory.
	Dir string `yaml:"-"`
}

// Search selects the strategy. Only the option group of Method is used.
type Search struct {
	Method         string `yaml:"method"`
	search.Options `yaml:",inline"`
}

// Criterion selects the misfit criterion.
type Criterion struct {
	// Name is "simple" (SimpleMean) or "gephart".
	Name string `yaml:"name"`
	// MaxNbData truncates SimpleMean to its best-fitting data.
	MaxNbData int `yaml:"maxNbData"`

	PlaneSearch string  `yaml:"planeSearch"`
	Delta       float64 `yaml:"delta"`
	NbNodes     int     `yaml:"nbNodes"`
	NbTrials    int     `yaml:"nbTrials"`
	Seed        int64   `yaml:"seed"`
	MaxNbFault  int     `yaml:"maxNbFault"`
}

// Output names the files written after a run; empty means not written.
type Output struct {
	Report string `yaml:"report"`
	Plot   string `yaml:"plot"`
}

// Default returns a grid search scored by SimpleMean around a strike-slip
// estimate (σ1 North, σ3 East, R = 0.5).
func Default() Run {
	return Run{
		Search: Search{
			Method:  search.GridSearch.String(),
			Options: search.DefaultOptions(),
		},
		Criterion: Criterion{
			Name:     "simple",
			Delta:    criteria.DefaultPlaneDelta,
			NbNodes:  criteria.DefaultNbNodes,
			NbTrials: criteria.DefaultNbTrials,
		},
		Estimate: DefaultEstimate(),
	}
}

// Load reads and validates the run file at path.
func Load(path string) (Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: %w", err)
	}
	run, err := Parse(b)
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}
	run.Dir = filepath.Dir(path)
	return run, nil
}

// Parse decodes a run file over Default and validates it.
func Parse(b []byte) (Run, error) {
	run := Default()
	if err := yaml.Unmarshal(b, &run); err != nil {
		return Run{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// Validate checks every section without touching datasets.
func (r Run) Validate() error {
	if _, err := r.Strategy(); err != nil {
		return err
	}
	if _, err := r.CriterionFactory(); err != nil {
		return err
	}
	if len(r.Datasets) == 0 {
		return ErrNoDatasets
	}
	for i, ds := range r.Datasets {
		if ds.Path == "" {
			return fmt.Errorf("%w: datasets[%d] has no path", ErrInvalidConfig, i)
		}
		if ds.Weight < 0 {
			return fmt.Errorf("%w: datasets[%d] weight %v", ErrInvalidConfig, i, ds.Weight)
		}
	}
	return nil
}

// Method resolves Search.Method.
func (r Run) Method() (search.Method, error) {
	return search.ParseMethod(r.Search.Method)
}

// Strategy builds the configured strategy, positioned on the estimate.
func (r Run) Strategy() (search.Strategy, error) {
	m, err := r.Method()
	if err != nil {
		return nil, err
	}
	s, err := search.New(m, r.Search.Options)
	if err != nil {
		return nil, err
	}
	rot, ratio, err := r.Estimate.Resolve()
	if err != nil {
		return nil, err
	}
	s.SetInteractiveSolution(rot, ratio)
	return s, nil
}

// CriterionFactory resolves the criterion section.
func (r Run) CriterionFactory() (inversion.CriterionFactory, error) {
	c := r.Criterion
	switch normalize(c.Name) {
	case "", "simple", "simplemean":
		if c.MaxNbData < 0 {
			return nil, fmt.Errorf("%w: maxNbData %d", ErrInvalidConfig, c.MaxNbData)
		}
		return inversion.SimpleMean(c.MaxNbData), nil
	case "gephart", "gephartforsyth":
		ps, err := criteria.ParsePlaneSearch(c.PlaneSearch)
		if err != nil {
			return nil, err
		}
		if !(c.Delta > 0) || c.NbNodes < 1 || c.NbTrials < 0 || c.MaxNbFault < 0 {
			return nil, fmt.Errorf("%w: gephart delta=%v nbNodes=%d nbTrials=%d maxNbFault=%d",
				ErrInvalidConfig, c.Delta, c.NbNodes, c.NbTrials, c.MaxNbFault)
		}
		return inversion.Gephart(criteria.Gephart{
			Search:     ps,
			Delta:      c.Delta,
			NbNodes:    c.NbNodes,
			NbTrials:   c.NbTrials,
			Seed:       c.Seed,
			MaxNbFault: c.MaxNbFault,
		}), nil
	}
	return nil, fmt.Errorf("%w: unknown criterion %q", ErrInvalidConfig, c.Name)
}

// Inversion loads the datasets and assembles the configured inversion.
func (r Run) Inversion() (*inversion.Inversion, error) {
	strategy, err := r.Strategy()
	if err != nil {
		return nil, err
	}
	crit, err := r.CriterionFactory()
	if err != nil {
		return nil, err
	}
	set, err := r.LoadData()
	if err != nil {
		return nil, err
	}
	inv := inversion.New(inversion.WithStrategy(strategy), inversion.WithCriterion(crit))
	inv.AddData(set...)
	return inv, nil
}
