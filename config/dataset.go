package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paleostress/data"
)

// Dataset is one data file of a run.
type Dataset struct {
	Path string `yaml:"path"`
	// Weight multiplies every record weight; 0 means 1.
	Weight float64 `yaml:"weight"`
	// Source tags the data; it defaults to the file name.
	Source string `yaml:"source"`
}

// ReadRecords decodes a YAML (or JSON) list of records.
func ReadRecords(path string) ([]data.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var recs []data.Record
	if err := yaml.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return recs, nil
}

// ResolvePath returns path joined to the run file's directory when it is
// relative. Empty paths stay empty.
func (r Run) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) || r.Dir == "" {
		return path
	}
	return filepath.Join(r.Dir, path)
}

// LoadData reads every dataset in order. Records without a source are
// tagged with their dataset's.
func (r Run) LoadData() (data.Set, error) {
	var out data.Set
	for _, ds := range r.Datasets {
		path := r.ResolvePath(ds.Path)
		recs, err := ReadRecords(path)
		if err != nil {
			return nil, err
		}
		source := ds.Source
		if source == "" {
			source = filepath.Base(ds.Path)
		}
		for i := range recs {
			if recs[i].Source == "" {
				recs[i].Source = source
			}
		}
		set, err := data.FromRecords(recs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if ds.Weight > 0 && ds.Weight != 1 {
			for _, d := range set {
				if err := d.SetWeight(d.Weight() * ds.Weight); err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
			}
		}
		out = append(out, set...)
	}
	return out, nil
}
