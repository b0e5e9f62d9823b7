package report

import (
	"encoding/json"
	"io"
	"math"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/paleostress/inversion"
	"github.com/katalvlaran/paleostress/search"
	"github.com/katalvlaran/paleostress/tensor"
)

// Axis is a principal stress direction.
type Axis struct {
	Vector    [3]float64 `json:"vector"`
	Trend     float64    `json:"trend"`
	Plunge    float64    `json:"plunge"`
	Magnitude float64    `json:"magnitude"`
}

// Axes groups the principal directions.
type Axes struct {
	Sigma1 Axis `json:"sigma1"`
	Sigma2 Axis `json:"sigma2"`
	Sigma3 Axis `json:"sigma3"`
}

// Stats summarizes the residuals of the active data, in degrees.
type Stats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	P90    float64 `json:"p90"`
	Max    float64 `json:"max"`
}

// Datum is the outcome for one observation.
type Datum struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Source string `json:"source,omitempty"`
	Active bool   `json:"active"`
	// Residual is nil when the datum could not be scored.
	Residual           *float64    `json:"residual,omitempty"`
	PredictedNormal    [3]float64  `json:"predictedNormal"`
	PredictedStriation *[3]float64 `json:"predictedStriation,omitempty"`
}

// Report is the outcome of one run.
type Report struct {
	RunID       string        `json:"runId"`
	Method      string        `json:"method,omitempty"`
	Misfit      *float64      `json:"misfit"`
	StressRatio float64       `json:"stressRatio"`
	Tensor      [3][3]float64 `json:"stressTensor"`
	Axes        Axes          `json:"principalAxes"`
	// Fit is 100·(1 − mean dot-mode cost) over the active data.
	Fit       float64 `json:"fit"`
	Residuals Stats   `json:"residuals"`
	Data      []Datum `json:"data"`
}

// Build summarizes sol and the predictions made under it. An empty runID
// is replaced by a fresh UUID.
func Build(sol search.Solution, preds []inversion.Prediction, runID string) Report {
	if runID == "" {
		runID = uuid.NewString()
	}
	st := sol.Tensor()
	r := Report{
		RunID:       runID,
		StressRatio: sol.StressRatio,
		Tensor:      st.S,
		Axes: Axes{
			Sigma1: axis(st.S1, st.Sigma1),
			Sigma2: axis(st.S2, st.Sigma2),
			Sigma3: axis(st.S3, st.Sigma3),
		},
		Data: make([]Datum, 0, len(preds)),
	}
	if v := sol.MisfitValue; !math.IsInf(v, 0) && !math.IsNaN(v) {
		r.Misfit = &v
	}

	var residuals, dots []float64
	for _, p := range preds {
		d := Datum{
			ID:              p.Datum.ID(),
			Kind:            p.Datum.Kind().String(),
			Source:          p.Datum.Source(),
			Active:          p.Datum.Active(),
			PredictedNormal: p.Normal,
		}
		if p.Striation != (tensor.Vector3{}) {
			s := [3]float64(p.Striation)
			d.PredictedStriation = &s
		}
		if !math.IsNaN(p.Residual) {
			deg := tensor.Deg(p.Residual)
			d.Residual = &deg
			if d.Active {
				residuals = append(residuals, deg)
				dots = append(dots, p.DotCost)
			}
		}
		r.Data = append(r.Data, d)
	}

	r.Residuals = summarize(residuals)
	if len(dots) > 0 {
		r.Fit = 100 * (1 - stat.Mean(dots, nil))
	}
	return r
}

func axis(v tensor.Vector3, magnitude float64) Axis {
	trend, plunge := tensor.ToTrendPlunge(v)
	return Axis{
		Vector:    v,
		Trend:     tensor.Deg(trend),
		Plunge:    tensor.Deg(plunge),
		Magnitude: magnitude,
	}
}

func summarize(x []float64) Stats {
	if len(x) == 0 {
		return Stats{}
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	s := Stats{
		Count: len(x),
		Mean:  stat.Mean(x, nil),
		P90:   stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:   floats.Max(x),
	}
	if len(x) > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	return s
}

// ActiveResiduals returns the residuals of the active scored data, in
// report order.
func (r Report) ActiveResiduals() []float64 {
	out := make([]float64, 0, len(r.Data))
	for _, d := range r.Data {
		if d.Active && d.Residual != nil {
			out = append(out, *d.Residual)
		}
	}
	return out
}

// Write encodes r as indented JSON.
func (r Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
