package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramBins is the number of bins of the residual histogram.
const HistogramBins = 18

// WritePlot draws the histogram of active residuals to path. The image
// format follows the extension (.png, .svg, .pdf, ...).
func WritePlot(r Report, path string) error {
	residuals := r.ActiveResiduals()
	if len(residuals) == 0 {
		return ErrNoResiduals
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Residuals (fit %.1f%%, R = %.2f)", r.Fit, r.StressRatio)
	p.X.Label.Text = "angular residual (°)"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(residuals), HistogramBins)
	if err != nil {
		return fmt.Errorf("report: histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
