package report

import "errors"

// ErrNoResiduals is returned by WritePlot when no active datum was scored.
var ErrNoResiduals = errors.New("report: no residuals to plot")
