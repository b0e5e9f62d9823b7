// Package report turns an inversion result into a presentation-ready
// summary: principal axes with trend and plunge, stress ratio, misfit,
// per-datum residuals and their statistics, and the percentage fit. The
// summary encodes to JSON and its residuals can be drawn as a histogram.
//
// Angles in a Report are in degrees.
package report
