// Package search explores the rotation × stress-ratio space around a
// starting estimate and keeps the candidate with the lowest misfit.
//
// Three strategies share one protocol:
//
//   - Grid:       three Euler offsets and the stress ratio on fixed steps.
//   - MonteCarlo: uniform random rotation axes, magnitudes and ratios.
//   - Fibonacci:  golden-spiral rotation axes × linear magnitudes × ratios.
//
// A candidate is the perturbation D applied on top of the interactive
// rotation Rrot, W = D·Rrot, together with a stress ratio R; its stress
// tensor is geomeca.FromRotation(W, R).
//
// Run never mutates its input. The best candidate replaces the incoming
// solution only when its misfit is strictly smaller, and among equal
// misfits the first one in iteration order wins. Candidates are evaluated
// on Workers goroutines in fixed index chunks whose partial minima are
// reduced in chunk order, so results are bit-identical for every worker
// count.
package search
