// SPDX-License-Identifier: MIT
// Package search - parallel candidate sweep shared by every strategy.
//
// Purpose:
//   - Evaluate a finite, ordered sequence of candidates against a criterion.
//   - Return the same winner as a serial scan for any number of workers.
//
// Contracts:
//   - Positions are cut into contiguous chunks; chunk sizes are multiples
//     of the caller's alignment.
//   - Each chunk is walked in increasing order on a single goroutine.
//   - Ties keep the earliest position (strict < inside and across chunks).
//
// Complexity:
//   - O(total) criterion evaluations, O(chunks) extra memory.

package search

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/paleostress/criteria"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// candidate is one point of the search space.
type candidate struct {
	rotD tensor.Matrix3
	rotW tensor.Matrix3
	r    float64
}

// candidateAt returns the candidate at a position of the iteration order,
// or false when that position is skipped (stress ratio outside [0, 1],
// duplicated null rotation).
type candidateAt func(idx int) (candidate, bool)

// chunkWalker returns the candidateAt for the chunk starting at lo. The
// returned function is called for lo, lo+1, ... in order on one goroutine,
// so it may keep state between calls.
type chunkWalker func(lo int) candidateAt

// stateless serves the same candidateAt to every chunk.
func stateless(at candidateAt) chunkWalker {
	return func(int) candidateAt { return at }
}

type partial struct {
	cand  candidate
	value float64
	found bool
}

// minChunks keeps chunks small enough for progress reports at every 10%.
const minChunks = 2 * progressSteps

func resolveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// sweep evaluates positions [0, total) and returns the first candidate with
// the smallest finite misfit.
//
// Chunks are evaluated concurrently; each keeps its own first minimum
// (strict <) and the chunk minima are reduced in chunk order with strict <.
// The winner is therefore the same as a serial scan, whatever the number
// of workers. Every chunk starts at a multiple of align.
func sweep(total, align int, walk chunkWalker, crit criteria.Criterion, workers int, tr *tracker) partial {
	best := partial{value: math.Inf(1)}
	if total <= 0 {
		return best
	}
	align = max(align, 1)
	workers = resolveWorkers(workers)
	nChunks := max(workers*4, minChunks)
	nChunks = min(nChunks, total)
	size := (total + nChunks - 1) / nChunks
	size = (size + align - 1) / align * align
	nChunks = (total + size - 1) / size

	parts := make([]partial, nChunks)
	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < nChunks; c++ {
		g.Go(func() error {
			lo := c * size
			hi := min(lo+size, total)
			at := walk(lo)
			p := partial{value: math.Inf(1)}
			for idx := lo; idx < hi; idx++ {
				cand, ok := at(idx)
				if !ok {
					continue
				}
				v := crit.Value(geomeca.FromRotation(cand.rotW, cand.r))
				if v < p.value {
					p = partial{cand: cand, value: v, found: true}
				}
			}
			parts[c] = p
			tr.add(hi - lo)
			return nil
		})
	}
	// workers never fail; Wait only joins them.
	_ = g.Wait()

	for _, p := range parts {
		if p.found && p.value < best.value {
			best = p
		}
	}
	return best
}

// ratioSlack absorbs rounding when R0 + l·δR lands on 0 or 1.
const ratioSlack = 1e-9

// stressRatioAt returns R0 + offset·delta clamped to [0, 1], or false when
// it lies outside that range.
func stressRatioAt(r0 float64, offset int, delta float64) (float64, bool) {
	r := r0 + float64(offset)*delta
	if r < -ratioSlack || r > 1+ratioSlack {
		return 0, false
	}
	return tensor.Clamp(r, 0, 1), true
}

// nodes returns ⌈half/delta⌉ with rounding noise removed, so that 20°/2°
// gives 10 and not 11.
func nodes(half, delta float64) int {
	if half <= 0 {
		return 0
	}
	return int(math.Ceil(half/delta - 1e-9))
}

// compose builds the candidate for a perturbation DT (geographic frame
// rotation of the trial node): D = DTᵀ and W = D·Rrot.
func compose(dt, rrot tensor.Matrix3, r float64) candidate {
	d := tensor.Transpose(dt)
	return candidate{rotD: d, rotW: tensor.Mul(d, rrot), r: r}
}
