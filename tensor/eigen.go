// SPDX-License-Identifier: MIT
// Package tensor - symmetric eigen-decomposition.
//
// Purpose:
//   - Cyclic Jacobi rotations on a symmetric 3×3 tensor.
//   - Deterministic ordering of eigenpairs for principal-stress extraction.

package tensor

import (
	"fmt"
	"math"
	"sort"
)

// Default numeric policy for EigenSym.
const (
	DefaultEigenTol     = 1e-12
	DefaultEigenMaxIter = 100
)

// EigenSym computes the eigen-decomposition of a symmetric tensor using
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate symmetry within tol.
//   - Stage 2: repeatedly annihilate the largest off-diagonal entry with a
//     plane rotation, accumulating the rotations in Q.
//   - Stage 3: sort eigenpairs by ascending eigenvalue.
//
// Returns:
//   - values ascending;
//   - vectors with vectors.Col(k) the unit eigenvector of values[k].
//
// Errors: ErrAsymmetric, ErrEigenNotConverged (both wrapped with the op tag).
//
// Determinism: no randomness; identical inputs give bit-identical outputs.
func EigenSym(a Matrix3, tol float64, maxIter int) ([3]float64, Matrix3, error) {
	var (
		values [3]float64
		i, j   int
	)
	for i = 0; i < 3; i++ {
		for j = i + 1; j < 3; j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol {
				return values, Matrix3{}, tensorErrorf(opEigenSym,
					fmt.Errorf("A[%d][%d]=%g, A[%d][%d]=%g: %w", i, j, a[i][j], j, i, a[j][i], ErrAsymmetric))
			}
		}
	}

	q := Identity()
	var (
		iter, p, r     int
		maxOff, off    float64
		app, arr, apr  float64
		theta, t, c, s float64
		aip, air       float64
	)
	// Stopping threshold is relative to the largest entry.
	scale := 0.0
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			scale = math.Max(scale, math.Abs(a[i][j]))
		}
	}
	if scale == 0 {
		return values, q, nil
	}
	stop := tol * scale

	for iter = 0; iter < maxIter; iter++ {
		maxOff = 0
		for i = 0; i < 3; i++ {
			for j = i + 1; j < 3; j++ {
				if off = math.Abs(a[i][j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff <= stop {
			break
		}

		app, arr, apr = a[p][p], a[r][r], a[p][r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < 3; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = a[i][p], a[i][r]
			a[i][p] = c*aip - s*air
			a[p][i] = a[i][p]
			a[i][r] = s*aip + c*air
			a[r][i] = a[i][r]
		}
		a[p][p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r][r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p][r], a[r][p] = 0, 0

		for i = 0; i < 3; i++ {
			aip, air = q[i][p], q[i][r]
			q[i][p] = c*aip - s*air
			q[i][r] = s*aip + c*air
		}
	}

	maxOff = math.Max(math.Abs(a[0][1]), math.Max(math.Abs(a[0][2]), math.Abs(a[1][2])))
	if maxOff > stop {
		return values, Matrix3{}, tensorErrorf(opEigenSym, ErrEigenNotConverged)
	}

	order := [3]int{0, 1, 2}
	sort.SliceStable(order[:], func(x, y int) bool { return a[order[x]][order[x]] < a[order[y]][order[y]] })

	var vectors Matrix3
	for j = 0; j < 3; j++ {
		values[j] = a[order[j]][order[j]]
		for i = 0; i < 3; i++ {
			vectors[i][j] = q[i][order[j]]
		}
	}
	return values, vectors, nil
}
