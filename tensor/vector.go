// SPDX-License-Identifier: MIT
// Package tensor - Vector3 value kernels.
//
// Purpose:
//   - Small-vector algebra on [3]float64 values in the East, North, Up frame.
//   - No allocation: every kernel takes and returns values.

package tensor

import "math"

// Vector3 is a column vector in the geographic (East, North, Up) frame.
type Vector3 [3]float64

// Dot returns the scalar product a·b.
func Dot(a, b Vector3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a×b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm returns the Euclidean magnitude of v.
func Norm(v Vector3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Add returns a+b.
func Add(a, b Vector3) Vector3 {
	return Vector3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a-b.
func Sub(a, b Vector3) Vector3 {
	return Vector3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns k·v.
func Scale(k float64, v Vector3) Vector3 {
	return Vector3{k * v[0], k * v[1], k * v[2]}
}

// Negate returns -v.
func Negate(v Vector3) Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// Normalize returns v/|v|.
// A zero (or non-finite) magnitude yields ErrDegenerateGeometry; the
// function never hands back a NaN vector.
func Normalize(v Vector3) (Vector3, error) {
	return NormalizeMag(v, Norm(v))
}

// NormalizeMag divides v by a magnitude the caller already computed.
// It is the hot-loop variant of Normalize; mag is trusted as |v|.
func NormalizeMag(v Vector3, mag float64) (Vector3, error) {
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return Vector3{}, tensorErrorf(opNormalize, ErrDegenerateGeometry)
	}
	return Vector3{v[0] / mag, v[1] / mag, v[2] / mag}, nil
}

// Angle returns the angle in [0, π] between a and b.
// Zero vectors give NaN.
func Angle(a, b Vector3) float64 {
	return math.Acos(Clamp(Dot(a, b)/(Norm(a)*Norm(b)), -1, 1))
}

// Perpendicular returns a unit vector orthogonal to the unit vector v.
// The component of v with the smallest magnitude is swapped out, which keeps
// the cross product well conditioned.
func Perpendicular(v Vector3) Vector3 {
	var e Vector3
	ax, ay, az := math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])
	switch {
	case ax <= ay && ax <= az:
		e = Vector3{1, 0, 0}
	case ay <= az:
		e = Vector3{0, 1, 0}
	default:
		e = Vector3{0, 0, 1}
	}
	p := Cross(v, e)
	return Scale(1/Norm(p), p)
}

// IsZero reports whether every component of v is within eps of zero.
func IsZero(v Vector3, eps float64) bool {
	return math.Abs(v[0]) <= eps && math.Abs(v[1]) <= eps && math.Abs(v[2]) <= eps
}

// Clamp limits x to [lo, hi]. NaN passes through unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
