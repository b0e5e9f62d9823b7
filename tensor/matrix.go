// SPDX-License-Identifier: MIT
// Package tensor - Matrix3 kernels and proper rotations.
//
// Purpose:
//   - Products, transpose, trace and determinant of 3×3 tensors.
//   - Rodrigues rotations and their axis/angle inverse.
//
// Notes:
//   - Rotation angles are recovered with atan2 of the skew part and the
//     trace, which stays accurate near 0 and π.

package tensor

import "math"

// Matrix3 is a 3×3 tensor stored row-major. Rows are independent arrays.
type Matrix3 [3][3]float64

// Identity returns the 3×3 identity tensor.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diag returns the diagonal tensor diag(a, b, c).
func Diag(a, b, c float64) Matrix3 {
	return Matrix3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// FromRows builds a tensor whose rows are r0, r1, r2.
func FromRows(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{r0, r1, r2}
}

// Row returns row i as a vector.
func (m Matrix3) Row(i int) Vector3 {
	return Vector3(m[i])
}

// Col returns column j as a vector.
func (m Matrix3) Col(j int) Vector3 {
	return Vector3{m[0][j], m[1][j], m[2][j]}
}

// Mul returns the tensor product C = A·B, C[i][j] = Σk A[i][k]·B[k][j].
func Mul(a, b Matrix3) Matrix3 {
	var (
		c       Matrix3
		i, j, k int
		sum     float64
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			sum = 0
			for k = 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c
}

// Transpose returns Aᵀ.
func Transpose(a Matrix3) Matrix3 {
	return Matrix3{
		{a[0][0], a[1][0], a[2][0]},
		{a[0][1], a[1][1], a[2][1]},
		{a[0][2], a[1][2], a[2][2]},
	}
}

// MulVec returns A·v.
func MulVec(a Matrix3, v Vector3) Vector3 {
	return Vector3{
		a[0][0]*v[0] + a[0][1]*v[1] + a[0][2]*v[2],
		a[1][0]*v[0] + a[1][1]*v[1] + a[1][2]*v[2],
		a[2][0]*v[0] + a[2][1]*v[1] + a[2][2]*v[2],
	}
}

// Trace returns A[0][0]+A[1][1]+A[2][2].
func Trace(a Matrix3) float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Det returns the determinant of A.
func Det(a Matrix3) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// EqualApprox reports whether every entry of a and b differs by at most eps.
func EqualApprox(a, b Matrix3, eps float64) bool {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsRotation reports whether r is orthonormal with determinant +1 within eps.
// Nothing in this package calls it implicitly; it exists for callers that
// want to validate user-supplied rotations.
func IsRotation(r Matrix3, eps float64) bool {
	return EqualApprox(Mul(r, Transpose(r)), Identity(), eps) && math.Abs(Det(r)-1) <= eps
}

// ProperRotation returns the rotation tensor of angle radians about axis
// (Rodrigues' formula). The rotation is counter-clockwise when looking down
// the axis towards the origin.
//
// Precondition: axis is a unit vector. This is not checked; the function
// runs inside the search inner loops.
func ProperRotation(axis Vector3, angle float64) Matrix3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	return Matrix3{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

// skew returns the axial vector of r - rᵀ, which is 2·sin(angle)·axis for
// a proper rotation.
func skew(r Matrix3) Vector3 {
	return Vector3{r[2][1] - r[1][2], r[0][2] - r[2][0], r[1][0] - r[0][1]}
}

// rotationAngle is atan2(sin, cos) of the rotation, accurate near 0 and π
// where acos of the trace is not.
func rotationAngle(r Matrix3, w Vector3) float64 {
	return math.Atan2(Norm(w)/2, (Trace(r)-1)/2)
}

// RotationAngle returns the rotation angle in [0, π] of a proper rotation.
func RotationAngle(r Matrix3) float64 {
	return rotationAngle(r, skew(r))
}

// RotationAxisAngle recovers a unit axis and an angle in [0, π] from a
// proper rotation. For the identity the axis is (0, 0, 1) and the angle 0.
func RotationAxisAngle(r Matrix3) (Vector3, float64) {
	w := skew(r)
	angle := rotationAngle(r, w)
	if angle < 1e-12 {
		return Vector3{0, 0, 1}, 0
	}
	if n := Norm(w); n > 1e-9 {
		return Scale(1/n, w), angle
	}
	// angle ≈ π: the axis is the dominant column of (R+I)/2.
	var (
		best Vector3
		bn   float64
		j    int
	)
	for j = 0; j < 3; j++ {
		col := Vector3{r[0][j], r[1][j], r[2][j]}
		col[j]++
		if n := Norm(col); n > bn {
			best, bn = col, n
		}
	}
	return Scale(1/bn, best), angle
}
