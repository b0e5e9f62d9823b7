package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paleostress/tensor"
)

func TestMulTranspose(t *testing.T) {
	a := tensor.Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	b := tensor.Matrix3{{2, 0, 1}, {0, 1, 0}, {1, 0, 2}}

	want := tensor.Matrix3{{5, 2, 7}, {14, 5, 16}, {24, 8, 27}}
	assert.Equal(t, want, tensor.Mul(a, b))
	assert.Equal(t, a, tensor.Mul(a, tensor.Identity()))

	at := tensor.Transpose(a)
	assert.Equal(t, 4.0, at[0][1])
	assert.Equal(t, a, tensor.Transpose(at))

	// (AB)ᵀ = BᵀAᵀ
	assert.True(t, tensor.EqualApprox(tensor.Transpose(tensor.Mul(a, b)), tensor.Mul(tensor.Transpose(b), at), eps))
}

func TestMatrixRowsDoNotAlias(t *testing.T) {
	a := tensor.Identity()
	b := a
	b[0][0] = 5
	assert.Equal(t, 1.0, a[0][0])

	row := a.Row(1)
	row[1] = 7
	assert.Equal(t, 1.0, a[1][1])
}

func TestDet(t *testing.T) {
	assert.Equal(t, 1.0, tensor.Det(tensor.Identity()))
	assert.Equal(t, -3.0, tensor.Det(tensor.Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}))
	assert.Equal(t, 6.0, tensor.Det(tensor.Diag(1, 2, 3)))
}

func TestProperRotation(t *testing.T) {
	cases := []struct {
		name  string
		axis  tensor.Vector3
		angle float64
		in    tensor.Vector3
		want  tensor.Vector3
	}{
		{"z quarter turn", tensor.Vector3{0, 0, 1}, math.Pi / 2, tensor.Vector3{1, 0, 0}, tensor.Vector3{0, 1, 0}},
		{"x quarter turn", tensor.Vector3{1, 0, 0}, math.Pi / 2, tensor.Vector3{0, 1, 0}, tensor.Vector3{0, 0, 1}},
		{"y half turn", tensor.Vector3{0, 1, 0}, math.Pi, tensor.Vector3{1, 0, 0}, tensor.Vector3{-1, 0, 0}},
		{"axis is fixed", tensor.Vector3{0.6, 0, 0.8}, 1.234, tensor.Vector3{0.6, 0, 0.8}, tensor.Vector3{0.6, 0, 0.8}},
		{"null rotation", tensor.Vector3{0, 0, 1}, 0, tensor.Vector3{0.2, 0.3, 0.4}, tensor.Vector3{0.2, 0.3, 0.4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tensor.ProperRotation(tc.axis, tc.angle)
			require.True(t, tensor.IsRotation(r, 1e-12))
			assertVecInDelta(t, tc.want, tensor.MulVec(r, tc.in), 1e-12)
		})
	}
}

func TestRotationAxisAngleRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		axis  tensor.Vector3
		angle float64
	}{
		{tensor.Vector3{0, 0, 1}, 0.3},
		{tensor.Vector3{0.48, -0.6, 0.64}, 2.1},
		{tensor.Vector3{1, 0, 0}, math.Pi},
		{tensor.Vector3{0, math.Sqrt2 / 2, math.Sqrt2 / 2}, math.Pi},
	} {
		axis, angle := tensor.RotationAxisAngle(tensor.ProperRotation(tc.axis, tc.angle))
		assert.InDelta(t, tc.angle, angle, 1e-9)
		// at π the axis sign is arbitrary
		assert.InDelta(t, 1, math.Abs(tensor.Dot(axis, tc.axis)), 1e-9)
	}

	axis, angle := tensor.RotationAxisAngle(tensor.Identity())
	assert.Equal(t, 0.0, angle)
	assert.Equal(t, tensor.Vector3{0, 0, 1}, axis)
}

func TestRotationAngleNearLimits(t *testing.T) {
	axis := tensor.Vector3{0.48, -0.6, 0.64}
	for _, angle := range []float64{1e-7, 1e-4, math.Pi - 1e-4, math.Pi - 1e-7, math.Pi} {
		r := tensor.ProperRotation(axis, angle)
		assert.InDelta(t, angle, tensor.RotationAngle(r), 1e-12, "angle %v", angle)
		_, got := tensor.RotationAxisAngle(r)
		assert.InDelta(t, angle, got, 1e-12, "angle %v", angle)
	}
}
