package tensor_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/paleostress/tensor"
)

func TestSphericalRoundTrip(t *testing.T) {
	for _, sc := range []tensor.SphericalCoords{
		{Phi: 0.3, Theta: 0.2},
		{Phi: 5.9, Theta: 2.9},
		{Phi: math.Pi, Theta: math.Pi / 2},
	} {
		v := tensor.SphericalToCartesian(sc)
		assert.InDelta(t, 1, tensor.Norm(v), 1e-12)
		back := tensor.CartesianToSpherical(v)
		assert.InDelta(t, sc.Phi, back.Phi, 1e-12)
		assert.InDelta(t, sc.Theta, back.Theta, 1e-12)
	}
}

func TestCartesianToSphericalPoles(t *testing.T) {
	up := tensor.CartesianToSpherical(tensor.Vector3{0, 0, 1})
	assert.Equal(t, 0.0, up.Phi)
	assert.Equal(t, 0.0, up.Theta)

	down := tensor.CartesianToSpherical(tensor.Vector3{0, 0, -1})
	assert.InDelta(t, math.Pi, down.Theta, 1e-15)

	west := tensor.CartesianToSpherical(tensor.Vector3{-1, 0, 0})
	assert.InDelta(t, math.Pi, west.Phi, 1e-15)
	south := tensor.CartesianToSpherical(tensor.Vector3{0, -1, 0})
	assert.InDelta(t, 3*math.Pi/2, south.Phi, 1e-15)
}

func TestTrendPlunge(t *testing.T) {
	assertVecInDelta(t, tensor.Vector3{0, 1, 0}, tensor.TrendPlunge(0, 0), eps)
	assertVecInDelta(t, tensor.Vector3{1, 0, 0}, tensor.TrendPlunge(tensor.Rad(90), 0), eps)
	assertVecInDelta(t, tensor.Vector3{0, 0, -1}, tensor.TrendPlunge(0, tensor.Rad(90)), eps)

	trend, plunge := tensor.ToTrendPlunge(tensor.TrendPlunge(tensor.Rad(210), tensor.Rad(35)))
	assert.InDelta(t, 210, tensor.Deg(trend), 1e-9)
	assert.InDelta(t, 35, tensor.Deg(plunge), 1e-9)

	// upward vectors fold onto the lower hemisphere
	trend, plunge = tensor.ToTrendPlunge(tensor.Vector3{0, -math.Sqrt2 / 2, math.Sqrt2 / 2})
	assert.InDelta(t, 0, tensor.Deg(trend), 1e-9)
	assert.InDelta(t, 45, tensor.Deg(plunge), 1e-9)

	// horizontal lines have a plunge of +0, whatever the sign of z
	for _, v := range []tensor.Vector3{{1, 0, 0}, {0, 1, math.Copysign(0, -1)}, {-1, 0, 0}} {
		trend, plunge = tensor.ToTrendPlunge(v)
		assert.False(t, math.Signbit(plunge), "plunge of %v is %v", v, plunge)
		assert.Equal(t, "00", fmt.Sprintf("%02.0f", tensor.Deg(plunge)))
		assert.GreaterOrEqual(t, trend, 0.0)
	}
}

func TestFibonacciAxis(t *testing.T) {
	const n = 200
	var mean tensor.Vector3
	for i := 0; i < n; i++ {
		a := tensor.FibonacciAxis(i, n)
		assert.InDelta(t, 1, tensor.Norm(a), 1e-12)
		assert.GreaterOrEqual(t, a[2], 0.0)
		mean = tensor.Add(mean, a)
	}
	mean = tensor.Scale(1.0/n, mean)
	// quasi-uniform over the hemisphere: centroid near (0, 0, 1/2)
	assert.InDelta(t, 0, mean[0], 0.02)
	assert.InDelta(t, 0, mean[1], 0.02)
	assert.InDelta(t, 0.5, mean[2], 0.02)

	assertVecInDelta(t, tensor.Vector3{1, 0, 0}, tensor.FibonacciAxis(0, n), 1e-12)
}
