package geomeca_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

func randomRotation(rng *rand.Rand) tensor.Matrix3 {
	axis := tensor.SphericalToCartesian(tensor.SphericalCoords{
		Phi:   rng.Float64() * 2 * math.Pi,
		Theta: math.Acos(2*rng.Float64() - 1),
	})
	return tensor.ProperRotation(axis, rng.Float64()*math.Pi)
}

func TestFromRotationIdentity(t *testing.T) {
	st := geomeca.FromRotation(tensor.Identity(), 0.5)

	assert.Equal(t, tensor.Diag(-1, 0, -0.5), st.S)
	assert.Equal(t, tensor.Vector3{1, 0, 0}, st.S1)
	assert.Equal(t, tensor.Vector3{0, 1, 0}, st.S3)
	assert.Equal(t, tensor.Vector3{0, 0, 1}, st.S2)
	assert.Equal(t, 0.5, st.R())
	assert.Equal(t, tensor.Identity(), st.Hrot)
}

func TestFromRotationPrincipalDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 20; n++ {
		h := randomRotation(rng)
		r := rng.Float64()
		st := geomeca.FromRotation(h, r)

		// S·Sk = σk·Sk
		assertVec(t, tensor.Scale(st.Sigma1, st.S1), tensor.MulVec(st.S, st.S1), 1e-12)
		assertVec(t, tensor.Scale(st.Sigma2, st.S2), tensor.MulVec(st.S, st.S2), 1e-12)
		assertVec(t, tensor.Scale(st.Sigma3, st.S3), tensor.MulVec(st.S, st.S3), 1e-12)
		assert.InDelta(t, r, st.R(), 1e-15)
	}
}

func TestFromTensorRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 50; n++ {
		h := randomRotation(rng)
		r := 0.05 + 0.9*rng.Float64()

		st, err := geomeca.FromTensor(geomeca.FromRotation(h, r).S)
		require.NoError(t, err)
		assert.InDelta(t, r, st.R(), 1e-5)

		// rows agree up to sign; Hrot stays proper
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 1, math.Abs(tensor.Dot(h.Row(i), st.Hrot.Row(i))), 1e-6)
		}
		assert.True(t, tensor.IsRotation(st.Hrot, 1e-9))
	}
}

func TestFromTensorOrdering(t *testing.T) {
	// σ1 along North, σ3 along East, σ2 vertical
	st, err := geomeca.FromTensor(tensor.Diag(0, -1, -0.5))
	require.NoError(t, err)

	assert.Equal(t, -1.0, st.Sigma1)
	assert.Equal(t, -0.5, st.Sigma2)
	assert.Equal(t, 0.0, st.Sigma3)
	assert.InDelta(t, 1, math.Abs(st.S1[1]), 1e-12)
	assert.InDelta(t, 1, math.Abs(st.S3[0]), 1e-12)
	assert.InDelta(t, 1, math.Abs(st.S2[2]), 1e-12)
	assert.InDelta(t, 0.5, st.R(), 1e-12)
}

func TestFromTensorDegenerate(t *testing.T) {
	st, err := geomeca.FromTensor(tensor.Diag(-1, -1, -1))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(st.R()))

	st, err = geomeca.FromTensor(tensor.Diag(-1, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0, st.R(), 1e-12)
}

func TestFromTensorAsymmetric(t *testing.T) {
	_, err := geomeca.FromTensor(tensor.Matrix3{{0, 0, 0}, {0, -1, 0}, {-0.5, 0, 0}})
	require.ErrorIs(t, err, tensor.ErrAsymmetric)
}

func assertVec(t *testing.T, want, got tensor.Vector3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDeltaf(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}
