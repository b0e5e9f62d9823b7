package geomeca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

func TestHomogeneousEngineIgnoresPoint(t *testing.T) {
	e := geomeca.NewHomogeneousEngine(tensor.Identity(), 0.3)
	a := e.Stress(tensor.Vector3{})
	b := e.Stress(tensor.Vector3{1000, -250, 12})
	assert.Equal(t, a, b)
	assert.InDelta(t, 0.3, a.R(), 1e-15)

	h := tensor.ProperRotation(tensor.Vector3{0, 0, 1}, 0.7)
	e.SetHypotheticalStress(h, 0.8)
	assert.Equal(t, geomeca.FromRotation(h, 0.8), e.Stress(tensor.Vector3{5, 5, 5}))
}

func TestHomogeneousFactory(t *testing.T) {
	st := geomeca.FromRotation(tensor.Identity(), 0.1)
	var factory geomeca.EngineFactory = geomeca.Homogeneous
	assert.Equal(t, st, factory(st).Stress(tensor.Vector3{1, 2, 3}))
}

func TestSuperpositionEngineBehavesHomogeneous(t *testing.T) {
	e := geomeca.NewSuperpositionEngine(tensor.Identity(), 0.5)
	require.ErrorIs(t, e.AddComponent(geomeca.FromRotation(tensor.Identity(), 0.2)), geomeca.ErrSuperpositionUnsupported)

	var engine geomeca.Engine = e
	assert.Equal(t, geomeca.FromRotation(tensor.Identity(), 0.5), engine.Stress(tensor.Vector3{3, 0, 0}))
}
