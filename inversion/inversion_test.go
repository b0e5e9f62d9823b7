package inversion_test

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paleostress/criteria"
	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/inversion"
	"github.com/katalvlaran/paleostress/search"
	"github.com/katalvlaran/paleostress/tensor"
)

func ptr(v float64) *float64 { return &v }

// strikeSlipRot has σ1 North, σ3 East and σ2 vertical.
var strikeSlipRot = tensor.FromRows(
	tensor.Vector3{0, 1, 0},
	tensor.Vector3{1, 0, 0},
	tensor.Vector3{0, 0, -1},
)

// compatibleSet is exactly explained by strikeSlipRot with R = 0.5.
func compatibleSet(t *testing.T) data.Set {
	t.Helper()
	set, err := data.FromRecords([]data.Record{
		{ID: 1, Type: "striated plane", Strike: 45, Dip: 45, DipDirection: "SE",
			Rake: ptr(0), StrikeDirection: "NE", TypeOfMovement: "LL"},
		{ID: 2, Type: "extension fracture", Strike: 0, Dip: 90, DipDirection: "E"},
		{ID: 3, Type: "stylolite interface", Strike: 90, Dip: 90, DipDirection: "N"},
		{ID: 4, Type: "striated plane", Strike: 135, Dip: 60, DipDirection: "SW",
			Rake: ptr(0), StrikeDirection: "SE", TypeOfMovement: "RL"},
	})
	require.NoError(t, err)
	return set
}

func grid(t *testing.T, half float64) search.Strategy {
	t.Helper()
	g, err := search.NewGrid(search.GridOptions{
		DeltaGridAngle:          tensor.Rad(2),
		AngleHalfInterval:       tensor.Rad(half),
		DeltaStressRatio:        0.05,
		StressRatioHalfInterval: 0.1,
	})
	require.NoError(t, err)
	return g
}

func TestRunWithoutData(t *testing.T) {
	inv := inversion.New()
	_, err := inv.Run()
	require.ErrorIs(t, err, inversion.ErrNoData)

	d, err := data.NewFracture(data.ExtensionFracture, tensor.Vector3{1, 0, 0}, data.WithInactive())
	require.NoError(t, err)
	inv.AddData(d, nil)
	assert.Len(t, inv.Data(), 1)
	_, err = inv.Run()
	require.ErrorIs(t, err, inversion.ErrNoData)
}

func TestRunRejectsInvalidStressRatio(t *testing.T) {
	inv := inversion.New(inversion.WithStrategy(grid(t, 2)))
	inv.AddData(compatibleSet(t)...)
	inv.SetInteractiveSolution(strikeSlipRot, 1.3)
	_, err := inv.Run()
	require.ErrorIs(t, err, search.ErrInvalidOptions)
	_, ok := inv.Best()
	assert.False(t, ok)

	inv.SetInteractiveSolution(strikeSlipRot, 0.5)
	sol, err := inv.Run()
	require.NoError(t, err)
	assert.InDelta(t, 0, sol.MisfitValue, 1e-9)
}

func TestDefaults(t *testing.T) {
	inv := inversion.New()
	assert.Equal(t, search.GridSearch, inv.Strategy().Method())
	_, ok := inv.Best()
	assert.False(t, ok)
}

func TestRunRecoversCompatibleTensor(t *testing.T) {
	inv := inversion.New(inversion.WithStrategy(grid(t, 6)))
	inv.AddData(compatibleSet(t)...)
	// Start 4° off about the vertical; the grid contains the way back.
	inv.SetInteractiveSolution(tensor.Mul(tensor.ProperRotation(tensor.Vector3{0, 0, 1}, tensor.Rad(4)), strikeSlipRot), 0.5)

	sol, err := inv.Run()
	require.NoError(t, err)
	assert.InDelta(t, 0, sol.MisfitValue, 1e-6)
	assert.InDelta(t, 0.5, sol.StressRatio, 1e-12)
	assert.True(t, tensor.EqualApprox(strikeSlipRot, sol.RotationMatrixW, 1e-9))

	best, ok := inv.Best()
	require.True(t, ok)
	assert.Equal(t, sol.MisfitValue, best.MisfitValue)
}

func TestRunContinuesAndReset(t *testing.T) {
	mc, err := search.NewMonteCarlo(search.MonteCarloOptions{
		RotAngleHalfInterval:    0.2,
		NbRandomTrials:          200,
		StressRatioHalfInterval: 0.1,
		Seed:                    3,
	})
	require.NoError(t, err)
	inv := inversion.New(inversion.WithStrategy(mc))
	inv.AddData(compatibleSet(t)...)
	inv.SetInteractiveSolution(tensor.Mul(tensor.ProperRotation(tensor.Vector3{1, 0, 0}, 0.1), strikeSlipRot), 0.4)

	first, err := inv.Run()
	require.NoError(t, err)
	second, err := inv.Run()
	require.NoError(t, err)
	// Same seed, same draws: nothing beats the carried-over best.
	assert.Equal(t, first.MisfitValue, second.MisfitValue)
	assert.Equal(t, first.RotationMatrixW, second.RotationMatrixW)

	inv.Reset()
	_, ok := inv.Best()
	assert.False(t, ok)
	third, err := inv.Run()
	require.NoError(t, err)
	assert.Equal(t, first.MisfitValue, third.MisfitValue)
}

func TestRunRescoresAfterNewData(t *testing.T) {
	inv := inversion.New(inversion.WithStrategy(grid(t, 2)))
	inv.AddData(compatibleSet(t)...)
	inv.SetInteractiveSolution(strikeSlipRot, 0.5)
	first, err := inv.Run()
	require.NoError(t, err)
	require.InDelta(t, 0, first.MisfitValue, 1e-6)

	// An extension fracture opening along σ1 cannot be explained nearby.
	bad, err := data.NewFracture(data.ExtensionFracture, tensor.Vector3{0, 1, 0})
	require.NoError(t, err)
	inv.AddData(bad)

	second, err := inv.Run()
	require.NoError(t, err)
	assert.Greater(t, second.MisfitValue, 0.1)
	assert.InDelta(t, second.Criterion.Value(second.Tensor()), second.MisfitValue, 1e-12)
}

func TestGephartCriterion(t *testing.T) {
	proto := *criteria.NewGephart(nil, criteria.PlaneGrid)
	inv := inversion.New(
		inversion.WithStrategy(grid(t, 2)),
		inversion.WithCriterion(inversion.Gephart(proto)),
	)
	inv.AddData(compatibleSet(t)...)
	inv.SetInteractiveSolution(strikeSlipRot, 0.5)

	sol, err := inv.Run()
	require.NoError(t, err)
	assert.IsType(t, &criteria.Gephart{}, sol.Criterion)
	assert.InDelta(t, 0, sol.MisfitValue, 1e-6)
	assert.True(t, tensor.EqualApprox(strikeSlipRot, sol.RotationMatrixW, 1e-9))
}

func TestWithEngine(t *testing.T) {
	var built atomic.Int64
	engine := func(st geomeca.StressTensor) geomeca.Engine {
		built.Add(1)
		return geomeca.Homogeneous(st)
	}
	inv := inversion.New(
		inversion.WithStrategy(grid(t, 0)),
		inversion.WithEngine(engine),
		inversion.WithCriterion(inversion.SimpleMean(2)),
	)
	inv.AddData(compatibleSet(t)...)
	inv.SetInteractiveSolution(strikeSlipRot, 0.5)

	sol, err := inv.Run()
	require.NoError(t, err)
	// One grid node, five stress ratios (0.4 to 0.6).
	assert.Equal(t, int64(5), built.Load())

	inv.Predict(sol)
	assert.Equal(t, int64(6), built.Load())
}

func TestPredict(t *testing.T) {
	set := compatibleSet(t)
	set[2].SetActive(false)
	inv := inversion.New()
	inv.AddData(set...)

	sol := search.NewSolution(nil)
	sol.RotationMatrixW = strikeSlipRot
	sol.StressRatio = 0.5

	preds := inv.Predict(sol)
	require.Len(t, preds, 4)
	for i, p := range preds {
		assert.Same(t, set[i], p.Datum)
		assert.InDelta(t, 0, p.Residual, 1e-6, "datum %d", i)
		assert.InDelta(t, 0, p.DotCost, 1e-6, "datum %d", i)
	}
	assert.False(t, preds[2].Datum.Active())

	// Faults predict the resolved shear direction, which matches the
	// measured striation at a perfect fit.
	for _, i := range []int{0, 3} {
		assert.InDelta(t, 1, tensor.Dot(set[i].Striation(), preds[i].Striation), 1e-6)
	}
	// Extension fractures open along σ3 (East).
	assert.InDelta(t, 1, math.Abs(tensor.Dot(tensor.Vector3{1, 0, 0}, preds[1].Normal)), 1e-9)
}

func TestOptionsRejectNil(t *testing.T) {
	assert.Panics(t, func() { inversion.WithStrategy(nil) })
	assert.Panics(t, func() { inversion.WithCriterion(nil) })
	assert.Panics(t, func() { inversion.WithEngine(nil) })
}
