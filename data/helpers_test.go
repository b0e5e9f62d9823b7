package data_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paleostress/data"
	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

const tol = 1e-9

func ptr(v float64) *float64 { return &v }

func assertVec(t *testing.T, want, got tensor.Vector3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDeltaf(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

func mustRecord(t *testing.T, rec data.Record) *data.Datum {
	t.Helper()
	d, err := data.FromRecord(rec)
	require.NoError(t, err)
	return d
}

func mustTensor(t *testing.T, s tensor.Matrix3) data.Fields {
	t.Helper()
	st, err := geomeca.FromTensor(s)
	require.NoError(t, err)
	return data.Fields{Stress: &st}
}

// requirePanicIs fails unless fn panics with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}
