package geomeca

import (
	"math"

	"github.com/katalvlaran/paleostress/tensor"
)

// MasterAxis selects which principal axis keeps its field orientation when
// RotationFromAxes has to reconcile two non-perpendicular measurements.
type MasterAxis int

const (
	// MasterSigma1 keeps σ1 exactly and adjusts the plunge of σ3.
	MasterSigma1 MasterAxis = iota
	// MasterSigma3 keeps σ3 exactly and adjusts the plunge of σ1.
	MasterSigma3
)

// String implements fmt.Stringer.
func (m MasterAxis) String() string {
	if m == MasterSigma3 {
		return "S3"
	}
	return "S1"
}

const axisTolerance = 1e-9

// RotationFromAxes builds a principal rotation (rows S1, S3, S2) from field
// trend/plunge readings in radians. The master axis is used as given. The
// slave axis keeps its trend while its plunge is recomputed so that it is
// perpendicular to the master. When every plunge fits (master horizontal and
// perpendicular to the slave trend) the slave plunge is used as given.
func RotationFromAxes(trendS1, plungeS1, trendS3, plungeS3 float64, master MasterAxis) tensor.Matrix3 {
	var s1, s3 tensor.Vector3
	if master == MasterSigma3 {
		s3 = tensor.TrendPlunge(trendS3, plungeS3)
		s1 = slaveAxis(s3, trendS1, plungeS1)
	} else {
		s1 = tensor.TrendPlunge(trendS1, plungeS1)
		s3 = slaveAxis(s1, trendS3, plungeS3)
	}
	return tensor.FromRows(s1, s3, tensor.Cross(s1, s3))
}

// slaveAxis returns the unit vector perpendicular to master whose horizontal
// projection points along trend, with a downward plunge when vertical.
func slaveAxis(master tensor.Vector3, trend, plunge float64) tensor.Vector3 {
	h := tensor.Azimuth(trend)
	// v = a·h + b·Up with v·master = 0
	a := master[2]
	b := -tensor.Dot(h, master)
	if math.Abs(a) < axisTolerance && math.Abs(b) < axisTolerance {
		return tensor.TrendPlunge(trend, plunge)
	}
	if math.Abs(a) < axisTolerance {
		a = 0
		if b > 0 {
			b = -b
		}
	} else if a < 0 {
		a, b = -a, -b
	}
	n := math.Hypot(a, b)
	return tensor.Add(tensor.Scale(a/n, h), tensor.Vector3{0, 0, b / n})
}
