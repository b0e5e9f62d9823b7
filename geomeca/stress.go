package geomeca

import (
	"fmt"

	"github.com/katalvlaran/paleostress/tensor"
)

// StressTensor is one fully specified candidate stress state. It is a value:
// copies are independent and nothing mutates it after construction.
type StressTensor struct {
	// S is the stress tensor in the geographic frame.
	S tensor.Matrix3
	// S1, S2, S3 are the unit principal directions.
	S1, S2, S3 tensor.Vector3
	// Sigma1, Sigma2, Sigma3 are the principal magnitudes (compression negative).
	Sigma1, Sigma2, Sigma3 float64
	// Hrot has rows S1, S3, S2 and maps geographic to principal coordinates.
	Hrot tensor.Matrix3
}

// R returns the stress ratio (σ2-σ3)/(σ1-σ3).
// When σ1 == σ3 the ratio is undefined and NaN is returned.
func (t StressTensor) R() float64 {
	return (t.Sigma2 - t.Sigma3) / (t.Sigma1 - t.Sigma3)
}

// Traction returns the traction vector S·n acting on a plane of normal n.
func (t StressTensor) Traction(n tensor.Vector3) tensor.Vector3 {
	return tensor.MulVec(t.S, n)
}

// Shear returns the shear stress vector resolved on the plane of unit
// normal n (traction minus its normal component) and its magnitude.
func (t StressTensor) Shear(n tensor.Vector3) (tensor.Vector3, float64) {
	tr := tensor.MulVec(t.S, n)
	tau := tensor.Sub(tr, tensor.Scale(tensor.Dot(tr, n), n))
	return tau, tensor.Norm(tau)
}

// FromRotation builds the stress state with principal frame hrot and stress
// ratio r. hrot must be a proper rotation whose rows are S1, S3, S2.
func FromRotation(hrot tensor.Matrix3, r float64) StressTensor {
	stp := tensor.Diag(-1, 0, -r)
	return StressTensor{
		S:      tensor.Mul(tensor.Transpose(hrot), tensor.Mul(stp, hrot)),
		S1:     hrot.Row(0),
		S3:     hrot.Row(1),
		S2:     hrot.Row(2),
		Sigma1: -1,
		Sigma3: 0,
		Sigma2: -r,
		Hrot:   hrot,
	}
}

// FromTensor derives the principal frame of an arbitrary symmetric tensor.
// σ1 is the most compressive (smallest) eigenvalue and σ3 the least
// compressive (largest). S2 is rebuilt as S1×S3 so that Hrot is proper.
// With repeated eigenvalues the axes of the repeated pair are arbitrary.
func FromTensor(s tensor.Matrix3) (StressTensor, error) {
	values, vectors, err := tensor.EigenSym(s, tensor.DefaultEigenTol, tensor.DefaultEigenMaxIter)
	if err != nil {
		return StressTensor{}, fmt.Errorf("FromTensor: %w", err)
	}
	s1 := vectors.Col(0)
	s3 := vectors.Col(2)
	s2 := tensor.Cross(s1, s3)
	return StressTensor{
		S:      s,
		S1:     s1,
		S2:     s2,
		S3:     s3,
		Sigma1: values[0],
		Sigma2: values[1],
		Sigma3: values[2],
		Hrot:   tensor.FromRows(s1, s3, s2),
	}, nil
}
