package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateGeometry is returned when a direction cannot be derived
	// from the input, most commonly when normalizing a zero vector.
	ErrDegenerateGeometry = errors.New("tensor: degenerate geometry")

	// ErrZeroVector is the zero-magnitude flavour of ErrDegenerateGeometry.
	ErrZeroVector = ErrDegenerateGeometry

	// ErrAsymmetric is returned by EigenSym when |A[i][j]-A[j][i]| exceeds
	// the requested tolerance.
	ErrAsymmetric = errors.New("tensor: tensor is not symmetric within tolerance")

	// ErrEigenNotConverged is returned by EigenSym when the off-diagonal
	// mass is still above tolerance after maxIter rotations.
	ErrEigenNotConverged = errors.New("tensor: eigen decomposition did not converge")
)

// operation tags used in wrapped errors.
const (
	opNormalize = "Normalize"
	opEigenSym  = "EigenSym"
)

func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
