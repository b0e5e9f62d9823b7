package data

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paleostress/tensor"
)

var (
	// ErrGeometryInconsistency reports field geometry that contradicts itself:
	// a striation not lying in its plane, a movement sense the striation
	// cannot carry, or a dip direction along the strike line.
	ErrGeometryInconsistency = errors.New("data: geometry inconsistency")

	// ErrDegenerateGeometry is tensor.ErrDegenerateGeometry, re-exported for
	// callers that only import this package.
	ErrDegenerateGeometry = tensor.ErrDegenerateGeometry

	// ErrUnsupportedConfiguration is the family of closed-enum lookup failures.
	ErrUnsupportedConfiguration = errors.New("data: unsupported configuration")

	// ErrUnsupportedKind is returned by ParseKind for unknown datum type names.
	ErrUnsupportedKind = fmt.Errorf("data: unknown datum kind: %w", ErrUnsupportedConfiguration)

	// ErrPreconditionViolated is the panic value (wrapped) of Cost and Predict
	// when Check does not hold.
	ErrPreconditionViolated = errors.New("data: precondition violated")

	// ErrInvalidRecord reports a record missing a field its kind needs or
	// holding an unparsable token.
	ErrInvalidRecord = errors.New("data: invalid record")

	// ErrInvalidWeight is returned for non-positive or non-finite weights.
	ErrInvalidWeight = errors.New("data: weight must be positive and finite")
)
