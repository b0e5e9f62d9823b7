package geomeca

import "github.com/katalvlaran/paleostress/tensor"

// Engine exposes the stress state at an observation point.
type Engine interface {
	// SetHypotheticalStress installs the candidate state (principal rotation
	// hrot, stress ratio r).
	SetHypotheticalStress(hrot tensor.Matrix3, r float64)
	// Stress returns the stress state at point.
	Stress(point tensor.Vector3) StressTensor
}

// EngineFactory returns an engine already set to the candidate t. Criteria
// call it once per candidate so that concurrent evaluations never share an
// engine.
type EngineFactory func(t StressTensor) Engine

// HomogeneousEngine assumes one stress state over the whole studied domain.
type HomogeneousEngine struct {
	state StressTensor
}

// NewHomogeneousEngine returns an engine set to FromRotation(hrot, r).
func NewHomogeneousEngine(hrot tensor.Matrix3, r float64) *HomogeneousEngine {
	return &HomogeneousEngine{state: FromRotation(hrot, r)}
}

// Homogeneous is the EngineFactory of HomogeneousEngine.
func Homogeneous(t StressTensor) Engine {
	return &HomogeneousEngine{state: t}
}

// SetHypotheticalStress implements Engine.
func (e *HomogeneousEngine) SetHypotheticalStress(hrot tensor.Matrix3, r float64) {
	e.state = FromRotation(hrot, r)
}

// Stress implements Engine; point is ignored.
func (e *HomogeneousEngine) Stress(tensor.Vector3) StressTensor {
	return e.state
}

// SuperpositionEngine is the placeholder for spatially varying stress built
// from several sources. Until combination is implemented it refuses extra
// components and answers exactly like HomogeneousEngine.
type SuperpositionEngine struct {
	HomogeneousEngine
}

// NewSuperpositionEngine returns a superposition engine set to
// FromRotation(hrot, r).
func NewSuperpositionEngine(hrot tensor.Matrix3, r float64) *SuperpositionEngine {
	return &SuperpositionEngine{HomogeneousEngine: *NewHomogeneousEngine(hrot, r)}
}

// AddComponent always fails with ErrSuperpositionUnsupported.
func (e *SuperpositionEngine) AddComponent(StressTensor) error {
	return ErrSuperpositionUnsupported
}
