package data

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// Mode selects how angular disagreement is turned into a cost.
type Mode int

const (
	// AngleMode scores with the misfit angle itself, in [0, π].
	AngleMode Mode = iota
	// DotMode scores with a monotonic function of the cosine, in [0, 1],
	// which avoids the acos.
	DotMode
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == DotMode {
		return "dot"
	}
	return "angle"
}

// DefaultShearEpsilon is the shear-stress magnitude at or below which a
// fault plane is considered to carry no resolved shear.
const DefaultShearEpsilon = 1e-3

// Fields is the set of candidate fields a datum may be evaluated against.
type Fields struct {
	Stress *geomeca.StressTensor
}

// Prediction is the orientation a datum would show under a stress field.
// Striation is zero for fracture-like data and for faults without shear.
type Prediction struct {
	Normal    tensor.Vector3
	Striation tensor.Vector3
}

// Datum is one field observation. Geometry is fixed at construction; only
// the active flag and the weight may change afterwards.
type Datum struct {
	id       int
	kind     Kind
	source   string
	position tensor.Vector3
	active   bool
	weight   float64

	normal    tensor.Vector3
	striation tensor.Vector3
	oriented  bool

	mode       Mode
	epsilon    float64
	constraint *AngleConstraint
}

// Option customizes a Datum at construction.
type Option func(*Datum)

// WithID sets the identifier reported in predictions and errors.
func WithID(id int) Option { return func(d *Datum) { d.id = id } }

// WithSource records the originating file or dataset name.
func WithSource(src string) Option { return func(d *Datum) { d.source = src } }

// WithPosition places the datum; the default is the origin.
func WithPosition(p tensor.Vector3) Option { return func(d *Datum) { d.position = p } }

// WithMode selects the scoring mode (AngleMode by default).
func WithMode(m Mode) Option { return func(d *Datum) { d.mode = m } }

// WithInactive builds the datum switched off.
func WithInactive() Option { return func(d *Datum) { d.active = false } }

// WithUnoriented marks the striation sense as unknown.
func WithUnoriented() Option { return func(d *Datum) { d.oriented = false } }

// WithWeight sets the weight. Panics on non-positive or non-finite values.
func WithWeight(w float64) Option {
	if !validWeight(w) {
		panic(fmt.Sprintf("data: WithWeight(%v)", w))
	}
	return func(d *Datum) { d.weight = w }
}

// WithShearEpsilon overrides DefaultShearEpsilon. Panics on negative values.
func WithShearEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("data: WithShearEpsilon(%v)", eps))
	}
	return func(d *Datum) { d.epsilon = eps }
}

// WithAngleConstraint attaches the σ1/plane angle window of a neoformed plane.
// It is ignored by other kinds.
func WithAngleConstraint(c AngleConstraint) Option {
	return func(d *Datum) { d.constraint = &c }
}

func validWeight(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

func newDatum(kind Kind, normal tensor.Vector3, opts []Option) (*Datum, error) {
	n, err := tensor.Normalize(normal)
	if err != nil {
		return nil, fmt.Errorf("%s normal: %w", kind, err)
	}
	d := &Datum{
		kind:     kind,
		active:   true,
		weight:   1,
		normal:   n,
		oriented: true,
		mode:     AngleMode,
		epsilon:  DefaultShearEpsilon,
	}
	for _, opt := range opts {
		opt(d)
	}
	if kind != NeoformedStriatedPlane {
		d.constraint = nil
	}
	return d, nil
}

// NewFracture builds a fracture-like datum from its normal.
func NewFracture(kind Kind, normal tensor.Vector3, opts ...Option) (*Datum, error) {
	if kind.IsFault() {
		return nil, fmt.Errorf("NewFracture(%s): %w", kind, ErrUnsupportedKind)
	}
	return newDatum(kind, normal, opts)
}

// NewFault builds a fault-like datum. The striation must lie in the plane:
// |n·s| above EPS after normalization is ErrGeometryInconsistency.
func NewFault(kind Kind, normal, striation tensor.Vector3, opts ...Option) (*Datum, error) {
	if !kind.IsFault() {
		return nil, fmt.Errorf("NewFault(%s): %w", kind, ErrUnsupportedKind)
	}
	d, err := newDatum(kind, normal, opts)
	if err != nil {
		return nil, err
	}
	if d.striation, err = tensor.Normalize(striation); err != nil {
		return nil, fmt.Errorf("%s striation: %w", kind, err)
	}
	if c := tensor.Dot(d.normal, d.striation); math.Abs(c) > EPS {
		return nil, fmt.Errorf("%s: normal·striation = %g: %w", kind, c, ErrGeometryInconsistency)
	}
	return d, nil
}

// ID returns the datum identifier.
func (d *Datum) ID() int { return d.id }

// Kind returns the datum kind.
func (d *Datum) Kind() Kind { return d.kind }

// Source returns the originating file or dataset name.
func (d *Datum) Source() string { return d.source }

// Position returns the observation point.
func (d *Datum) Position() tensor.Vector3 { return d.position }

// Normal returns the unit plane normal.
func (d *Datum) Normal() tensor.Vector3 { return d.normal }

// Striation returns the unit slip vector; zero for fracture-like data.
func (d *Datum) Striation() tensor.Vector3 { return d.striation }

// Oriented reports whether the sense of slip is known.
func (d *Datum) Oriented() bool { return d.oriented }

// Mode returns the scoring mode.
func (d *Datum) Mode() Mode { return d.mode }

// ShearEpsilon returns the shear magnitude at or below which the plane is
// treated as carrying no shear.
func (d *Datum) ShearEpsilon() float64 { return d.epsilon }

// Active reports whether the datum takes part in the inversion.
func (d *Datum) Active() bool { return d.active }

// Weight returns the weight applied to the cost by criteria.
func (d *Datum) Weight() float64 { return d.weight }

// SetActive switches the datum on or off.
func (d *Datum) SetActive(active bool) { d.active = active }

// SetWeight overrides the weight.
func (d *Datum) SetWeight(w float64) error {
	if !validWeight(w) {
		return fmt.Errorf("SetWeight(%v): %w", w, ErrInvalidWeight)
	}
	d.weight = w
	return nil
}

// Check reports whether f holds what the datum needs. Every kind is
// stress-driven, so a stress field is required.
func (d *Datum) Check(f Fields) bool {
	return f.Stress != nil
}

func (d *Datum) mustCheck(op string, f Fields) {
	if !d.Check(f) {
		panic(fmt.Errorf("data: %s on %s #%d without stress field: %w", op, d.kind, d.id, ErrPreconditionViolated))
	}
}

// Cost scores the datum against f. Zero is a perfect fit; the upper bound
// is π in AngleMode and 1 in DotMode. It panics (ErrPreconditionViolated)
// when Check(f) is false.
func (d *Datum) Cost(f Fields) float64 {
	d.mustCheck("Cost", f)
	return d.cost(*f.Stress, d.mode)
}

// Residual is the angular misfit in radians, whatever the scoring mode.
// It panics like Cost.
func (d *Datum) Residual(f Fields) float64 {
	d.mustCheck("Residual", f)
	return d.cost(*f.Stress, AngleMode)
}

// CostAs scores the datum in mode instead of its own. It panics like Cost.
func (d *Datum) CostAs(mode Mode, f Fields) float64 {
	d.mustCheck("CostAs", f)
	return d.cost(*f.Stress, mode)
}

func (d *Datum) cost(st geomeca.StressTensor, mode Mode) float64 {
	if !d.kind.IsFault() {
		return fractureCost(d.normal, d.axis(st), mode)
	}
	c := d.slipCost(st, mode)
	if d.constraint != nil {
		c = d.constraint.penalize(c, d.normal, st, mode)
	}
	return c
}

// axis returns the principal direction a fracture-like normal should follow.
func (d *Datum) axis(st geomeca.StressTensor) tensor.Vector3 {
	if d.kind.alignsWithSigma1() {
		return st.S1
	}
	return st.S3
}

func fractureCost(n, axis tensor.Vector3, mode Mode) float64 {
	c := tensor.Clamp(math.Abs(tensor.Dot(n, axis)), 0, 1)
	if mode == DotMode {
		return 1 - c
	}
	return math.Acos(c)
}

func (d *Datum) slipCost(st geomeca.StressTensor, mode Mode) float64 {
	tau, mag := st.Shear(d.normal)
	if mag <= d.epsilon {
		// No driving shear: the worst score reachable in this mode.
		return worstSlipCost(mode, d.oriented)
	}
	cosD := tensor.Clamp(tensor.Dot(tau, d.striation)/mag, -1, 1)
	if !d.oriented {
		cosD = math.Abs(cosD)
	}
	if mode == DotMode {
		return 0.5 - cosD/2
	}
	return math.Acos(cosD)
}

func worstSlipCost(mode Mode, oriented bool) float64 {
	cosD := -1.0
	if !oriented {
		cosD = 0
	}
	if mode == DotMode {
		return 0.5 - cosD/2
	}
	return math.Acos(cosD)
}

// Predict returns the orientation the datum would show under the stress of
// f, or under engine.Stress(Position) when f carries no stress. It panics
// (ErrPreconditionViolated) when neither is available.
func (d *Datum) Predict(engine geomeca.Engine, f Fields) Prediction {
	if f.Stress == nil && engine != nil {
		st := engine.Stress(d.position)
		f.Stress = &st
	}
	d.mustCheck("Predict", f)
	st := *f.Stress

	if !d.kind.IsFault() {
		axis := d.axis(st)
		if tensor.Dot(axis, d.normal) < 0 {
			axis = tensor.Negate(axis)
		}
		return Prediction{Normal: axis}
	}

	p := Prediction{Normal: d.normal}
	if tau, mag := st.Shear(d.normal); mag > d.epsilon {
		p.Striation = tensor.Scale(1/mag, tau)
	}
	return p
}
