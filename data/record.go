package data

import (
	"fmt"

	"github.com/katalvlaran/paleostress/tensor"
)

// Record is one observation as delivered by the input layer. Angles are in
// degrees. Striated planes need either Rake (with StrikeDirection unless the
// rake is 90°) or StriationTrend.
type Record struct {
	ID              int        `yaml:"id" json:"id"`
	Type            string     `yaml:"type" json:"type"`
	Strike          float64    `yaml:"strike" json:"strike"`
	Dip             float64    `yaml:"dip" json:"dip"`
	DipDirection    string     `yaml:"dipDirection" json:"dipDirection"`
	Rake            *float64   `yaml:"rake,omitempty" json:"rake,omitempty"`
	StrikeDirection string     `yaml:"strikeDirection" json:"strikeDirection"`
	StriationTrend  *float64   `yaml:"striationTrend,omitempty" json:"striationTrend,omitempty"`
	TypeOfMovement  string     `yaml:"typeOfMovement" json:"typeOfMovement"`
	Weight          float64    `yaml:"weight" json:"weight"`
	Inactive        bool       `yaml:"inactive" json:"inactive"`
	Position        [3]float64 `yaml:"position" json:"position"`
	Source          string     `yaml:"source" json:"source"`
	// Neoformed planes only.
	AngleType string   `yaml:"angleType" json:"angleType"`
	MinAngle  *float64 `yaml:"minAngle,omitempty" json:"minAngle,omitempty"`
	MaxAngle  *float64 `yaml:"maxAngle,omitempty" json:"maxAngle,omitempty"`
}

// FromRecord builds the datum described by rec. A zero weight means 1.
func FromRecord(rec Record, opts ...Option) (*Datum, error) {
	kind, err := ParseKind(rec.Type)
	if err != nil {
		return nil, recordErrorf(rec, err)
	}
	dipDir, err := ParseDirection(rec.DipDirection)
	if err != nil {
		return nil, recordErrorf(rec, err)
	}
	frame, err := Plane{Strike: tensor.Rad(rec.Strike), Dip: tensor.Rad(rec.Dip), DipDirection: dipDir}.Frame()
	if err != nil {
		return nil, recordErrorf(rec, err)
	}

	base := []Option{WithID(rec.ID), WithSource(rec.Source), WithPosition(tensor.Vector3(rec.Position))}
	switch {
	case rec.Weight == 0:
	case validWeight(rec.Weight):
		base = append(base, WithWeight(rec.Weight))
	default:
		return nil, recordErrorf(rec, fmt.Errorf("weight %v: %w", rec.Weight, ErrInvalidWeight))
	}
	if rec.Inactive {
		base = append(base, WithInactive())
	}
	opts = append(base, opts...)

	if !kind.IsFault() {
		d, err := NewFracture(kind, frame.Normal, opts...)
		if err != nil {
			return nil, recordErrorf(rec, err)
		}
		return d, nil
	}

	slip, oriented, err := recordSlip(rec, frame)
	if err != nil {
		return nil, recordErrorf(rec, err)
	}
	if !oriented {
		opts = append(opts, WithUnoriented())
	}
	if kind == NeoformedStriatedPlane && (rec.MinAngle != nil || rec.MaxAngle != nil) {
		c, err := recordConstraint(rec)
		if err != nil {
			return nil, recordErrorf(rec, err)
		}
		opts = append(opts, WithAngleConstraint(c))
	}
	d, err := NewFault(kind, frame.Normal, slip, opts...)
	if err != nil {
		return nil, recordErrorf(rec, err)
	}
	return d, nil
}

func recordSlip(rec Record, frame PlaneFrame) (tensor.Vector3, bool, error) {
	movement, err := ParseMovement(rec.TypeOfMovement)
	if err != nil {
		return tensor.Vector3{}, false, err
	}
	var line tensor.Vector3
	switch {
	case rec.Rake != nil:
		strikeDir, err := ParseDirection(rec.StrikeDirection)
		if err != nil {
			return tensor.Vector3{}, false, err
		}
		if line, err = frame.RakeLine(tensor.Rad(*rec.Rake), strikeDir); err != nil {
			return tensor.Vector3{}, false, err
		}
	case rec.StriationTrend != nil:
		if line, err = frame.TrendLine(tensor.Rad(*rec.StriationTrend)); err != nil {
			return tensor.Vector3{}, false, err
		}
	default:
		return tensor.Vector3{}, false, fmt.Errorf("striated plane needs a rake or a striation trend: %w", ErrInvalidRecord)
	}
	return frame.Orient(line, movement)
}

func recordConstraint(rec Record) (AngleConstraint, error) {
	t, err := ParseAngleType(rec.AngleType)
	if err != nil {
		return AngleConstraint{}, err
	}
	c := AngleConstraint{Type: t, Min: 0, Max: tensor.Rad(90)}
	if rec.MinAngle != nil {
		c.Min = tensor.Rad(*rec.MinAngle)
	}
	if rec.MaxAngle != nil {
		c.Max = tensor.Rad(*rec.MaxAngle)
	}
	if c.Min > c.Max {
		return AngleConstraint{}, fmt.Errorf("angle window [%.1f°, %.1f°]: %w", tensor.Deg(c.Min), tensor.Deg(c.Max), ErrInvalidRecord)
	}
	return c, nil
}

func recordErrorf(rec Record, err error) error {
	return fmt.Errorf("record %d (%s): %w", rec.ID, rec.Type, err)
}
