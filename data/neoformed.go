package data

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/paleostress/geomeca"
	"github.com/katalvlaran/paleostress/tensor"
)

// AngleType names the quantity bounded by an AngleConstraint.
type AngleType int

const (
	// Sigma1PlaneAngle bounds the angle between σ1 and the plane.
	Sigma1PlaneAngle AngleType = iota
	// FrictionAngle bounds the Coulomb friction angle implied by that angle,
	// φ = 90° - 2·angle(σ1, plane).
	FrictionAngle
)

// ParseAngleType reads "s1" or "friction".
func ParseAngleType(token string) (AngleType, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "s1", "sigma1":
		return Sigma1PlaneAngle, nil
	case "friction":
		return FrictionAngle, nil
	}
	return 0, fmt.Errorf("angle type %q: %w", token, ErrInvalidRecord)
}

// AngleConstraint is the window [Min, Max] (radians) a neoformed plane is
// expected to make with the stress field. Outside the window the distance
// to the nearest bound is added to the slip cost.
type AngleConstraint struct {
	Type     AngleType
	Min, Max float64
}

const windowSlack = 1e-9

// deviation returns how far the plane of normal n lies outside the window.
func (c AngleConstraint) deviation(n tensor.Vector3, st geomeca.StressTensor) float64 {
	// angle between σ1 and the plane, in [0, π/2]
	alpha := math.Asin(tensor.Clamp(math.Abs(tensor.Dot(n, st.S1)), 0, 1))
	v := alpha
	if c.Type == FrictionAngle {
		v = math.Pi/2 - 2*alpha
	}
	switch {
	case v < c.Min-windowSlack:
		return c.Min - v
	case v > c.Max+windowSlack:
		return v - c.Max
	}
	return 0
}

func (c AngleConstraint) penalize(cost float64, n tensor.Vector3, st geomeca.StressTensor, mode Mode) float64 {
	dev := c.deviation(n, st)
	if mode == DotMode {
		return math.Min(1, cost+dev/math.Pi)
	}
	return math.Min(math.Pi, cost+dev)
}
