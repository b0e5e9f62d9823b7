// SPDX-License-Identifier: MIT
// Package data - field-notation plane geometry.
//
// Purpose:
//   - Turn strike, dip, dip direction, rake and movement tokens into unit
//     normals and oriented striations.
//
// Contracts:
//   - Angles are radians; compass tokens only pick a side, never a value.
//   - Contradictory geometry fails with ErrGeometryInconsistency, wrapped
//     with the offending value.

package data

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/paleostress/tensor"
)

// EPS is the tolerance used for orthogonality and sense-of-slip tests.
const EPS = 1e-7

// Direction is a compass direction used to disambiguate dip and strike senses.
type Direction int

const (
	Undefined Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionTokens = map[string]Direction{
	"": Undefined, "UND": Undefined,
	"N": North, "NE": NorthEast, "E": East, "SE": SouthEast,
	"S": South, "SW": SouthWest, "W": West, "NW": NorthWest,
}

// ParseDirection reads a compass token (N, NE, ..., NW, or UND / empty).
func ParseDirection(token string) (Direction, error) {
	d, ok := directionTokens[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return Undefined, fmt.Errorf("direction %q: %w", token, ErrInvalidRecord)
	}
	return d, nil
}

// Vector returns the horizontal unit vector of d; Undefined gives zero.
func (d Direction) Vector() tensor.Vector3 {
	if d == Undefined {
		return tensor.Vector3{}
	}
	return tensor.Azimuth(float64(d-North) * math.Pi / 4)
}

// Movement is the declared sense of slip of the hanging wall.
type Movement int

const (
	// Unoriented: the striation line is known, its sense is not.
	Unoriented Movement = iota
	Normal
	Inverse
	RightLateral
	LeftLateral
	NormalRightLateral
	NormalLeftLateral
	InverseRightLateral
	InverseLeftLateral
)

var movementTokens = map[string]Movement{
	"": Unoriented, "UND": Unoriented,
	"N": Normal, "I": Inverse, "RL": RightLateral, "LL": LeftLateral,
	"N_RL": NormalRightLateral, "N_LL": NormalLeftLateral,
	"I_RL": InverseRightLateral, "I_LL": InverseLeftLateral,
}

// ParseMovement reads a movement token (N, I, RL, LL, N_RL, N_LL, I_RL,
// I_LL, or UND / empty).
func ParseMovement(token string) (Movement, error) {
	key := strings.ToUpper(strings.TrimSpace(token))
	key = strings.ReplaceAll(key, "-", "_")
	m, ok := movementTokens[key]
	if !ok {
		return Unoriented, fmt.Errorf("movement %q: %w", token, ErrInvalidRecord)
	}
	return m, nil
}

// dipSense returns +1 for normal, -1 for inverse and 0 when the movement
// puts no constraint on the dip component.
func (m Movement) dipSense() int {
	switch m {
	case Normal, NormalRightLateral, NormalLeftLateral:
		return 1
	case Inverse, InverseRightLateral, InverseLeftLateral:
		return -1
	}
	return 0
}

// strikeSense returns +1 for left-lateral, -1 for right-lateral and 0 when
// the movement puts no constraint on the strike component.
func (m Movement) strikeSense() int {
	switch m {
	case LeftLateral, NormalLeftLateral, InverseLeftLateral:
		return 1
	case RightLateral, NormalRightLateral, InverseRightLateral:
		return -1
	}
	return 0
}

// Plane is a plane in field notation. Angles are radians.
type Plane struct {
	Strike       float64
	Dip          float64
	DipDirection Direction
}

// PlaneFrame is the geographic frame attached to a plane.
type PlaneFrame struct {
	// Normal is the upward unit normal.
	Normal tensor.Vector3
	// Strike is the horizontal strike with the dip to its right.
	Strike tensor.Vector3
	// DownDip is the unit line of steepest descent in the plane.
	DownDip tensor.Vector3
}

func nearlyEqual(a, b float64) bool { return math.Abs(a-b) <= EPS }

// Frame resolves the plane geometry. The dip direction picks which side of
// the strike line the plane dips to; it may be Undefined only for
// horizontal and vertical planes.
//
// Errors:
//   - ErrGeometryInconsistency: dip direction missing on an inclined plane,
//     or lying along the strike line.
func (p Plane) Frame() (PlaneFrame, error) {
	right := tensor.Azimuth(p.Strike + math.Pi/2)
	horizontal := nearlyEqual(p.Dip, 0)
	vertical := nearlyEqual(p.Dip, math.Pi/2)

	h := right
	if p.DipDirection == Undefined {
		if !horizontal && !vertical {
			return PlaneFrame{}, fmt.Errorf("dip direction required for dip %.1f°: %w", tensor.Deg(p.Dip), ErrGeometryInconsistency)
		}
	} else {
		c := tensor.Dot(p.DipDirection.Vector(), right)
		switch {
		case math.Abs(c) <= EPS && !horizontal:
			return PlaneFrame{}, fmt.Errorf("dip direction along strike %.1f°: %w", tensor.Deg(p.Strike), ErrGeometryInconsistency)
		case c < 0:
			h = tensor.Negate(right)
		}
	}

	sd, cd := math.Sin(p.Dip), math.Cos(p.Dip)
	return PlaneFrame{
		Normal:  tensor.Vector3{sd * h[0], sd * h[1], cd},
		Strike:  tensor.Vector3{-h[1], h[0], 0},
		DownDip: tensor.Vector3{cd * h[0], cd * h[1], -sd},
	}, nil
}

// RakeLine returns the unit striation line of a rake (radians) measured in
// the plane from the strike sense nearest the strikeDirection compass. A
// rake of 90° is pure dip-slip and needs no strike direction.
func (f PlaneFrame) RakeLine(rake float64, strikeDirection Direction) (tensor.Vector3, error) {
	sdir := f.Strike
	if !nearlyEqual(math.Abs(math.Cos(rake)), 0) {
		if strikeDirection == Undefined {
			return tensor.Vector3{}, fmt.Errorf("strike direction required for rake %.1f°: %w", tensor.Deg(rake), ErrGeometryInconsistency)
		}
		c := tensor.Dot(strikeDirection.Vector(), f.Strike)
		if math.Abs(c) <= EPS {
			return tensor.Vector3{}, fmt.Errorf("strike direction perpendicular to strike: %w", ErrGeometryInconsistency)
		}
		if c < 0 {
			sdir = tensor.Negate(sdir)
		}
	}
	return tensor.Add(tensor.Scale(math.Cos(rake), sdir), tensor.Scale(math.Sin(rake), f.DownDip)), nil
}

// TrendLine returns the unit striation line whose horizontal projection
// follows trend (radians). It is meant for gently dipping planes where a
// rake is poorly defined.
func (f PlaneFrame) TrendLine(trend float64) (tensor.Vector3, error) {
	v := tensor.Azimuth(trend)
	line := tensor.Sub(v, tensor.Scale(tensor.Dot(v, f.Normal), f.Normal))
	n := tensor.Norm(line)
	if n <= EPS {
		return tensor.Vector3{}, fmt.Errorf("trend %.1f° is normal to the plane: %w", tensor.Deg(trend), ErrGeometryInconsistency)
	}
	return tensor.Scale(1/n, line), nil
}

// Orient gives the striation line the sense declared by m. It returns the
// slip vector of the hanging wall and whether that sense is known.
//
// Errors:
//   - ErrGeometryInconsistency: a component the movement requires is
//     smaller than EPS, or the dip-slip and strike-slip senses cannot both
//     hold.
func (f PlaneFrame) Orient(line tensor.Vector3, m Movement) (tensor.Vector3, bool, error) {
	if m == Unoriented {
		return line, false, nil
	}
	if ds := m.dipSense(); ds != 0 {
		c := tensor.Dot(line, f.DownDip)
		if math.Abs(c) <= EPS {
			return tensor.Vector3{}, false, fmt.Errorf("movement needs a dip-slip component: %w", ErrGeometryInconsistency)
		}
		if (c > 0) != (ds > 0) {
			line = tensor.Negate(line)
		}
	}
	if ss := m.strikeSense(); ss != 0 {
		c := tensor.Dot(line, f.Strike)
		if math.Abs(c) <= EPS {
			return tensor.Vector3{}, false, fmt.Errorf("movement needs a strike-slip component: %w", ErrGeometryInconsistency)
		}
		if (c > 0) != (ss > 0) {
			if m.dipSense() != 0 {
				return tensor.Vector3{}, false, fmt.Errorf("dip-slip and strike-slip senses disagree with the striation: %w", ErrGeometryInconsistency)
			}
			line = tensor.Negate(line)
		}
	}
	return line, true, nil
}
