// SPDX-License-Identifier: MIT
// Package tensor - spherical coordinates, trend/plunge and Fibonacci axes.
//
// Conventions:
//   - Phi is counter-clockwise from East, Theta the colatitude from Up.
//   - Trend is clockwise from North; plunge is positive downward, in [0, π/2].

package tensor

import "math"

// SphericalCoords locates a unit vector by its azimuth Phi in [0, 2π),
// counter-clockwise from East, and its colatitude Theta in [0, π] from Up.
type SphericalCoords struct {
	Phi   float64
	Theta float64
}

// SphericalToCartesian returns the unit vector at sc.
func SphericalToCartesian(sc SphericalCoords) Vector3 {
	st := math.Sin(sc.Theta)
	return Vector3{
		st * math.Cos(sc.Phi),
		st * math.Sin(sc.Phi),
		math.Cos(sc.Theta),
	}
}

// CartesianToSpherical is the inverse of SphericalToCartesian for a unit
// vector v. Phi is folded into [0, 2π); at the poles Phi is 0.
func CartesianToSpherical(v Vector3) SphericalCoords {
	theta := math.Acos(Clamp(v[2], -1, 1))
	phi := 0.0
	if math.Abs(v[0]) > 1e-15 || math.Abs(v[1]) > 1e-15 {
		phi = math.Atan2(v[1], v[0])
		if phi < 0 {
			phi += 2 * math.Pi
		}
	}
	return SphericalCoords{Phi: phi, Theta: theta}
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Azimuth returns the horizontal unit vector pointing at trend radians
// clockwise from North.
func Azimuth(trend float64) Vector3 {
	return Vector3{math.Sin(trend), math.Cos(trend), 0}
}

// TrendPlunge returns the unit vector of a line with the given trend
// (clockwise from North) and plunge (positive downward), both in radians.
func TrendPlunge(trend, plunge float64) Vector3 {
	cp := math.Cos(plunge)
	return Vector3{cp * math.Sin(trend), cp * math.Cos(trend), -math.Sin(plunge)}
}

// ToTrendPlunge returns the trend in [0, 2π) and plunge in [0, π/2] of the
// line carrying v. Upward vectors are folded to the lower hemisphere.
func ToTrendPlunge(v Vector3) (trend, plunge float64) {
	if v[2] > 0 {
		v = Negate(v)
	}
	// Abs turns the -0 of a horizontal line into +0.
	plunge = math.Abs(math.Asin(Clamp(-v[2], -1, 1)))
	if math.Abs(v[0]) < 1e-12 && math.Abs(v[1]) < 1e-12 {
		return 0, plunge
	}
	trend = math.Atan2(v[0], v[1])
	if trend < 0 {
		trend += 2 * math.Pi
	}
	return trend, plunge
}

// GoldenRatio is (1+√5)/2.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// FibonacciAxis returns node i of an n-node golden-angle spiral over the
// upper hemisphere: latitude asin(2i/(2n+1)), longitude 2πi/φ. Nodes are
// quasi-uniform and do not cluster at the pole.
func FibonacciAxis(i, n int) Vector3 {
	lat := math.Asin(2 * float64(i) / float64(2*n+1))
	lon := 2 * math.Pi * float64(i) / GoldenRatio
	return SphericalToCartesian(SphericalCoords{Phi: lon, Theta: math.Pi/2 - lat})
}
