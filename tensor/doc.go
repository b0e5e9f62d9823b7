// Package tensor provides the small fixed-size linear algebra used by the
// paleostress inversion: 3-vectors, 3×3 tensors, rotations and spherical
// coordinates in the geographic (East, North, Up) frame.
//
// All types are plain values. A Matrix3 is an array of three independent
// rows, so assigning or passing one copies it and no two tensors ever share
// storage. Every function is pure and safe for concurrent use.
//
// Conventions:
//
//   - Vectors are expressed in the (East, North, Up) frame: X points East,
//     Y points North, Z points Up.
//   - Azimuths (phi, trend, strike) are measured clockwise from North for the
//     field helpers (TrendPlunge) and counter-clockwise from East for
//     SphericalCoords, matching the usual mathematical convention.
//   - Angles are radians unless a function name says otherwise (Deg, Rad).
//
// Eigen-decomposition of symmetric tensors uses the cyclic Jacobi method,
// which for 3×3 inputs converges in a handful of sweeps.
package tensor
