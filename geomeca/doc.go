// Package geomeca builds the candidate stress states evaluated by the
// inversion and exposes them through stress evaluation engines.
//
// Principal axes follow the strike-slip convention used across the module:
// they are ordered (σ1, σ3, σ2), and the principal tensor in that frame is
// diag(-1, 0, -R) (compression negative). The rotation Hrot has rows
// S1, S3, S2 and maps geographic coordinates to principal coordinates:
//
//	S = Hrotᵀ · diag(-1, 0, -R) · Hrot
//
// FromRotation is the O(1) constructor used inside search loops;
// FromTensor runs an eigen-decomposition and is meant for seeding.
package geomeca
