// Package data models the field observations scored by the inversion.
//
// A Datum is a tagged union over a closed set of kinds:
//
//	fracture-like: extension fracture (joint, dyke), stylolite interface,
//	               compaction band, dilation band  (normal only)
//	fault-like:    striated plane, neoformed striated plane
//	               (normal and striation)
//
// Every kind answers the same three questions for a candidate stress field:
// Check (can it be evaluated), Cost (how badly does it fit, 0 is perfect)
// and Predict (what would it look like under that field). Dispatch is a
// switch on the kind, not an interface hierarchy.
//
// Plane geometry uses the (East, North, Up) frame. Strike and trend are
// azimuths clockwise from North; normals point upward; the sense of slip is
// that of the block on the normal side (the hanging wall).
package data
