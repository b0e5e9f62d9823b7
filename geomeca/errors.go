package geomeca

import "errors"

// ErrSuperpositionUnsupported is returned by SuperpositionEngine.AddComponent:
// combining several stress sources at a point is not implemented.
var ErrSuperpositionUnsupported = errors.New("geomeca: superposition of stress components is not supported")
