package inversion

import "errors"

// ErrNoData is returned by Run when the dataset holds no active datum.
var ErrNoData = errors.New("inversion: no active data")
