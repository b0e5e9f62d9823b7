package config

import "errors"

var (
	// ErrInvalidConfig reports a run file that decodes but cannot be used.
	ErrInvalidConfig = errors.New("config: invalid run file")

	// ErrNoDatasets is returned when a run file lists no dataset.
	ErrNoDatasets = errors.New("config: no dataset")
)
