package criteria

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedConfiguration is the family of closed-enum lookup failures.
	ErrUnsupportedConfiguration = errors.New("criteria: unsupported configuration")

	// ErrUnsupportedPlaneSearch is returned by ParsePlaneSearch for unknown names.
	ErrUnsupportedPlaneSearch = fmt.Errorf("criteria: unknown plane search: %w", ErrUnsupportedConfiguration)
)
