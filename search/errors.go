package search

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedConfiguration is the family of closed-enum lookup failures.
	ErrUnsupportedConfiguration = errors.New("search: unsupported configuration")

	// ErrUnsupportedMethod is returned by ParseMethod and New for unknown
	// search methods.
	ErrUnsupportedMethod = fmt.Errorf("search: unknown search method: %w", ErrUnsupportedConfiguration)

	// ErrInvalidOptions reports a non-finite, negative or zero step option.
	ErrInvalidOptions = errors.New("search: invalid options")

	// ErrNilCriterion is returned by Run when the solution carries no criterion.
	ErrNilCriterion = errors.New("search: solution has no criterion")
)
