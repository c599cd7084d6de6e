package life

import "errors"

// Domain errors for board construction.
var (
	// ErrInvalidDimensions indicates a width or height that is not positive.
	ErrInvalidDimensions = errors.New("life: width and height must be positive")

	// ErrInvalidDensity indicates a seeding probability outside [0, 1].
	ErrInvalidDensity = errors.New("life: density must be within [0, 1]")

	// ErrSizeMismatch indicates a cell slice whose length is not width*height.
	ErrSizeMismatch = errors.New("life: cell count does not match dimensions")

	// ErrUnknownPattern indicates a seeding pattern name with no registered seeder.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)
