package grid

import "errors"

var (
	// ErrInvalidDimensions is returned by New for an empty or negative grid.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrNilSurface is returned by New when no Surface is supplied.
	ErrNilSurface = errors.New("nil surface")

	// ErrOutOfRange is returned for a row or column index outside the grid.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidSize is returned for negative sizes or padding.
	ErrInvalidSize = errors.New("invalid size")

	// ErrNotGenerated is returned by draw operations before Generate.
	ErrNotGenerated = errors.New("geometry not generated")

	// ErrCapacity is returned when a fixed storage cannot hold the grid.
	ErrCapacity = errors.New("storage capacity exceeded")
)
