package heightmap

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidCell indicates a character other than 'a'..'z', 'S' or 'E'.
	ErrInvalidCell = errors.New("heightmap: invalid cell")
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = errors.New("heightmap: no start marker 'S'")
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = errors.New("heightmap: no end marker 'E'")
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = errors.New("heightmap: marker appears more than once")
	// ErrNoPath indicates the end cannot be reached.
	ErrNoPath = errors.New("heightmap: no path to end")
)
