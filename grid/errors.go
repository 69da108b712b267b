package grid

import "errors"

var (
	// ErrBadSize indicates a non-positive width or height.
	ErrBadSize = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input must have at least one column and one row")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("grid: all columns must have the same length")
)
