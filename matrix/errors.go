// SPDX-License-Identifier: MIT

// Package matrix - sentinel errors.
//
// Every failure is reported through one of the sentinels below, wrapped
// with the method and coordinates that triggered it. Test with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a constructor receives a size < 1.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfRange is returned when (row, col) lies outside the matrix.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrOutsideShape is returned when Set targets a position the storage
	// shape cannot hold (above the diagonal of a lower-triangular matrix,
	// off the band of a tridiagonal one).
	ErrOutsideShape = errors.New("matrix: position outside stored shape")

	// ErrDimensionMismatch is returned when binary operands differ in shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// shapeErrorf wraps err with the receiver kind, method and coordinates.
func shapeErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}
