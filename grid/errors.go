// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; constructors wrap them with
// the call site and the offending dimensions.
var (
	// ErrBadShape is returned when a requested width or height is negative
	// or their product does not fit in an int.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrLengthMismatch is returned when the supplied element count is not
	// exactly width*height. No grid is constructed.
	ErrLengthMismatch = errors.New("grid: data length does not match width*height")

	// ErrNonRectangular is returned by FromRows when rows differ in length.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// gridErrorf wraps err with constructor context, e.g. "grid.FromElements(3,2): ...".
func gridErrorf(fn string, w, h int, err error) error {
	return fmt.Errorf("grid.%s(%d,%d): %w", fn, w, h, err)
}
