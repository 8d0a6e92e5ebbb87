// SPDX-License-Identifier: MIT

package matconv

import "errors"

var (
	// ErrNilGrid indicates a nil *grid.Grid argument.
	ErrNilGrid = errors.New("matconv: grid is nil")

	// ErrEmptyGrid indicates a grid with zero width or height, which gonum
	// cannot represent as a *mat.Dense.
	ErrEmptyGrid = errors.New("matconv: grid has zero width or height")

	// ErrNilMatrix indicates a nil mat.Matrix argument.
	ErrNilMatrix = errors.New("matconv: matrix is nil")
)
