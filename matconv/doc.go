// SPDX-License-Identifier: MIT

// Package matconv bridges grid.Grid[float64] and gonum's mat package so
// grids can be fed to gonum's linear algebra and read back.
//
// Orientation: grid cell (x, y) is matrix element (row=y, col=x). A grid's
// height is the matrix row count and its width the column count. Both
// layouts are row-major, so conversions are a straight copy.
//
// gonum rejects zero-sized dense matrices, so ToDense returns ErrEmptyGrid
// for grids with no rows or no columns.
package matconv
