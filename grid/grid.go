// SPDX-License-Identifier: MIT

package grid

import "math"

// Grid is a fixed-size, row-major two-dimensional array of T.
// w is the width (columns), h the height (rows), and data holds w*h cells.
// len(data) == w*h for the whole lifetime of the value.
type Grid[T any] struct {
	w, h int // fixed extents
	data []T // flat backing storage, row-major
}

// validShape reports whether width and height are non-negative and
// width*height fits in an int.
func validShape(width, height int) bool {
	if width < 0 || height < 0 {
		return false
	}
	return height == 0 || width <= math.MaxInt/height
}

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// FromElements builds a width×height grid from data laid out in row-major
// order: data[y*width+x] becomes cell (x, y).
// The elements are copied; the caller keeps ownership of data.
// Returns ErrBadShape for negative extents or when width*height overflows
// an int, and ErrLengthMismatch when len(data) != width*height.
// Complexity: O(width*height).
func FromElements[T any](width, height int, data []T) (*Grid[T], error) {
	if !validShape(width, height) {
		return nil, gridErrorf("FromElements", width, height, ErrBadShape)
	}
	if len(data) != width*height {
		return nil, gridErrorf("FromElements", width, height, ErrLengthMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Grid[T]{w: width, h: height, data: buf}, nil
}

// Filled builds a width×height grid with every cell set to value.
// T is copied by assignment, so value should not carry shared mutable state
// (a pointer or slice value would alias across all cells).
// Complexity: O(width*height).
func Filled[T any](width, height int, value T) (*Grid[T], error) {
	if !validShape(width, height) {
		return nil, gridErrorf("Filled", width, height, ErrBadShape)
	}
	g := &Grid[T]{w: width, h: height, data: make([]T, width*height)}
	g.Fill(value)

	return g, nil
}

// New builds a width×height grid of zero values. It is Filled with the zero
// value of T.
func New[T any](width, height int) (*Grid[T], error) {
	if !validShape(width, height) {
		return nil, gridErrorf("New", width, height, ErrBadShape)
	}

	return &Grid[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// FromRows builds a grid from a rectangular 2D slice where rows[y][x] is cell
// (x, y). Height is len(rows), width is len(rows[0]) (0 for no rows).
// Returns ErrNonRectangular if any row length differs.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	data := make([]T, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, gridErrorf("FromRows", w, h, ErrNonRectangular)
		}
		data = append(data, row...)
	}

	return &Grid[T]{w: w, h: h, data: data}, nil
}

// Must returns g or panics if err is non-nil. It is meant for grids built
// from literals, e.g. grid.Must(grid.FromElements(2, 2, []int{1, 2, 3, 4})).
func Must[T any](g *Grid[T], err error) *Grid[T] {
	if err != nil {
		panic(err)
	}

	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// Len returns Width()*Height(), the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Raw returns the backing buffer in row-major order. The slice aliases the
// grid and is capacity-clipped, so writes through it are visible in g but
// append never reaches the grid.
func (g *Grid[T]) Raw() []T {
	return g.data[:len(g.data):len(g.data)]
}

// Fill sets every cell to value.
// Complexity: O(width*height).
func (g *Grid[T]) Fill(value T) {
	for i := range g.data {
		g.data[i] = value
	}
}

// Clone returns a deep copy of the grid's cells. Cell values themselves are
// copied by assignment.
// Complexity: O(width*height) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	buf := make([]T, len(g.data))
	copy(buf, g.data)

	return &Grid[T]{w: g.w, h: g.h, data: buf}
}

// Equal reports whether a and b have the same extents and equal cells.
// Two nil grids are equal; a nil and a non-nil grid are not.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.w != b.w || a.h != b.h {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
